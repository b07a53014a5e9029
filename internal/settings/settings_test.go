package settings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutcas3/apikit/internal/config"
	"github.com/nutcas3/apikit/internal/highlight"
	"github.com/nutcas3/apikit/internal/screen"
)

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestUpdateTheme_CyclesAndBroadcasts(t *testing.T) {
	m := New(config.Default(), "")
	require.Equal(t, highlight.DefaultStyle, m.Style())

	_, cmd := m.Update(UpdateThemeMsg{})

	assert.Equal(t, highlight.Styles[1], m.Style())
	msgs := collect(cmd)
	assert.Contains(t, msgs, screen.StyleChangedMsg{Style: highlight.Styles[1]})
	assert.Contains(t, msgs, screen.StatusMsg{Text: "theme: " + highlight.Styles[1]})
}

func TestKeys_ThemeAndBack(t *testing.T) {
	m := New(config.Default(), "")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.Equal(t, highlight.Styles[1], m.Style())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []tea.Msg{screen.NavigateMsg{Route: screen.RouteHome}}, collect(cmd))
}

func TestView_ShowsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = "/tmp/apikit.log"
	m := New(cfg, "/home/u/.config/apikit/config.toml")
	m.SetSize(100, 20)

	out := ansi.Strip(m.View())

	assert.Contains(t, out, "30s")
	assert.Contains(t, out, "application/json")
	assert.Contains(t, out, highlight.DefaultStyle)
	assert.Contains(t, out, "/tmp/apikit.log")
}

func TestNew_EmptyStyleDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Response.Style = ""

	assert.Equal(t, highlight.DefaultStyle, New(cfg, "").Style())
}
