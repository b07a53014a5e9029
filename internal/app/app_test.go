package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutcas3/apikit/internal/config"
	"github.com/nutcas3/apikit/internal/highlight"
	"github.com/nutcas3/apikit/internal/home"
	"github.com/nutcas3/apikit/internal/httpclient"
	"github.com/nutcas3/apikit/internal/screen"
	"github.com/nutcas3/apikit/internal/settings"
)

type stubSender struct {
	result httpclient.Result
}

func (s stubSender) Do(context.Context, httpclient.Request) httpclient.Result { return s.result }

func newTestApp(t *testing.T, sender home.Sender) (*Model, *home.Model, *settings.Model) {
	t.Helper()
	h := home.New(home.Options{Sender: sender, Copy: func(string) error { return nil }})
	s := settings.New(config.Default(), "")
	m := New(h, s)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, h, s
}

// drain feeds every message produced by cmd back into m, like the program
// loop would, and stops at the first quit.
func drain(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			return
		default:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func TestNew_StartsHome(t *testing.T) {
	m, _, _ := newTestApp(t, stubSender{})

	assert.Equal(t, screen.RouteHome, m.Route())
	assert.Equal(t, "Ready", m.Status())
}

func TestNavigate_SwitchesRouteAndKeepsScreens(t *testing.T) {
	m, h, _ := newTestApp(t, stubSender{})
	h.Update(home.URLChangedMsg{URL: "http://kept.test"})

	m.Update(screen.NavigateMsg{Route: screen.RouteSettings})
	assert.Equal(t, screen.RouteSettings, m.Route())
	assert.Contains(t, ansi.Strip(m.View()), "Config file")
	assert.Same(t, h, m.Screen(screen.RouteHome))

	m.Update(screen.NavigateMsg{Route: screen.RouteHome})
	assert.Equal(t, screen.RouteHome, m.Route())
	assert.Equal(t, "http://kept.test", h.State().URL)
}

func TestNavigate_UnknownRouteIgnored(t *testing.T) {
	m, _, _ := newTestApp(t, stubSender{})

	m.Update(screen.NavigateMsg{Route: screen.Route(9)})

	assert.Equal(t, screen.RouteHome, m.Route())
}

func TestKeys_FunctionKeysNavigate(t *testing.T) {
	m, _, _ := newTestApp(t, stubSender{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF2})
	drain(m, cmd)
	assert.Equal(t, screen.RouteSettings, m.Route())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	drain(m, cmd)
	assert.Equal(t, screen.RouteHome, m.Route())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlRight})
	drain(m, cmd)
	assert.Equal(t, screen.RouteSettings, m.Route())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlRight})
	drain(m, cmd)
	assert.Equal(t, screen.RouteHome, m.Route())
}

func TestKeys_Quit(t *testing.T) {
	m, _, _ := newTestApp(t, stubSender{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestSend_ResultReachesHomeWhileOnSettings(t *testing.T) {
	m, h, _ := newTestApp(t, stubSender{result: httpclient.Result{StatusCode: 200, Status: "200 OK", Body: "pong"}})
	h.Update(home.URLChangedMsg{URL: "http://example.test/ping"})

	_, send := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, h.State().Loading)
	m.Update(screen.NavigateMsg{Route: screen.RouteSettings})

	drain(m, send)

	assert.False(t, h.State().Loading)
	assert.Equal(t, "pong", h.State().Response)
	assert.Contains(t, m.Status(), "200 OK")
	assert.Same(t, h, m.Screen(screen.RouteHome))
}

func TestSettingsTheme_BroadcastsToHome(t *testing.T) {
	m, _, s := newTestApp(t, stubSender{})
	m.Update(screen.NavigateMsg{Route: screen.RouteSettings})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	drain(m, cmd)

	assert.Equal(t, highlight.Styles[1], s.Style())
	assert.Equal(t, "theme: "+highlight.Styles[1], m.Status())
}

func TestSettingsEsc_ReturnsHome(t *testing.T) {
	m, _, _ := newTestApp(t, stubSender{})
	m.Update(screen.NavigateMsg{Route: screen.RouteSettings})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	drain(m, cmd)

	assert.Equal(t, screen.RouteHome, m.Route())
}

func TestView_Chrome(t *testing.T) {
	m, _, _ := newTestApp(t, stubSender{})
	m.Update(screen.StatusMsg{Text: "all good"})

	out := ansi.Strip(m.View())

	assert.Contains(t, out, "APIKIT")
	assert.Contains(t, out, "▸ Home")
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "Message")
	assert.Contains(t, out, "all good")
	assert.Contains(t, out, "Send")
}

func TestView_BeforeSize(t *testing.T) {
	h := home.New(home.Options{Sender: stubSender{}})
	m := New(h, settings.New(config.Default(), ""))

	assert.Equal(t, "Initializing...", m.View())
}
