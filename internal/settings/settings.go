// Package settings implements the settings screen.
package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nutcas3/apikit/internal/config"
	"github.com/nutcas3/apikit/internal/highlight"
	"github.com/nutcas3/apikit/internal/screen"
	"github.com/nutcas3/apikit/internal/theme"
)

// UpdateThemeMsg advances the response highlight style.
type UpdateThemeMsg struct{}

type keyMap struct {
	Theme key.Binding
	Back  key.Binding
}

type Model struct {
	cfg    config.Config
	path   string
	keys   keyMap
	width  int
	height int
}

var _ screen.Screen = (*Model)(nil)

// New shows cfg, loaded from path.
func New(cfg config.Config, path string) *Model {
	if cfg.Response.Style == "" {
		cfg.Response.Style = highlight.DefaultStyle
	}
	return &Model{
		cfg:  cfg,
		path: path,
		keys: keyMap{
			Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
			Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		},
	}
}

func (m *Model) Init() tea.Cmd { return nil }

// Style is the current highlight style.
func (m *Model) Style() string { return m.cfg.Response.Style }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Theme, m.keys.Back}
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateThemeMsg:
		style := highlight.NextStyle(m.cfg.Response.Style)
		m.cfg.Response.Style = style
		return m, tea.Batch(
			func() tea.Msg { return screen.StyleChangedMsg{Style: style} },
			screen.Status("theme: "+style, false),
		)
	case screen.StyleChangedMsg:
		m.cfg.Response.Style = msg.Style
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Theme):
			return m.Update(UpdateThemeMsg{})
		case key.Matches(msg, m.keys.Back):
			return m, screen.Navigate(screen.RouteHome)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	path := m.path
	if path == "" {
		path = "(none)"
	}
	timeout := m.cfg.HTTP.Timeout.String()
	if m.cfg.HTTP.Timeout == 0 {
		timeout = "none"
	}
	logFile := m.cfg.Log.File
	if logFile == "" {
		logFile = "(disabled)"
	}

	rows := [][2]string{
		{"Config file", path},
		{"Timeout", timeout},
		{"Content-Type", m.cfg.HTTP.ContentType},
		{"Format JSON", onOff(m.cfg.Response.AutoFormatJSON)},
		{"Highlighting", onOff(m.cfg.Response.SyntaxHighlighting)},
		{"Theme", m.cfg.Response.Style},
		{"Log file", logFile},
	}

	var sb strings.Builder
	sb.WriteString(theme.TitleStyle.Render("Settings"))
	sb.WriteString("\n\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-14s %s\n", r[0]+":", r[1]))
	}
	sb.WriteString("\n")
	sb.WriteString(theme.HelpStyle.Render("t: next theme • esc: back"))

	style := theme.BlurredStyle.Padding(0, 1)
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(sb.String())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
