// Package app is the root Bubble Tea model. It owns the active route,
// delegates to the screen bound to it and draws the chrome around it.
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nutcas3/apikit/internal/screen"
	"github.com/nutcas3/apikit/internal/statusbar"
	"github.com/nutcas3/apikit/internal/theme"
)

const (
	title        = "APIKIT"
	sidebarWidth = 14
	// header, status bar and help line
	chromeHeight = 3
)

type keyMap struct {
	Home     key.Binding
	Settings key.Binding
	Next     key.Binding
	Prev     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Home: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "home"),
	),
	Settings: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("f2", "settings"),
	),
	Next: key.NewBinding(
		key.WithKeys("ctrl+right"),
		key.WithHelp("ctrl+→", "next screen"),
	),
	Prev: key.NewBinding(
		key.WithKeys("ctrl+left"),
		key.WithHelp("ctrl+←", "previous screen"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("ctrl+q", "quit"),
	),
}

// helper is implemented by screens that contribute to the help line.
type helper interface {
	ShortHelp() []key.Binding
}

type Model struct {
	route     screen.Route
	screens   map[screen.Route]screen.Screen
	help      help.Model
	status    string
	statusErr bool
	width     int
	height    int
}

// New binds one screen per route. Home is active at start.
func New(home, settings screen.Screen) *Model {
	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(theme.PrimaryColor)
	h.Styles.ShortDesc = theme.HelpStyle
	return &Model{
		route: screen.RouteHome,
		screens: map[screen.Route]screen.Screen{
			screen.RouteHome:     home,
			screen.RouteSettings: settings,
		},
		help:   h,
		status: "Ready",
	}
}

// Route is the active route.
func (m *Model) Route() screen.Route { return m.route }

// Screen returns the screen bound to r.
func (m *Model) Screen(r screen.Route) screen.Screen { return m.screens[r] }

// Status returns the status bar text.
func (m *Model) Status() string { return m.status }

func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(screen.Routes))
	for _, r := range screen.Routes {
		cmds = append(cmds, m.screens[r].Init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, s := range m.screens {
			s.SetSize(max(msg.Width-sidebarWidth-2, 0), max(msg.Height-chromeHeight, 0))
		}
		return m, nil

	case screen.NavigateMsg:
		if _, ok := m.screens[msg.Route]; ok {
			m.route = msg.Route
		}
		return m, nil

	case screen.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.Error
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Home):
			return m, screen.Navigate(screen.RouteHome)
		case key.Matches(msg, keys.Settings):
			return m, screen.Navigate(screen.RouteSettings)
		case key.Matches(msg, keys.Next):
			return m, screen.Navigate(m.step(1))
		case key.Matches(msg, keys.Prev):
			return m, screen.Navigate(m.step(-1))
		}
		return m, m.delegate(m.route, msg)

	case tea.MouseMsg:
		return m, m.delegate(m.route, msg)
	}

	// Everything else (effect results, ticks, style changes) reaches every
	// screen so a result is not lost when its screen is inactive.
	cmds := make([]tea.Cmd, 0, len(screen.Routes))
	for _, r := range screen.Routes {
		cmds = append(cmds, m.delegate(r, msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) delegate(r screen.Route, msg tea.Msg) tea.Cmd {
	next, cmd := m.screens[r].Update(msg)
	if next != nil {
		m.screens[r] = next
	}
	return cmd
}

func (m *Model) step(delta int) screen.Route {
	n := len(screen.Routes)
	return screen.Route((int(m.route) + delta + n) % n)
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := theme.HeaderStyle.Render(title)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar(),
		" ",
		m.screens[m.route].View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		statusbar.Render(m.width, m.status, m.statusErr),
		m.helpView(),
	)
}

func (m *Model) sidebar() string {
	var sb strings.Builder
	for i, r := range screen.Routes {
		style := theme.SidebarItemStyle
		prefix := "  "
		if r == m.route {
			style = theme.SidebarActiveStyle
			prefix = "▸ "
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(style.Render(prefix + r.String()))
	}
	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(max(m.height-chromeHeight, 0)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(theme.MutedColor).
		Render(sb.String())
}

func (m *Model) helpView() string {
	bindings := []key.Binding{keys.Home, keys.Settings, keys.Quit}
	if h, ok := m.screens[m.route].(helper); ok {
		bindings = append(h.ShortHelp(), bindings...)
	}
	return m.help.ShortHelpView(bindings)
}
