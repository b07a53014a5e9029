// Package screen defines the contract every top-level screen implements and
// the messages screens use to talk to the application shell.
package screen

import tea "github.com/charmbracelet/bubbletea"

// Screen is one unit of UI state and behavior bound to a Route.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Route identifies the active screen.
type Route int

const (
	RouteHome Route = iota
	RouteSettings
)

// Routes lists every route in sidebar order.
var Routes = []Route{RouteHome, RouteSettings}

func (r Route) String() string {
	switch r {
	case RouteSettings:
		return "Settings"
	default:
		return "Home"
	}
}

// NavigateMsg asks the shell to switch to Route.
type NavigateMsg struct {
	Route Route
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(r Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r} }
}

// StyleChangedMsg is broadcast to every screen when the highlight style
// changes.
type StyleChangedMsg struct {
	Style string
}

// StatusMsg sets the status bar text.
type StatusMsg struct {
	Text  string
	Error bool
}

// Status returns a command that emits a StatusMsg.
func Status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Error: isErr} }
}
