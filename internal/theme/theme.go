// Package theme holds the colors and lipgloss styles shared by every view.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	PrimaryColor = lipgloss.Color("#4ECDC4")
	AccentColor  = lipgloss.Color("#FF6B6B")
	MutedColor   = lipgloss.Color("#999999")
	WhiteColor   = lipgloss.Color("#FFFFFF")
	StatusColor  = lipgloss.Color("#33002E")

	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder())

	FocusedStyle = BaseStyle.
			BorderForeground(AccentColor)

	BlurredStyle = BaseStyle.
			BorderForeground(MutedColor)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WhiteColor).
			Background(PrimaryColor).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(WhiteColor).
			Background(PrimaryColor).
			Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Background(lipgloss.Color("#333333")).
				Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WhiteColor).
			Background(AccentColor).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)

	SidebarActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(PrimaryColor).
				Padding(0, 1)
)

// Border returns the focused or blurred panel style.
func Border(focused bool) lipgloss.Style {
	if focused {
		return FocusedStyle
	}
	return BlurredStyle
}
