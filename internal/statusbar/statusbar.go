// Package statusbar renders the single-line bar at the bottom of the window.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nutcas3/apikit/internal/theme"
)

const label = "Message"

var (
	barStyle = lipgloss.NewStyle().
			Background(theme.StatusColor).
			Foreground(theme.WhiteColor)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Background(theme.PrimaryColor).
			Foreground(theme.WhiteColor).
			Padding(0, 1)

	textStyle = lipgloss.NewStyle().
			Background(theme.StatusColor).
			Padding(0, 1)

	errorTextStyle = textStyle.
			Inherit(theme.ErrorStyle)
)

// Render draws the status bar across width columns. Messages longer than
// the available space are truncated with an ellipsis. A width of zero or
// less leaves the message unbounded.
func Render(width int, message string, isErr bool) string {
	l := labelStyle.Render(label)
	if width > 0 {
		avail := max(width-lipgloss.Width(l)-2, 1)
		message = ansi.Truncate(message, avail, "…")
	}

	style := textStyle
	if isErr {
		style = errorTextStyle
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, l, style.Render(message))
	if width <= 0 {
		return bar
	}
	return barStyle.Width(width).Render(bar)
}
