package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRender_ContainsLabelAndMessage(t *testing.T) {
	out := ansi.Strip(Render(60, "ready", false))

	assert.Contains(t, out, "Message")
	assert.Contains(t, out, "ready")
	assert.Equal(t, 60, lipgloss.Width(out))
}

func TestRender_Truncates(t *testing.T) {
	out := ansi.Strip(Render(20, strings.Repeat("x", 100), true))

	assert.Contains(t, out, "…")
	assert.Equal(t, 20, lipgloss.Width(out))
}

func TestRender_ZeroWidth(t *testing.T) {
	out := ansi.Strip(Render(0, "hi", false))

	assert.Contains(t, out, "hi")
}

func TestRender_NegativeWidthKeepsMessage(t *testing.T) {
	out := ansi.Strip(Render(-5, "a much longer status message", true))

	assert.Contains(t, out, "a much longer status message")
	assert.NotContains(t, out, "…")
}
