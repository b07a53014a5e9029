package home

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nutcas3/apikit/internal/theme"
)

func (m *Model) View() string {
	methodView := theme.Border(m.focus == methodPanel).
		Width(methodBoxWidth).
		Align(lipgloss.Center).
		Render(m.method.String() + " ▾")

	urlView := theme.Border(m.focus == urlPanel).
		Width(m.urlInput.Width + 2).
		Render(m.urlInput.View())

	top := lipgloss.JoinHorizontal(lipgloss.Center, methodView, " ", urlView, " ", m.sendButton())

	if m.picking {
		picker := theme.FocusedStyle.Render(m.methodList.View())
		return lipgloss.JoinVertical(lipgloss.Left, top, picker)
	}

	request := theme.Border(m.focus == editorPanel).
		Render(m.editors[m.tab].View())

	responseContent := m.responseView.View()
	if m.response == "" && !m.loading {
		responseContent = theme.HelpStyle.Render("No response yet")
	}
	response := theme.Border(m.focus == responsePanel).
		Width(m.responseView.Width + 2).
		Height(m.responseView.Height).
		Render(responseContent)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, request, " ", response)
	return lipgloss.JoinVertical(lipgloss.Left, top, m.tabBar(), panes)
}

func (m *Model) sendButton() string {
	if m.loading {
		return theme.DisabledButtonStyle.Render(m.spinner.View() + "Loading ...")
	}
	return theme.ButtonStyle.Render("Send")
}

func (m *Model) tabBar() string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := theme.TabStyle
		if t == m.tab {
			style = theme.ActiveTabStyle
		}
		parts = append(parts, style.Render(t.String()))
	}
	return strings.Join(parts, " ")
}
