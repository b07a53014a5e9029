package home

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/nutcas3/apikit/internal/httpclient"
	"github.com/nutcas3/apikit/internal/screen"
)

// URLChangedMsg replaces the URL.
type URLChangedMsg struct {
	URL string
}

// MethodSelectedMsg selects the HTTP method.
type MethodSelectedMsg struct {
	Method httpclient.Method
}

// TabSelectedMsg switches the visible request editor.
type TabSelectedMsg struct {
	Tab Tab
}

// SendMsg dispatches the current request.
type SendMsg struct{}

// DoneMsg carries the outcome of a dispatched request.
type DoneMsg struct {
	ID      string
	Request httpclient.Request
	Result  httpclient.Result
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case URLChangedMsg:
		m.urlInput.SetValue(msg.URL)
		return m, nil

	case MethodSelectedMsg:
		if msg.Method >= httpclient.MethodGet && msg.Method <= httpclient.MethodDelete {
			m.method = msg.Method
			m.methodList.Select(int(msg.Method))
		}
		return m, nil

	case TabSelectedMsg:
		if msg.Tab >= 0 && msg.Tab < tabCount {
			m.tab = msg.Tab
		}
		return m, nil

	case SendMsg:
		return m, m.send()

	case DoneMsg:
		return m, m.done(msg)

	case screen.StyleChangedMsg:
		m.style = msg.Style
		m.refreshResponse()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.forward(msg)
}

func (m *Model) send() tea.Cmd {
	req := m.request()
	id := uuid.NewString()
	m.loading = true

	sender, logger := m.sender, m.logger
	logger.Info("sending request", "id", id, "method", req.Method.String(), "url", req.URL)

	effect := func() tea.Msg {
		res := sender.Do(context.Background(), req)
		if res.Err != nil {
			logger.Error("request failed", "id", id, "error", res.Err, "duration", res.Duration)
		} else {
			logger.Info("request done", "id", id, "status", res.StatusCode, "duration", res.Duration)
		}
		return DoneMsg{ID: id, Request: req, Result: res}
	}
	return tea.Batch(effect, m.spinner.Tick)
}

// done installs the result text verbatim; success and failure share this path.
func (m *Model) done(msg DoneMsg) tea.Cmd {
	m.loading = false
	m.response = msg.Result.Text()
	m.contentType = msg.Result.ContentType()
	m.refreshResponse()
	m.responseView.GotoTop()
	return screen.Status(summary(msg), msg.Result.Err != nil)
}

func summary(msg DoneMsg) string {
	line := fmt.Sprintf("%s %s", msg.Request.Method, msg.Request.URL)
	took := msg.Result.Duration.Round(time.Millisecond)
	switch {
	case msg.Result.Err != nil && msg.Result.StatusCode != 0:
		return fmt.Sprintf("%s - %s in %s, body unreadable", line, msg.Result.Status, took)
	case msg.Result.Err != nil:
		return line + " - no response"
	}
	return fmt.Sprintf("%s - %s in %s", line, msg.Result.Status, took)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.picking {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Send):
		return m.trySend()

	case key.Matches(msg, m.keys.NextPanel):
		return m.setFocus((m.focus + 1) % panelCount)

	case key.Matches(msg, m.keys.PrevPanel):
		return m.setFocus((m.focus - 1 + panelCount) % panelCount)

	case key.Matches(msg, m.keys.Copy):
		if err := m.copy(m.response); err != nil {
			return screen.Status(fmt.Sprintf("copy failed: %v", err), true)
		}
		return screen.Status("response copied to clipboard", false)

	case key.Matches(msg, m.keys.TabParams):
		return m.selectTab(TabParams)
	case key.Matches(msg, m.keys.TabHeaders):
		return m.selectTab(TabHeaders)
	case key.Matches(msg, m.keys.TabBody):
		return m.selectTab(TabBody)

	case m.focus == methodPanel || m.focus == responsePanel:
		switch {
		case key.Matches(msg, m.keys.NextTab):
			return m.selectTab((m.tab + 1) % tabCount)
		case key.Matches(msg, m.keys.PrevTab):
			return m.selectTab((m.tab - 1 + tabCount) % tabCount)
		case m.focus == methodPanel && key.Matches(msg, m.keys.Enter):
			m.picking = true
			return nil
		}

	case m.focus == urlPanel && key.Matches(msg, m.keys.Enter):
		return m.trySend()
	}

	return m.forward(msg)
}

// trySend mirrors the disabled send button: nothing happens while loading.
func (m *Model) trySend() tea.Cmd {
	if m.loading {
		return nil
	}
	_, cmd := m.Update(SendMsg{})
	return cmd
}

func (m *Model) selectTab(t Tab) tea.Cmd {
	_, cmd := m.Update(TabSelectedMsg{Tab: t})
	return cmd
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.picking = false
		m.methodList.Select(int(m.method))
		return nil
	case key.Matches(msg, m.keys.Enter):
		m.picking = false
		if it, ok := m.methodList.SelectedItem().(methodItem); ok {
			_, cmd := m.Update(MethodSelectedMsg{Method: it.method})
			return cmd
		}
		return nil
	}
	var cmd tea.Cmd
	m.methodList, cmd = m.methodList.Update(msg)
	return cmd
}

// forward hands msg to the focused widget.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case urlPanel:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case editorPanel:
		m.editors[m.tab], cmd = m.editors[m.tab].Update(msg)
	case responsePanel:
		m.responseView, cmd = m.responseView.Update(msg)
	}
	return cmd
}
