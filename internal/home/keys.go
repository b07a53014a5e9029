package home

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"

	"github.com/nutcas3/apikit/internal/httpclient"
	"github.com/nutcas3/apikit/internal/theme"
)

const (
	methodBoxWidth   = 10
	buttonWidth      = 17
	methodListWidth  = 34
	methodListHeight = 10
)

type keyMap struct {
	NextPanel  key.Binding
	PrevPanel  key.Binding
	Enter      key.Binding
	Send       key.Binding
	Cancel     key.Binding
	TabParams  key.Binding
	TabHeaders key.Binding
	TabBody    key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Copy       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick method / send"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "send request"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close picker"),
		),
		TabParams: key.NewBinding(
			key.WithKeys("alt+1"),
			key.WithHelp("alt+1", "params"),
		),
		TabHeaders: key.NewBinding(
			key.WithKeys("alt+2"),
			key.WithHelp("alt+2", "headers"),
		),
		TabBody: key.NewBinding(
			key.WithKeys("alt+3"),
			key.WithHelp("alt+3", "body"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous tab"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy response"),
		),
	}
}

// ShortHelp lists the bindings shown in the help line.
func (m *Model) ShortHelp() []key.Binding {
	k := m.keys
	return []key.Binding{k.NextPanel, k.Enter, k.Send, k.TabParams, k.TabHeaders, k.TabBody, k.Copy}
}

type methodItem struct {
	method httpclient.Method
}

func (i methodItem) Title() string {
	switch i.method {
	case httpclient.MethodPost:
		return "POST    - Create new data"
	case httpclient.MethodPut:
		return "PUT     - Update existing data"
	case httpclient.MethodDelete:
		return "DELETE  - Remove data"
	default:
		return "GET     - Retrieve data"
	}
}

func (i methodItem) Description() string { return "" }
func (i methodItem) FilterValue() string { return i.method.String() }

func newMethodList() list.Model {
	items := make([]list.Item, len(httpclient.Methods))
	for i, method := range httpclient.Methods {
		items[i] = methodItem{method: method}
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.PrimaryColor).
		Bold(true)

	l := list.New(items, delegate, methodListWidth, methodListHeight)
	l.Title = "HTTP Methods"
	l.Styles.Title = l.Styles.Title.
		Foreground(theme.PrimaryColor).
		Bold(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return l
}
