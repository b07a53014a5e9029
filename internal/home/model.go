// Package home implements the request screen: method picker, URL field,
// request editors and the response pane.
package home

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nutcas3/apikit/internal/highlight"
	"github.com/nutcas3/apikit/internal/httpclient"
	"github.com/nutcas3/apikit/internal/screen"
	"github.com/nutcas3/apikit/internal/theme"
)

// Tab selects which request editor is shown.
type Tab int

const (
	TabParams Tab = iota
	TabHeaders
	TabBody
	tabCount
)

var tabs = []Tab{TabParams, TabHeaders, TabBody}

func (t Tab) String() string {
	switch t {
	case TabHeaders:
		return "Headers"
	case TabBody:
		return "Body"
	default:
		return "Params"
	}
}

type panel int

const (
	methodPanel panel = iota
	urlPanel
	editorPanel
	responsePanel
	panelCount
)

// Sender performs the HTTP effect. *httpclient.Client satisfies it.
type Sender interface {
	Do(ctx context.Context, req httpclient.Request) httpclient.Result
}

// Options configures a new home screen.
type Options struct {
	Sender     Sender
	Logger     *slog.Logger
	Style      string
	AutoFormat bool
	Highlight  bool
	// Copy writes text to the system clipboard; defaults to clipboard.WriteAll.
	Copy func(string) error

	// Initial request, e.g. from command line flags or piped stdin.
	Method httpclient.Method
	URL    string
	Body   string
}

// State is a comparable snapshot of everything the screen owns.
type State struct {
	Loading  bool
	Method   httpclient.Method
	URL      string
	Params   string
	Headers  string
	Body     string
	Response string
	Tab      Tab
}

// Model is the home screen.
type Model struct {
	sender Sender
	logger *slog.Logger
	copy   func(string) error
	keys   keyMap

	method     httpclient.Method
	methodList list.Model
	picking    bool

	urlInput textinput.Model
	editors  [tabCount]textarea.Model
	tab      Tab

	response     string
	contentType  string
	responseView viewport.Model

	spinner spinner.Model
	loading bool

	focus      panel
	style      string
	autoFormat bool
	highlight  bool

	width  int
	height int
}

var _ screen.Screen = (*Model)(nil)

func New(opts Options) *Model {
	if opts.Sender == nil {
		opts.Sender = httpclient.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Style == "" {
		opts.Style = highlight.DefaultStyle
	}

	urlInput := textinput.New()
	urlInput.Placeholder = "enter url"
	urlInput.Prompt = ""
	urlInput.SetValue(opts.URL)
	urlInput.Focus()

	var editors [tabCount]textarea.Model
	placeholders := [tabCount]string{
		TabParams:  "page=1\nlimit=20",
		TabHeaders: "Authorization: Bearer token",
		TabBody:    "{\n  \"key\": \"value\"\n}",
	}
	for i := range editors {
		ta := textarea.New()
		ta.Placeholder = placeholders[i]
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		editors[i] = ta
	}
	editors[TabBody].SetValue(opts.Body)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.AccentColor)

	m := &Model{
		sender:       opts.Sender,
		logger:       opts.Logger,
		copy:         opts.Copy,
		keys:         defaultKeys(),
		method:       opts.Method,
		methodList:   newMethodList(),
		urlInput:     urlInput,
		editors:      editors,
		tab:          TabParams,
		responseView: viewport.New(0, 0),
		spinner:      s,
		focus:        urlPanel,
		style:        opts.Style,
		autoFormat:   opts.AutoFormat,
		highlight:    opts.Highlight,
	}
	m.methodList.Select(int(opts.Method))
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns a snapshot of the screen state.
func (m *Model) State() State {
	return State{
		Loading:  m.loading,
		Method:   m.method,
		URL:      m.urlInput.Value(),
		Params:   m.editors[TabParams].Value(),
		Headers:  m.editors[TabHeaders].Value(),
		Body:     m.editors[TabBody].Value(),
		Response: m.response,
		Tab:      m.tab,
	}
}

// request captures what will be sent right now.
func (m *Model) request() httpclient.Request {
	return httpclient.Request{
		Method:  m.method,
		URL:     m.urlInput.Value(),
		Params:  httpclient.ParseParams(m.editors[TabParams].Value()),
		Headers: httpclient.ParseHeaders(m.editors[TabHeaders].Value()),
		Body:    m.editors[TabBody].Value(),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// top row: method + url + button, each bordered (3 lines), then tabs.
	const topHeight = 3
	const tabsHeight = 1
	paneHeight := max(height-topHeight-tabsHeight-2, 3)

	m.urlInput.Width = max(width-methodBoxWidth-buttonWidth-8, 10)

	half := max(width/2-2, 10)
	for i := range m.editors {
		m.editors[i].SetWidth(half)
		m.editors[i].SetHeight(paneHeight)
	}
	m.responseView.Width = max(width-half-6, 10)
	m.responseView.Height = paneHeight
	m.methodList.SetSize(methodListWidth, min(paneHeight, methodListHeight))
	m.refreshResponse()
}

// refreshResponse re-renders the response buffer into the viewport.
func (m *Model) refreshResponse() {
	text := m.response
	if m.autoFormat {
		text = highlight.PrettyJSON(text)
	}
	if m.highlight {
		text = highlight.Highlight(text, m.contentType, m.style)
	}
	if m.responseView.Width > 0 {
		text = lipgloss.NewStyle().Width(m.responseView.Width).Render(text)
	}
	m.responseView.SetContent(text)
}

func (m *Model) setFocus(p panel) tea.Cmd {
	m.focus = p
	m.urlInput.Blur()
	for i := range m.editors {
		m.editors[i].Blur()
	}

	var cmds []tea.Cmd
	switch p {
	case urlPanel:
		cmds = append(cmds, m.urlInput.Focus())
	case editorPanel:
		for i := range m.editors {
			cmds = append(cmds, m.editors[i].Focus())
		}
	}
	return tea.Batch(cmds...)
}
