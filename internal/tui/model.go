package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cvchat/internal/app"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type replyMsg struct {
	reply string
	err   error
}

type spinMsg struct{}

type copyResetMsg struct{}

type statusClearMsg struct{}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type keyMap struct {
	Send     key.Binding
	NewChat  key.Binding
	Clear    key.Binding
	Export   key.Binding
	Sidebar  key.Binding
	Language key.Binding
	CopyLast key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Close    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Send:     key.NewBinding(key.WithKeys("enter")),
		NewChat:  key.NewBinding(key.WithKeys("ctrl+n")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l")),
		Export:   key.NewBinding(key.WithKeys("ctrl+e")),
		Sidebar:  key.NewBinding(key.WithKeys("ctrl+b")),
		Language: key.NewBinding(key.WithKeys("ctrl+g")),
		CopyLast: key.NewBinding(key.WithKeys("ctrl+y")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Close:    key.NewBinding(key.WithKeys("esc")),
	}
}

// Model is the bubbletea front end. It is strictly a subscriber of the
// engine: every state change goes through an Application or pipeline
// operation, and all mutation happens on the update loop.
type Model struct {
	app   *app.Application
	theme Theme
	keys  keyMap

	input  textarea.Model
	chatVP viewport.Model

	width  int
	height int
	ready  bool

	sidebarOpen bool
	sidebarSel  int

	status     string
	copied     bool
	spinnerPos int
}

func New(application *app.Application) *Model {
	ta := textarea.New()
	ta.Placeholder = application.Strings().Placeholder
	ta.Focus()
	ta.CharLimit = 8000
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Prompt = "▍ "

	return &Model{
		app:   application,
		theme: NewTheme(),
		keys:  newKeyMap(),
		input: ta,
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 6)
		chatHeight := msg.Height - m.input.Height() - 6
		if chatHeight < 3 {
			chatHeight = 3
		}
		if !m.ready {
			m.chatVP = viewport.New(m.chatWidth(), chatHeight)
			m.ready = true
		} else {
			m.chatVP.Width = m.chatWidth()
			m.chatVP.Height = chatHeight
		}
		m.refreshChat()
		return m, nil

	case tea.KeyMsg:
		if m.sidebarOpen {
			return m.updateSidebar(msg)
		}
		return m.updateChat(msg)

	case replyMsg:
		m.app.Pipeline.Complete(msg.reply, msg.err)
		m.refreshChat()
		return m, nil

	case spinMsg:
		if !m.app.Pipeline.Busy() {
			return m, nil
		}
		m.spinnerPos = (m.spinnerPos + 1) % len(spinnerFrames)
		return m, m.spin()

	case copyResetMsg:
		m.copied = false
		return m, nil

	case statusClearMsg:
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// Flush the live conversation into the archive on the way out
		// so the session-end log reflects it.
		if !m.app.Pipeline.Busy() {
			m.app.Store.SaveCurrent()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Send):
		return m, m.submit()

	case key.Matches(msg, m.keys.NewChat):
		m.app.StartNewChat()
		m.input.Reset()
		m.refreshChat()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.app.ClearChat()
		m.refreshChat()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		name, err := m.app.Export()
		if err != nil {
			return m, m.flashStatus(err.Error())
		}
		return m, m.flashStatus(m.app.Strings().ExportChat + ": " + name)

	case key.Matches(msg, m.keys.Sidebar):
		m.sidebarOpen = true
		m.sidebarSel = 0
		return m, nil

	case key.Matches(msg, m.keys.Language):
		m.app.CycleLanguage()
		m.input.Placeholder = m.app.Strings().Placeholder
		m.refreshChat()
		return m, nil

	case key.Matches(msg, m.keys.CopyLast):
		return m, m.copyLastReply()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	archive := m.app.Store.Archive()
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Sidebar):
		m.sidebarOpen = false
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.sidebarSel > 0 {
			m.sidebarSel--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.sidebarSel < len(archive)-1 {
			m.sidebarSel++
		}
		return m, nil

	case key.Matches(msg, m.keys.Send):
		if m.sidebarSel >= 0 && m.sidebarSel < len(archive) {
			m.app.LoadConversation(archive[m.sidebarSel].ID)
			m.sidebarOpen = false
			m.refreshChat()
		}
		return m, nil
	}
	return m, nil
}

// submit stages the typed input and runs the pipeline's accept phase
// on the update loop; only the network call leaves it.
func (m *Model) submit() tea.Cmd {
	raw := m.input.Value()

	// Attachment commands are a front-end affordance over the staging
	// area; the engine only sees the staged file.
	if cmd, handled := m.handleSlashCommand(raw); handled {
		m.input.Reset()
		return cmd
	}

	m.app.Staging.SetText(raw)
	draft, err := m.app.Pipeline.Accept()
	if err != nil {
		return nil
	}
	m.input.Reset()
	m.refreshChat()
	return tea.Batch(m.dispatch(draft), m.spin())
}

func (m *Model) handleSlashCommand(raw string) (tea.Cmd, bool) {
	line := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(line, "/attach "):
		path := strings.TrimSpace(strings.TrimPrefix(line, "/attach "))
		data, err := os.ReadFile(path)
		if err != nil {
			return m.flashStatus(err.Error()), true
		}
		if err := m.app.Staging.Attach(filepath.Base(path), data); err != nil {
			return m.flashStatus(err.Error()), true
		}
		return m.flashStatus("📎 " + filepath.Base(path)), true

	case line == "/detach":
		m.app.Staging.Detach()
		return m.flashStatus("detached"), true
	}
	return nil, false
}

func (m *Model) dispatch(draft app.Draft) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.app.Pipeline.Dispatch(context.Background(), draft)
		return replyMsg{reply: reply, err: err}
	}
}

func (m *Model) spin() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinMsg{}
	})
}

func (m *Model) flashStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

func (m *Model) chatWidth() int {
	w := m.width
	if m.sidebarOpen {
		w -= sidebarWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) refreshChat() {
	if !m.ready {
		return
	}
	m.chatVP.Width = m.chatWidth()
	m.chatVP.SetContent(m.renderConversation())
	m.chatVP.GotoBottom()
}
