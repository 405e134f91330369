package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"promptify/internal/chat"
)

const sidebarWidth = 34

// chatModel is the chat tab: session sidebar, message viewport, input.
type chatModel struct {
	svc     *chat.Service
	backend backend
	theme   Theme

	viewport viewport.Model
	input    textarea.Model
	spin     spinner.Model
	md       *glamour.TermRenderer

	width     int
	height    int
	wrapWidth int

	// generating disables the input while a query is in flight. Stop only
	// clears the flag; the in-flight result is still applied on arrival.
	generating bool
	banner     string
	copied     bool

	sidebarOpen   bool
	sidebarCursor int
}

func newChatModel(svc *chat.Service, b backend, theme Theme) chatModel {
	ta := textarea.New()
	ta.Placeholder = "Type your message... (Ctrl+J for a new line)"
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.Prompt = "┃ "
	// Enter is the send key, so newlines move to ctrl+j.
	ta.KeyMap.InsertNewline.SetKeys("ctrl+j")

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = theme.spinnerStyle()

	return chatModel{
		svc:      svc,
		backend:  b,
		theme:    theme,
		viewport: viewport.New(),
		input:    ta,
		spin:     sp,
	}
}

func (m chatModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *chatModel) setSize(width, height int) {
	m.width = width
	m.height = height

	mainWidth := width
	if m.sidebarOpen {
		mainWidth -= sidebarWidth
	}
	m.input.SetWidth(mainWidth - 4)
	m.viewport.SetWidth(mainWidth)
	m.viewport.SetHeight(max(height-8, 3))
	m.wrapWidth = max(mainWidth-2, 20)

	if r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(mainWidth-6, 20)),
	); err == nil {
		m.md = r
	}
	m.refreshViewport()
}

func (m chatModel) Update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case queryResultMsg:
		// Applied even after stop: the request was never cancelled, so its
		// eventual answer still lands in the session.
		if _, err := m.svc.Complete(msg.sessionID, msg.answer, msg.err); err != nil {
			m.banner = "Failed to get a response. Please try again."
		}
		m.generating = false
		m.refreshViewport()
		return m, nil

	case copyFeedbackExpiredMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleKey(msg tea.KeyPressMsg) (chatModel, tea.Cmd) {
	if m.sidebarOpen {
		return m.handleSidebarKey(msg)
	}

	switch msg.String() {
	case "enter":
		return m.send()

	case "esc":
		if m.generating {
			// Stop generation: cosmetic only, the request keeps running.
			m.generating = false
		}
		return m, nil

	case "ctrl+n":
		m.svc.Store().NewSession()
		m.banner = ""
		m.refreshViewport()
		return m, nil

	case "ctrl+l":
		m.sidebarOpen = true
		m.sidebarCursor = 0
		m.input.Blur()
		m.setSize(m.width, m.height)
		return m, nil

	case "ctrl+y":
		return m.copyLastAnswer()

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.generating {
		// Input is disabled while a response is pending.
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleSidebarKey(msg tea.KeyPressMsg) (chatModel, tea.Cmd) {
	sessions := m.svc.Store().Sessions()

	switch msg.String() {
	case "esc", "ctrl+l", "q":
		m.sidebarOpen = false
		m.setSize(m.width, m.height)
		return m, m.input.Focus()

	case "up", "k":
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
		return m, nil

	case "down", "j":
		if m.sidebarCursor < len(sessions)-1 {
			m.sidebarCursor++
		}
		return m, nil

	case "enter":
		if m.sidebarCursor < len(sessions) {
			_ = m.svc.Store().SetCurrent(sessions[m.sidebarCursor].ID)
			m.banner = ""
			m.refreshViewport()
		}
		m.sidebarOpen = false
		m.setSize(m.width, m.height)
		return m, m.input.Focus()

	case "n":
		m.svc.Store().NewSession()
		m.sidebarCursor = 0
		m.refreshViewport()
		return m, nil

	case "x", "delete":
		if m.sidebarCursor < len(sessions) {
			_ = m.svc.Store().DeleteSession(sessions[m.sidebarCursor].ID)
			if m.sidebarCursor > 0 {
				m.sidebarCursor--
			}
			m.refreshViewport()
		}
		return m, nil
	}
	return m, nil
}

// send appends the user message synchronously so it is visible before the
// query resolves, then dispatches the backend call.
func (m chatModel) send() (chatModel, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.generating {
		return m, nil
	}

	sess := m.svc.Store().Current()
	if sess == nil {
		sess = m.svc.Store().NewSession()
	}
	if _, err := m.svc.Begin(sess.ID, text); err != nil {
		m.banner = "No active session. Please start a new chat."
		return m, nil
	}

	m.input.Reset()
	m.banner = ""
	m.generating = true
	m.refreshViewport()

	return m, tea.Batch(m.spin.Tick, queryCmd(m.backend, sess.ID, text))
}

func (m chatModel) copyLastAnswer() (chatModel, tea.Cmd) {
	sess := m.svc.Store().Current()
	if sess == nil {
		return m, nil
	}
	for i := len(sess.Messages) - 1; i >= 0; i-- {
		if sess.Messages[i].Role == chat.RoleAssistant {
			if err := clipboard.WriteAll(sess.Messages[i].Content); err == nil {
				m.copied = true
				return m, copyFeedbackCmd()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *chatModel) refreshViewport() {
	sess := m.svc.Store().Current()
	if sess == nil || len(sess.Messages) == 0 {
		m.viewport.SetContent(m.welcomeView())
		return
	}

	var b strings.Builder
	for i, msg := range sess.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *chatModel) renderMessage(msg *chat.Message) string {
	roleStyle := m.theme.userStyle()
	if msg.Role == chat.RoleAssistant {
		roleStyle = m.theme.assistantStyle()
	}
	header := roleStyle.Render(msg.Role.DisplayName()) + " " +
		m.theme.timestampStyle().Render(formatClock(msg.Timestamp))

	body := msg.Content
	if msg.Role == chat.RoleAssistant && m.md != nil {
		if rendered, err := m.md.Render(msg.Content); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	} else {
		body = lipgloss.NewStyle().Width(m.wrapWidth).Render(body)
	}

	return header + "\n" + body
}

func (m *chatModel) welcomeView() string {
	title := m.theme.titleStyle().Render("Welcome to Promptify")
	sub := m.theme.hintStyle().Render(
		"Start a conversation with the assistant. Ask questions about your\ndocuments, or just chat.")
	return "\n" + title + "\n\n" + sub + "\n"
}

func (m chatModel) View() string {
	main := m.mainView()
	if !m.sidebarOpen {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), main)
}

func (m chatModel) mainView() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	switch {
	case m.generating:
		b.WriteString(m.spin.View() + " " + m.theme.hintStyle().Render("Thinking... (Esc to stop)"))
	case m.banner != "":
		b.WriteString(m.theme.errorStyle().Render(m.banner))
	case m.copied:
		b.WriteString(m.theme.successStyle().Render("Copied!"))
	default:
		b.WriteString(" ")
	}
	b.WriteString("\n")

	b.WriteString(m.theme.borderStyle().Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.theme.hintStyle().Render(
		"Enter send · Ctrl+N new chat · Ctrl+L sessions · Ctrl+Y copy answer"))
	return b.String()
}

func (m chatModel) sidebarView() string {
	sessions := m.svc.Store().Sessions()
	current := m.svc.Store().Current()

	var b strings.Builder
	b.WriteString(m.theme.titleStyle().Render("Recent Chats"))
	b.WriteString("\n\n")

	if len(sessions) == 0 {
		b.WriteString(m.theme.hintStyle().Render("No chats yet"))
		b.WriteString("\n")
	}

	for i, s := range sessions {
		marker := "  "
		if i == m.sidebarCursor {
			marker = m.theme.selectedStyle().Render("> ")
		}
		title := truncate(s.Title, sidebarWidth-6)
		if current != nil && s.ID == current.ID {
			title = m.theme.selectedStyle().Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", marker, title))
		b.WriteString("  " + m.theme.timestampStyle().Render(relativeDate(s.UpdatedAt)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.hintStyle().Render("enter open · n new · x delete"))

	return lipgloss.NewStyle().
		Width(sidebarWidth - 2).
		Height(max(m.height-4, 3)).
		MarginRight(1).
		Render(b.String())
}
