package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"promptify/internal/chat"
	"promptify/internal/docs"
)

// tab identifies the two top-level views.
type tab int

const (
	tabChat tab = iota
	tabDocs
)

// App is the root model. It owns the tab bar and window sizing and routes
// everything else to the active child view.
type App struct {
	theme  Theme
	logger *slog.Logger

	chat chatModel
	docs docsModel

	active tab
	width  int
	height int
}

// NewApp wires the UI over a chat service and a document store backed by
// the given client.
func NewApp(chatSvc *chat.Service, docStore *docs.Store, b backend, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.Default()
	}
	theme := defaultTheme
	return App{
		theme:  theme,
		logger: logger,
		chat:   newChatModel(chatSvc, b, theme),
		docs:   newDocsModel(docStore, b, theme),
	}
}

// Run starts the program and blocks until the user quits.
func (a App) Run() error {
	_, err := tea.NewProgram(a).Run()
	return err
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.chat.Init(), a.docs.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.chat.setSize(msg.Width, msg.Height-2)
		a.docs.setSize(msg.Width, msg.Height-2)
		return a, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit

		case "ctrl+q":
			return a, tea.Quit

		case "ctrl+t":
			// The modal reuses ctrl+t for its mode cycle.
			if a.active == tabDocs && a.docs.modal != nil {
				break
			}
			if a.active == tabChat {
				a.active = tabDocs
			} else {
				a.active = tabChat
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.active {
	case tabChat:
		a.chat, cmd = a.chat.Update(msg)
	case tabDocs:
		a.docs, cmd = a.docs.Update(msg)
	}

	// Results land on whichever tab owns them, even when the user has
	// switched away while the request was in flight. Spinner ticks go to
	// both; each spinner ignores ticks that are not its own.
	switch msg.(type) {
	case queryResultMsg, copyFeedbackExpiredMsg:
		if a.active != tabChat {
			var other tea.Cmd
			a.chat, other = a.chat.Update(msg)
			cmd = tea.Batch(cmd, other)
		}
	case documentsLoadedMsg, docDeletedMsg, bulkDeleteResultMsg, ingestResultMsg:
		if a.active != tabDocs {
			var other tea.Cmd
			a.docs, other = a.docs.Update(msg)
			cmd = tea.Batch(cmd, other)
		}
	case spinner.TickMsg:
		var other tea.Cmd
		if a.active == tabChat {
			a.docs, other = a.docs.Update(msg)
		} else {
			a.chat, other = a.chat.Update(msg)
		}
		cmd = tea.Batch(cmd, other)
	}

	return a, cmd
}

func (a App) View() tea.View {
	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n")

	switch a.active {
	case tabChat:
		b.WriteString(a.chat.View())
	case tabDocs:
		b.WriteString(a.docs.View())
	}

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

func (a App) headerView() string {
	title := a.theme.titleStyle().Render("Promptify")

	chatLabel := "Chat"
	if sess := a.chat.svc.Store().Current(); sess != nil && sess.Title != chat.DefaultTitle {
		chatLabel = fmt.Sprintf("Chat · %s", truncate(sess.Title, 24))
	}

	chatTab := a.theme.tabInactiveStyle().Render(chatLabel)
	docsTab := a.theme.tabInactiveStyle().Render("Documents")
	if a.active == tabChat {
		chatTab = a.theme.tabActiveStyle().Render(chatLabel)
	} else {
		docsTab = a.theme.tabActiveStyle().Render("Documents")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", chatTab, docsTab,
		"  ", a.theme.hintStyle().Render("Ctrl+T switch tab · Ctrl+C quit"))
}
