package tui

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/filepicker"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// modalModel is the add/edit document form. It has three modes sharing one
// frame: free text, local file, and link. Exactly one mode's input is live
// per submission; switching modes clears nothing, so a half-typed text body
// survives a peek at the file picker.
type modalModel struct {
	theme Theme
	mode  ingestMode

	name    textinput.Model
	content textarea.Model
	link    textinput.Model
	picker  filepicker.Model

	// editingID is set when the form edits an existing document. Editing
	// is text-only; mode switching is disabled.
	editingID string

	focusBody bool
	errText   string
	width     int
}

func newModal(theme Theme, width int) modalModel {
	name := textinput.New()
	name.Placeholder = "Document name"
	name.CharLimit = 200

	content := textarea.New()
	content.Placeholder = "Paste or type the document content..."
	content.ShowLineNumbers = false
	content.SetHeight(8)

	link := textinput.New()
	link.Placeholder = "https://example.com/article"

	picker := filepicker.New()
	if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	}

	m := modalModel{
		theme:   theme,
		mode:    modeText,
		name:    name,
		content: content,
		link:    link,
		picker:  picker,
		width:   width,
	}
	m.setWidth(width)
	return m
}

func newEditModal(theme Theme, width int, id, docName, docContent string) modalModel {
	m := newModal(theme, width)
	m.editingID = id
	m.name.SetValue(docName)
	m.content.SetValue(docContent)
	return m
}

func (m *modalModel) setWidth(width int) {
	m.width = width
	inner := max(width-8, 24)
	m.name.SetWidth(inner)
	m.content.SetWidth(inner)
	m.link.SetWidth(inner)
}

func (m modalModel) Init() tea.Cmd {
	return tea.Batch(m.name.Focus(), m.picker.Init())
}

// Update returns the next modal state, a command, and a submit command.
// A non-nil submit means the form validated and dispatched an ingest; the
// parent closes the modal and waits for the result message.
func (m modalModel) Update(msg tea.Msg, b backend) (modalModel, tea.Cmd, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+t":
			if m.editingID == "" {
				m.mode = (m.mode + 1) % 3
				m.errText = ""
				return m, m.focusCmd(), nil
			}
			return m, nil, nil

		case "tab":
			if m.mode != modeFile {
				m.focusBody = !m.focusBody
				return m, m.focusCmd(), nil
			}

		case "ctrl+s":
			return m.submit(b)
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeText:
		if m.focusBody {
			m.content, cmd = m.content.Update(msg)
		} else {
			m.name, cmd = m.name.Update(msg)
		}
	case modeLink:
		if m.focusBody {
			m.link, cmd = m.link.Update(msg)
		} else {
			m.name, cmd = m.name.Update(msg)
		}
	case modeFile:
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			return m, nil, uploadFileCmd(b, path)
		}
	}
	return m, cmd, nil
}

func (m modalModel) submit(b backend) (modalModel, tea.Cmd, tea.Cmd) {
	switch m.mode {
	case modeText:
		if strings.TrimSpace(m.content.Value()) == "" {
			m.errText = "Please enter some content."
			return m, nil, nil
		}
		name := strings.TrimSpace(m.name.Value())
		if name == "" {
			name = "Untitled document"
		}
		return m, nil, ingestTextCmd(b, name, m.content.Value())

	case modeLink:
		link := strings.TrimSpace(m.link.Value())
		if link == "" {
			m.errText = "Please enter a URL."
			return m, nil, nil
		}
		if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			m.errText = "Please enter a valid URL."
			return m, nil, nil
		}
		return m, nil, ingestURLCmd(b, strings.TrimSpace(m.name.Value()), link)

	case modeFile:
		m.errText = "Select a file with Enter."
		return m, nil, nil
	}
	return m, nil, nil
}

func (m *modalModel) focusCmd() tea.Cmd {
	m.name.Blur()
	m.content.Blur()
	m.link.Blur()

	switch m.mode {
	case modeFile:
		return nil
	case modeText:
		if m.focusBody {
			return m.content.Focus()
		}
	case modeLink:
		if m.focusBody {
			return m.link.Focus()
		}
	}
	return m.name.Focus()
}

func (m modalModel) View() string {
	var b strings.Builder

	title := "Add Document"
	if m.editingID != "" {
		title = "Edit Document"
	}
	b.WriteString(m.theme.titleStyle().Render(title))
	b.WriteString("\n")

	if m.editingID == "" {
		var tabs []string
		for _, mode := range []ingestMode{modeText, modeFile, modeLink} {
			style := m.theme.tabInactiveStyle()
			if mode == m.mode {
				style = m.theme.tabActiveStyle()
			}
			tabs = append(tabs, style.Render(mode.label()))
		}
		b.WriteString(strings.Join(tabs, " "))
		b.WriteString("\n\n")
	} else {
		b.WriteString("\n")
	}

	switch m.mode {
	case modeText:
		b.WriteString(m.name.View())
		b.WriteString("\n\n")
		b.WriteString(m.content.View())
	case modeLink:
		b.WriteString(m.name.View())
		b.WriteString("\n\n")
		b.WriteString(m.link.View())
	case modeFile:
		b.WriteString(m.picker.View())
	}
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(m.theme.errorStyle().Render(m.errText))
		b.WriteString("\n")
	}

	hint := "Ctrl+S save · Tab switch field · Ctrl+T switch mode · Esc cancel"
	if m.editingID != "" {
		hint = "Ctrl+S save · Tab switch field · Esc cancel"
	} else if m.mode == modeFile {
		hint = "Enter select file · Ctrl+T switch mode · Esc cancel"
	}
	b.WriteString(m.theme.hintStyle().Render(hint))

	return m.theme.borderStyle().
		Width(max(m.width-4, 28)).
		Render(b.String())
}
