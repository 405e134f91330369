package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"promptify/internal/docs"
)

// docViewMode toggles between the row listing and the card grid.
type docViewMode int

const (
	viewTable docViewMode = iota
	viewGrid
)

// docsModel is the documents tab: searchable, sortable listing with
// multi-select, bulk delete, and the add/edit modal.
type docsModel struct {
	store   *docs.Store
	backend backend
	theme   Theme

	search textinput.Model
	filter docs.Filter
	// visible is the filtered, sorted projection the cursor moves over.
	// It is recomputed after every store or filter change.
	visible []docs.Document

	spin     spinner.Model
	viewMode docViewMode
	cursor   int
	selected map[string]bool

	loading   bool
	searching bool
	banner    string
	status    string

	confirming bool
	confirmIDs []string

	modal *modalModel
	// pendingEditID is the document being edited; when the re-ingest
	// result arrives the old entry is dropped in favor of the server's.
	pendingEditID string

	width  int
	height int
}

func newDocsModel(store *docs.Store, b backend, theme Theme) docsModel {
	search := textinput.New()
	search.Placeholder = "Search documents..."

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = theme.spinnerStyle()

	return docsModel{
		store:    store,
		backend:  b,
		theme:    theme,
		search:   search,
		filter:   docs.DefaultFilter(),
		spin:     sp,
		selected: make(map[string]bool),
	}
}

func (m docsModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadDocumentsCmd(m.backend))
}

func (m *docsModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.search.SetWidth(max(width-20, 20))
	if m.modal != nil {
		m.modal.setWidth(width)
	}
}

func (m *docsModel) refresh() {
	m.visible = m.filter.Apply(m.store.Documents())
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

func (m docsModel) Update(msg tea.Msg) (docsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case documentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.banner = "Failed to load documents. Please try again."
			return m, nil
		}
		m.banner = ""
		m.store.Replace(msg.documents)
		m.refresh()
		return m, nil

	case docDeletedMsg:
		if msg.err != nil {
			m.banner = "Failed to delete selected documents. Please try again."
			return m, nil
		}
		m.store.Remove(msg.id)
		delete(m.selected, msg.id)
		m.status = "Document deleted"
		m.refresh()
		return m, nil

	case bulkDeleteResultMsg:
		m.store.RemoveMany(msg.deleted)
		for id := range msg.deleted {
			delete(m.selected, id)
		}
		if msg.err != nil {
			m.banner = "Failed to delete selected documents. Please try again."
		} else {
			m.status = fmt.Sprintf("%d documents deleted", len(msg.deleted))
		}
		m.refresh()
		return m, nil

	case ingestResultMsg:
		return m.handleIngestResult(msg)
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.filter.Search = m.search.Value()
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m docsModel) handleIngestResult(msg ingestResultMsg) (docsModel, tea.Cmd) {
	editID := m.pendingEditID
	m.pendingEditID = ""

	if msg.err != nil {
		m.banner = "Failed to save document. Please try again."
		return m, nil
	}
	m.banner = ""

	doc := *msg.doc
	if doc.Name == "" {
		if msg.name != "" {
			doc.Name = msg.name
		} else {
			doc.Name = "Untitled document"
		}
	}

	// The server's entity is authoritative. An edit whose re-ingest came
	// back under a new id drops the stale entry instead of refetching.
	if editID != "" && editID != doc.ID {
		m.store.Remove(editID)
	}
	switch msg.mode {
	case modeText:
		m.store.Upsert(doc)
		m.status = "Document saved"
	default:
		m.store.Prepend(doc)
		m.status = "Document added"
	}
	m.refresh()
	return m, nil
}

func (m docsModel) updateModal(msg tea.Msg) (docsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		m.modal = nil
		m.pendingEditID = ""
		return m, nil
	}

	modal, cmd, submit := m.modal.Update(msg, m.backend)
	m.modal = &modal
	if submit != nil {
		m.modal = nil
		m.status = ""
		return m, submit
	}
	return m, cmd
}

func (m docsModel) handleKey(msg tea.KeyPressMsg) (docsModel, tea.Cmd) {
	if m.modal != nil {
		return m.updateModal(msg)
	}

	if m.confirming {
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirming = false
			ids := m.confirmIDs
			m.confirmIDs = nil
			if len(ids) == 1 {
				return m, deleteDocumentCmd(m.backend, ids[0])
			}
			return m, bulkDeleteCmd(m.backend, ids)
		case "n", "N", "esc":
			m.confirming = false
			m.confirmIDs = nil
		}
		return m, nil
	}

	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.Reset()
			m.filter.Search = ""
			m.refresh()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.filter.Search = m.search.Value()
		m.refresh()
		return m, cmd
	}

	switch msg.String() {
	case "/":
		m.searching = true
		m.status = ""
		return m, m.search.Focus()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "s":
		m.filter.SortBy = nextSortKey(m.filter.SortBy)
		m.refresh()

	case "o":
		if m.filter.SortOrder == docs.OrderAsc {
			m.filter.SortOrder = docs.OrderDesc
		} else {
			m.filter.SortOrder = docs.OrderAsc
		}
		m.refresh()

	case "v":
		if m.viewMode == viewTable {
			m.viewMode = viewGrid
		} else {
			m.viewMode = viewTable
		}

	case " ", "space":
		if m.cursor < len(m.visible) {
			id := m.visible[m.cursor].ID
			if m.selected[id] {
				delete(m.selected, id)
			} else {
				m.selected[id] = true
			}
		}

	case "a":
		if len(m.selected) == len(m.visible) && len(m.visible) > 0 {
			m.selected = make(map[string]bool)
		} else {
			for _, d := range m.visible {
				m.selected[d.ID] = true
			}
		}

	case "x", "d":
		ids := m.selectionOrCursor()
		if len(ids) > 0 {
			m.confirming = true
			m.confirmIDs = ids
			m.status = ""
		}

	case "n":
		modal := newModal(m.theme, m.width)
		m.modal = &modal
		m.status = ""
		return m, modal.Init()

	case "e":
		if m.cursor < len(m.visible) {
			doc := m.visible[m.cursor]
			modal := newEditModal(m.theme, m.width, doc.ID, doc.Name, doc.Content)
			m.modal = &modal
			m.pendingEditID = doc.ID
			m.status = ""
			return m, modal.Init()
		}

	case "r":
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spin.Tick, loadDocumentsCmd(m.backend))
	}
	return m, nil
}

// selectionOrCursor returns the selected ids, or the cursor document when
// nothing is selected.
func (m docsModel) selectionOrCursor() []string {
	if len(m.selected) > 0 {
		ids := make([]string, 0, len(m.selected))
		for _, d := range m.visible {
			if m.selected[d.ID] {
				ids = append(ids, d.ID)
			}
		}
		return ids
	}
	if m.cursor < len(m.visible) {
		return []string{m.visible[m.cursor].ID}
	}
	return nil
}

func nextSortKey(key docs.SortKey) docs.SortKey {
	for i, k := range docs.SortKeys {
		if k == key {
			return docs.SortKeys[(i+1)%len(docs.SortKeys)]
		}
	}
	return docs.SortKeys[0]
}

func (m docsModel) View() string {
	if m.modal != nil {
		return m.modal.View()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View() + " " + m.theme.hintStyle().Render("Loading documents..."))
	case len(m.visible) == 0:
		b.WriteString(m.emptyView())
	case m.viewMode == viewGrid:
		b.WriteString(m.gridView())
	default:
		b.WriteString(m.tableView())
	}
	b.WriteString("\n\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m docsModel) headerView() string {
	var left string
	if m.searching {
		left = m.search.View()
	} else if m.filter.Search != "" {
		left = m.theme.hintStyle().Render("search: ") + m.filter.Search
	} else {
		left = m.theme.titleStyle().Render(fmt.Sprintf("Documents (%d)", m.store.Len()))
	}

	sort := m.theme.hintStyle().Render(
		fmt.Sprintf("sort: %s %s", m.filter.SortBy, m.filter.SortOrder))
	return left + "  " + sort
}

func (m docsModel) emptyView() string {
	if m.filter.Search != "" {
		return m.theme.hintStyle().Render("No documents match your search.")
	}
	return m.theme.hintStyle().Render("No documents yet. Press n to add your first document.")
}

func (m docsModel) tableView() string {
	var b strings.Builder
	nameWidth := max(m.width-30, 20)

	for i, d := range m.visible {
		marker := "  "
		if i == m.cursor {
			marker = m.theme.selectedStyle().Render("> ")
		}
		check := "[ ] "
		if m.selected[d.ID] {
			check = m.theme.selectedStyle().Render("[x] ")
		}
		name := pad(truncate(d.Name, nameWidth), nameWidth)
		preview := truncate(firstLine(d.Content), max(m.width-nameWidth-10, 10))
		b.WriteString(marker + check + name + "  " + m.theme.hintStyle().Render(preview))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m docsModel) gridView() string {
	const cardWidth = 30
	cols := max(m.width/(cardWidth+2), 1)

	var rows []string
	var row []string
	for i, d := range m.visible {
		style := m.theme.borderStyle().Width(cardWidth)
		if i == m.cursor {
			style = style.BorderForeground(m.theme.Accent)
		}
		title := truncate(d.Name, cardWidth-2)
		if m.selected[d.ID] {
			title = m.theme.selectedStyle().Render("[x] ") + truncate(d.Name, cardWidth-6)
		}
		preview := truncate(firstLine(d.Content), cardWidth-2)
		row = append(row, style.Render(title+"\n"+m.theme.hintStyle().Render(preview)))

		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (m docsModel) footerView() string {
	if m.confirming {
		noun := "this document"
		if len(m.confirmIDs) > 1 {
			noun = fmt.Sprintf("%d documents", len(m.confirmIDs))
		}
		return m.theme.errorStyle().Render(
			fmt.Sprintf("Delete %s? (y/n)", noun))
	}

	var b strings.Builder
	switch {
	case m.banner != "":
		b.WriteString(m.theme.errorStyle().Render(m.banner))
	case m.status != "":
		b.WriteString(m.theme.successStyle().Render(m.status))
	default:
		b.WriteString(" ")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.hintStyle().Render(
		"/ search · s sort · o order · v view · space select · a all · n new · e edit · x delete · r refresh"))
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
