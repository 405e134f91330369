package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Commands run off the event loop and must not touch UI state; they talk to
// the backend and report back via messages. All state mutation happens in
// Update handlers.

func queryCmd(b backend, sessionID, prompt string) tea.Cmd {
	return func() tea.Msg {
		answer, err := b.Query(context.Background(), prompt)
		return queryResultMsg{sessionID: sessionID, answer: answer, err: err}
	}
}

func loadDocumentsCmd(b backend) tea.Cmd {
	return func() tea.Msg {
		documents, err := b.ListDocuments(context.Background())
		return documentsLoadedMsg{documents: documents, err: err}
	}
}

func deleteDocumentCmd(b backend, id string) tea.Cmd {
	return func() tea.Msg {
		err := b.DeleteDocument(context.Background(), id)
		return docDeletedMsg{id: id, err: err}
	}
}

// bulkDeleteCmd deletes each selected document independently so one failure
// cannot abort the rest.
func bulkDeleteCmd(b backend, ids []string) tea.Cmd {
	return func() tea.Msg {
		deleted := make(map[string]bool, len(ids))
		var firstErr error
		for _, id := range ids {
			if err := b.DeleteDocument(context.Background(), id); err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			deleted[id] = true
		}
		return bulkDeleteResultMsg{deleted: deleted, err: firstErr}
	}
}

func ingestTextCmd(b backend, name, content string) tea.Cmd {
	return func() tea.Msg {
		doc, err := b.IngestText(context.Background(), content)
		return ingestResultMsg{mode: modeText, name: name, doc: doc, err: err}
	}
}

func uploadFileCmd(b backend, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return ingestResultMsg{mode: modeFile, err: err}
		}
		defer f.Close()

		doc, err := b.IngestFile(context.Background(), filepath.Base(path), f)
		return ingestResultMsg{mode: modeFile, name: filepath.Base(path), doc: doc, err: err}
	}
}

func ingestURLCmd(b backend, name, link string) tea.Cmd {
	return func() tea.Msg {
		doc, err := b.IngestURL(context.Background(), link)
		return ingestResultMsg{mode: modeLink, name: name, doc: doc, err: err}
	}
}

func copyFeedbackCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return copyFeedbackExpiredMsg{}
	})
}
