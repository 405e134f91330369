package tui

import (
	"promptify/internal/chat"
	"promptify/internal/docs"
)

// backend is the slice of the API client the UI needs.
type backend interface {
	chat.Querier
	docs.Client
}

// ingestMode tags the three modal input variants. Only one variant is live
// per submission.
type ingestMode int

const (
	modeText ingestMode = iota
	modeFile
	modeLink
)

func (m ingestMode) label() string {
	switch m {
	case modeText:
		return "Text"
	case modeFile:
		return "File"
	case modeLink:
		return "Link"
	default:
		return "?"
	}
}

// queryResultMsg carries the outcome of a backend query. It is applied to
// the session even when the user pressed stop while it was in flight.
type queryResultMsg struct {
	sessionID string
	answer    string
	err       error
}

// documentsLoadedMsg carries a freshly fetched document list.
type documentsLoadedMsg struct {
	documents []docs.Document
	err       error
}

// docDeletedMsg carries the outcome of a single document deletion.
type docDeletedMsg struct {
	id  string
	err error
}

// bulkDeleteResultMsg carries the outcome of deleting a selection. Each id
// is attempted independently; deleted holds the ones that succeeded.
type bulkDeleteResultMsg struct {
	deleted map[string]bool
	err     error
}

// ingestResultMsg carries the outcome of a modal submission.
type ingestResultMsg struct {
	mode ingestMode
	name string
	doc  *docs.Document
	err  error
}

// copyFeedbackExpiredMsg clears the transient "Copied!" indicator.
type copyFeedbackExpiredMsg struct{}
