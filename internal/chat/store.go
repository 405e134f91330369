package chat

import (
	"errors"
	"time"
)

// ErrSessionNotFound is returned when an operation references a session id
// that is not in the store.
var ErrSessionNotFound = errors.New("session not found")

// Store is the in-memory session collection. Sessions live for the process
// lifetime only; there is no persistence. The store is driven from a single
// event loop and is not safe for concurrent use.
type Store struct {
	sessions  []*Session
	currentID string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// NewSession creates a fresh session, prepends it to the collection, and
// makes it current.
func (st *Store) NewSession() *Session {
	s := NewSession()
	st.sessions = append([]*Session{s}, st.sessions...)
	st.currentID = s.ID
	return s
}

// Session returns the session with the given id.
func (st *Store) Session(id string) (*Session, bool) {
	for _, s := range st.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Sessions returns the sessions in display order, most recently created first.
func (st *Store) Sessions() []*Session {
	out := make([]*Session, len(st.sessions))
	copy(out, st.sessions)
	return out
}

// Current returns the current session, or nil when none is selected.
func (st *Store) Current() *Session {
	if st.currentID == "" {
		return nil
	}
	s, _ := st.Session(st.currentID)
	return s
}

// SetCurrent selects the session with the given id.
func (st *Store) SetCurrent(id string) error {
	if _, ok := st.Session(id); !ok {
		return ErrSessionNotFound
	}
	st.currentID = id
	return nil
}

// AddMessage appends a message to a session and refreshes its UpdatedAt.
// The first user message of a session also fixes the session title; the
// title never changes after that.
func (st *Store) AddMessage(sessionID string, role Role, content string) (*Message, error) {
	s, ok := st.Session(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	msg := NewMessage(role, content)
	s.Messages = append(s.Messages, msg)
	s.UpdatedAt = time.Now()

	if len(s.Messages) == 1 && role == RoleUser {
		s.Title = DeriveTitle(content)
	}

	return msg, nil
}

// DeleteSession removes a session from the collection. Deleting the current
// session leaves no session selected.
func (st *Store) DeleteSession(id string) error {
	for i, s := range st.sessions {
		if s.ID == id {
			st.sessions = append(st.sessions[:i], st.sessions[i+1:]...)
			if st.currentID == id {
				st.currentID = ""
			}
			return nil
		}
	}
	return ErrSessionNotFound
}

// Len returns the number of sessions.
func (st *Store) Len() int {
	return len(st.sessions)
}
