// Package chat holds the in-memory chat session state and the send
// orchestration on top of it.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// Message is a single chat message. Messages are append-only within a
// session; they are never edited or deleted individually.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is one conversation thread: an ordered message list plus metadata.
// Message order is insertion order and is never reordered.
type Session struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Messages  []*Message `json:"messages"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// DefaultTitle is the title of a session before its first user message.
const DefaultTitle = "New Chat"

// titleLimit is the maximum number of runes carried into a derived title.
const titleLimit = 50

// DeriveTitle builds a session title from its first user message: the
// message verbatim when it fits, otherwise the first 50 runes with an
// ellipsis appended.
func DeriveTitle(firstMessage string) string {
	runes := []rune(firstMessage)
	if len(runes) <= titleLimit {
		return firstMessage
	}
	return string(runes[:titleLimit]) + "..."
}

// NewMessage creates a message with a generated id and the current time.
func NewMessage(role Role, content string) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Content:   content,
		Role:      role,
		Timestamp: time.Now(),
	}
}

// NewSession creates an empty session with a generated id.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		Title:     DefaultTitle,
		Messages:  make([]*Message, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LastMessage returns the most recent message, or nil if the session is empty.
func (s *Session) LastMessage() *Message {
	if len(s.Messages) == 0 {
		return nil
	}
	return s.Messages[len(s.Messages)-1]
}
