package chat

import (
	"context"
	"log/slog"
)

// ErrorReply is shown as the assistant's answer when the query call fails.
// The failure itself is surfaced separately as a banner by the caller.
const ErrorReply = "I apologize, but I encountered an error while processing your request. Please try again."

// Querier is the part of the API client the chat service needs.
type Querier interface {
	Query(ctx context.Context, prompt string) (string, error)
}

// Service coordinates the send flow: user message in, backend query,
// assistant message (or apology) out. Presentation layers never touch the
// query call directly.
type Service struct {
	store   *Store
	querier Querier
	logger  *slog.Logger
}

// NewService creates a chat service on top of a store and a querier.
func NewService(store *Store, querier Querier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, querier: querier, logger: logger}
}

// Store returns the underlying session store.
func (s *Service) Store() *Store {
	return s.store
}

// Begin appends the user message to the session. It performs no network
// activity, so the user message is visible before the query resolves.
func (s *Service) Begin(sessionID, text string) (*Message, error) {
	msg, err := s.store.AddMessage(sessionID, RoleUser, text)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("user message appended", "session", sessionID, "chars", len(text))
	return msg, nil
}

// Complete appends the outcome of a query to the session: the answer on
// success, the fixed apology on failure. The query error is passed through
// so the caller can surface a banner; the session mutation succeeds either
// way as long as the session still exists.
func (s *Service) Complete(sessionID, answer string, qerr error) (*Message, error) {
	content := answer
	if qerr != nil {
		content = ErrorReply
		s.logger.Warn("query failed", "session", sessionID, "error", qerr)
	}
	msg, err := s.store.AddMessage(sessionID, RoleAssistant, content)
	if err != nil {
		return nil, err
	}
	return msg, qerr
}

// Send runs the full flow synchronously: append the user message, query the
// backend, append the assistant message or the apology. The returned error
// is the query failure, if any; the apology message is appended regardless.
func (s *Service) Send(ctx context.Context, sessionID, text string) (*Message, error) {
	if _, err := s.Begin(sessionID, text); err != nil {
		return nil, err
	}
	answer, qerr := s.querier.Query(ctx, text)
	return s.Complete(sessionID, answer, qerr)
}
