package chat

import (
	"context"
	"errors"
	"testing"
)

// stubQuerier returns a canned answer or error.
type stubQuerier struct {
	answer string
	err    error
	calls  int
}

func (q *stubQuerier) Query(ctx context.Context, prompt string) (string, error) {
	q.calls++
	return q.answer, q.err
}

func TestService_Send_Success(t *testing.T) {
	st := NewStore()
	s := st.NewSession()
	q := &stubQuerier{answer: "42"}
	svc := NewService(st, q, nil)

	msg, err := svc.Send(context.Background(), s.ID, "meaning of life?")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if msg.Role != RoleAssistant || msg.Content != "42" {
		t.Errorf("answer message = %+v", msg)
	}

	// One user message and one assistant message, in order.
	if len(s.Messages) != 2 {
		t.Fatalf("session has %d messages, want 2", len(s.Messages))
	}
	if s.Messages[0].Role != RoleUser || s.Messages[0].Content != "meaning of life?" {
		t.Errorf("first message = %+v, want the user prompt", s.Messages[0])
	}
	if s.Messages[1].Role != RoleAssistant {
		t.Errorf("second message role = %v, want assistant", s.Messages[1].Role)
	}
}

func TestService_Send_FailureAppendsApology(t *testing.T) {
	st := NewStore()
	s := st.NewSession()
	boom := errors.New("backend down")
	svc := NewService(st, &stubQuerier{err: boom}, nil)

	msg, err := svc.Send(context.Background(), s.ID, "hello?")
	if !errors.Is(err, boom) {
		t.Fatalf("Send() error = %v, want the query error", err)
	}

	// The user message survives and the apology is the reply.
	if len(s.Messages) != 2 {
		t.Fatalf("session has %d messages, want 2", len(s.Messages))
	}
	if s.Messages[0].Role != RoleUser {
		t.Errorf("user message missing after failure")
	}
	if msg.Content != ErrorReply {
		t.Errorf("reply = %q, want the apology", msg.Content)
	}
}

func TestService_Send_UnknownSessionSkipsQuery(t *testing.T) {
	q := &stubQuerier{answer: "never"}
	svc := NewService(NewStore(), q, nil)

	if _, err := svc.Send(context.Background(), "missing", "hi"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Send() error = %v, want ErrSessionNotFound", err)
	}
	if q.calls != 0 {
		t.Errorf("querier called %d times for a missing session", q.calls)
	}
}

func TestService_Complete_LateResultStillApplied(t *testing.T) {
	st := NewStore()
	s := st.NewSession()
	svc := NewService(st, &stubQuerier{}, nil)

	if _, err := svc.Begin(s.ID, "slow question"); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	// The answer arrives after the user moved on; it still lands.
	if _, err := svc.Complete(s.ID, "late answer", nil); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got := s.Messages[len(s.Messages)-1].Content; got != "late answer" {
		t.Errorf("last message = %q, want the late answer", got)
	}
}
