package chat

import (
	"strings"
	"testing"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "short message used verbatim",
			content: "What is the VPN policy?",
			want:    "What is the VPN policy?",
		},
		{
			name:    "exactly fifty runes untouched",
			content: strings.Repeat("a", 50),
			want:    strings.Repeat("a", 50),
		},
		{
			name:    "long message cut at fifty runes",
			content: strings.Repeat("a", 60),
			want:    strings.Repeat("a", 50) + "...",
		},
		{
			name:    "rune boundary not byte boundary",
			content: strings.Repeat("ü", 51),
			want:    strings.Repeat("ü", 50) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTitle(tt.content); got != tt.want {
				t.Errorf("DeriveTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStore_NewSession(t *testing.T) {
	st := NewStore()

	first := st.NewSession()
	second := st.NewSession()

	if first.Title != DefaultTitle || second.Title != DefaultTitle {
		t.Errorf("new sessions should start titled %q", DefaultTitle)
	}
	if cur := st.Current(); cur == nil || cur.ID != second.ID {
		t.Errorf("newest session should be current")
	}

	sessions := st.Sessions()
	if len(sessions) != 2 || sessions[0].ID != second.ID {
		t.Errorf("sessions should list newest first, got %v", sessions)
	}
}

func TestStore_AddMessage_TitleFromFirstUserMessage(t *testing.T) {
	st := NewStore()
	s := st.NewSession()

	if _, err := st.AddMessage(s.ID, RoleUser, "hello there"); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}
	if s.Title != "hello there" {
		t.Errorf("title = %q, want first user message", s.Title)
	}

	// Later messages never rewrite the title.
	if _, err := st.AddMessage(s.ID, RoleUser, "second message"); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}
	if s.Title != "hello there" {
		t.Errorf("title changed to %q after second message", s.Title)
	}
}

func TestStore_AddMessage_AssistantFirstKeepsDefaultTitle(t *testing.T) {
	st := NewStore()
	s := st.NewSession()

	if _, err := st.AddMessage(s.ID, RoleAssistant, "welcome"); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}
	if s.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", s.Title, DefaultTitle)
	}
}

func TestStore_AddMessage_UnknownSession(t *testing.T) {
	st := NewStore()
	if _, err := st.AddMessage("missing", RoleUser, "hi"); err != ErrSessionNotFound {
		t.Errorf("AddMessage() error = %v, want ErrSessionNotFound", err)
	}
}

func TestStore_DeleteSession(t *testing.T) {
	st := NewStore()
	first := st.NewSession()
	second := st.NewSession()

	if err := st.DeleteSession(second.ID); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if st.Current() != nil {
		t.Errorf("deleting the current session should leave none selected")
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}

	if err := st.SetCurrent(first.ID); err != nil {
		t.Fatalf("SetCurrent() error = %v", err)
	}
	if err := st.DeleteSession("missing"); err != ErrSessionNotFound {
		t.Errorf("DeleteSession() error = %v, want ErrSessionNotFound", err)
	}
	if cur := st.Current(); cur == nil || cur.ID != first.ID {
		t.Errorf("failed delete should not change the current session")
	}
}
