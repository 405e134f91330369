package tui

import (
	"testing"
	"time"

	"promptify/internal/docs"
)

func TestRelativeDate(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now, "Today"},
		{"yesterday", now.Add(-26 * time.Hour), "Yesterday"},
		{"three days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeDate(tt.t); got != tt.want {
				t.Errorf("relativeDate() = %q, want %q", got, tt.want)
			}
		})
	}

	old := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	if got := relativeDate(old); got != "2025-03-09" {
		t.Errorf("relativeDate(old) = %q, want the date", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"cut", "a longer string", 8, "a longe…"},
		{"zero width", "anything", 0, ""},
		{"wide runes", "ねこねこねこ", 7, "ねこね…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestNextSortKey_Cycles(t *testing.T) {
	key := docs.SortByName
	seen := map[docs.SortKey]bool{key: true}
	for i := 0; i < len(docs.SortKeys)-1; i++ {
		key = nextSortKey(key)
		if seen[key] {
			t.Fatalf("cycle revisited %s early", key)
		}
		seen[key] = true
	}
	if got := nextSortKey(key); got != docs.SortByName {
		t.Errorf("cycle did not wrap, got %s", got)
	}

	if got := nextSortKey(docs.SortKey("bogus")); got != docs.SortKeys[0] {
		t.Errorf("unknown key should reset the cycle, got %s", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo"); got != "one" {
		t.Errorf("firstLine() = %q", got)
	}
	if got := firstLine("single"); got != "single" {
		t.Errorf("firstLine() = %q", got)
	}
}
