package tui

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// formatClock renders an absolute 24h timestamp for message headers.
func formatClock(t time.Time) string {
	return t.Format("15:04")
}

// relativeDate renders session ages the way the sidebar shows them.
func relativeDate(t time.Time) string {
	days := int(time.Since(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("2006-01-02")
	}
}

// truncate shortens s to the given display width, appending an ellipsis
// when anything was cut. Width-aware so wide runes do not break columns.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}
