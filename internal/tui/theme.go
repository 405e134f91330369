// Package tui implements the interactive terminal UI: a chat view and a
// document management view behind a two-tab layout.
package tui

import (
	lipglossv2 "charm.land/lipgloss/v2"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme for the UI.
type Theme struct {
	Accent     lipgloss.Color
	AccentDim  lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	UserRole   lipgloss.Color
	AssistRole lipgloss.Color
}

// defaultTheme provides default colors, echoing the emerald palette of the
// web UI this client replaces.
var defaultTheme = Theme{
	Accent:     lipgloss.Color("#00D787"), // emerald
	AccentDim:  lipgloss.Color("#007755"),
	Text:       lipgloss.Color("#D0D0D0"),
	Muted:      lipgloss.Color("#6C6C6C"),
	Error:      lipgloss.Color("#FF005F"),
	Success:    lipgloss.Color("#00D787"),
	UserRole:   lipgloss.Color("#00D787"),
	AssistRole: lipgloss.Color("#5FAFD7"),
}

func (t Theme) tabActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true).Padding(0, 2)
}

func (t Theme) tabInactiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 2)
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func (t Theme) userStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.UserRole).Bold(true)
}

func (t Theme) assistantStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.AssistRole).Bold(true)
}

func (t Theme) timestampStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

// spinnerStyle feeds the bubbles spinner, which expects a v2 style.
func (t Theme) spinnerStyle() lipglossv2.Style {
	return lipglossv2.NewStyle().Foreground(lipglossv2.Color(string(t.Accent)))
}

func (t Theme) selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

func (t Theme) borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.AccentDim)
}
