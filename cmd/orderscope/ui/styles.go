// Package ui implements the interactive order search screen.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#f4f5f6"),
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#8BC34A"),
		Muted:      lipgloss.Color("#6b7684"),
		Border:     lipgloss.Color("#dce0e5"),
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#141d2b"),
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#8BC34A"),
		Accent:     lipgloss.Color("#4db6ac"),
		Muted:      lipgloss.Color("#7a879a"),
		Border:     lipgloss.Color("#2a3850"),
		IsDark:     true,
	}
}

// Status colors, same in both modes.
var (
	colorPending    = lipgloss.Color("#FFC107")
	colorInProgress = lipgloss.Color("#2196F3")
	colorCompleted  = lipgloss.Color("#8BC34A")
	colorError      = lipgloss.Color("#e53935")
)

// Styles holds the styled components of the search screen.
type Styles struct {
	Theme Theme

	Header  lipgloss.Style
	Footer  lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Pending lipgloss.Style
	Error   lipgloss.Style

	GroupHeader lipgloss.Style
	Row         lipgloss.Style

	StatusPending    lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style
}

// NewStyles creates a Styles instance for the theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Pending: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true),

		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),

		GroupHeader: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true),

		Row: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		StatusPending:    lipgloss.NewStyle().Foreground(colorPending),
		StatusInProgress: lipgloss.NewStyle().Foreground(colorInProgress),
		StatusCompleted:  lipgloss.NewStyle().Foreground(colorCompleted),
	}
}

// DefaultStyles returns styles with the light theme.
func DefaultStyles() Styles {
	return NewStyles(LightTheme())
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
