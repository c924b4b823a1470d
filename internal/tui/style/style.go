// Package style defines lipgloss styles for the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
//
// Variable names intentionally omit "Style" suffix since they're accessed
// via the style package (e.g., style.Title reads better than style.TitleStyle).
var (
	// Title is used for the app header and phase titles.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Subtitle is used for secondary text.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Success is used for the exact-match banner.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// Info is used for the fallback banner.
	Info = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39"))

	// Error is used for error messages.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	// Warning is used for the no-match banner and form hints.
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	// Viewport is used for the results viewport border.
	Viewport = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Key is used for highlighting keyboard keys.
	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// Label is used for form field labels (e.g., "태그", "날씨").
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	// Muted is used for de-emphasized text (e.g., the original message).
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Cursor marks the focused field or tag.
	Cursor = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// Selected marks a chosen tag.
	Selected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// Bullet is used for list item markers.
	Bullet = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205"))
)
