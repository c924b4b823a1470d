package workflow

import (
	"strings"

	"github.com/alkime/notices/internal/tui/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// GlobalKeyMap holds the bindings available in every phase.
type GlobalKeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultGlobalKeyMap returns the global bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

func renderKeyHelp(keyBinding key.Binding, suffix ...string) string {
	s := style.Help.Render("[") + style.Key.Render(keyBinding.Help().Key) +
		style.Help.Render("] ") +
		style.Help.Render(keyBinding.Help().Desc)

	s += strings.Join(suffix, "")

	return s
}

func renderGlobalKeyHelp() string {
	km := DefaultGlobalKeyMap()
	s := renderKeyHelp(km.Quit, " ")
	s += renderKeyHelp(km.ForceQuit, "\n")
	return s
}

// wrapText wraps the given text to fit within the specified width using lipgloss.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	return lipgloss.NewStyle().Width(width).Render(text)
}
