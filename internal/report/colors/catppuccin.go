package colors

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha colors used by the signal report
var (
	Surface1 = lipgloss.Color("#45475a")
	Overlay1 = lipgloss.Color("#7f849c")
	Subtext0 = lipgloss.Color("#a6adc8")
	Text     = lipgloss.Color("#cdd6f4")

	Green = lipgloss.Color("#a6e3a1") // signal SET
	Red   = lipgloss.Color("#f38ba8") // failures
	Mauve = lipgloss.Color("#cba6f7") // device title
)
