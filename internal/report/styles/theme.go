package styles

import (
	"io"

	"github.com/allbin/go-upsline/internal/report/colors"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles for one output writer. Colors degrade to plain
// text when the writer is not a color terminal.
type Theme struct {
	Title  lipgloss.Style
	Set    lipgloss.Style
	Clear  lipgloss.Style
	Error  lipgloss.Style
	Header lipgloss.Style
	Border lipgloss.Color
}

// New builds a theme rendered for w
func New(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colors.Mauve),
		Set: r.NewStyle().
			Foreground(colors.Green).
			Bold(true),
		Clear: r.NewStyle().
			Foreground(colors.Overlay1),
		Error: r.NewStyle().
			Bold(true).
			Foreground(colors.Red),
		Header: r.NewStyle().
			Bold(true).
			Foreground(colors.Text),
		Border: colors.Subtext0,
	}
}

// Plain returns a theme that renders every string unchanged
func Plain() Theme {
	s := lipgloss.NewStyle()
	return Theme{Title: s, Set: s, Clear: s, Error: s, Header: s, Border: colors.Surface1}
}

// State renders SET or CLEAR
func (t Theme) State(set bool) string {
	if set {
		return t.Set.Render("SET")
	}
	return t.Clear.Render("CLEAR")
}
