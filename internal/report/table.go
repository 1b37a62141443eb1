package report

import (
	"fmt"
	"io"

	"github.com/allbin/go-upsline/internal/report/styles"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	lineWidth    = 5
	meaningWidth = 18
	stateWidth   = 7

	// each cell carries one column of padding on both sides
	tableWidth = lineWidth + meaningWidth + stateWidth + 3*2
)

func newSignalTable(snap Snapshot, theme styles.Theme) table.Model {
	columns := []table.Column{
		{Title: "Line", Width: lineWidth},
		{Title: "Meaning", Width: meaningWidth},
		{Title: "State", Width: stateWidth},
	}

	// cells are truncated by display width, so they stay unstyled
	plain := styles.Plain()
	rows := make([]table.Row, len(snap.Signals))
	for i, s := range snap.Signals {
		rows[i] = table.Row{s.Line, s.Meaning, plain.State(s.Set)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
		table.WithWidth(tableWidth),
	)

	s := table.DefaultStyles()
	s.Header = theme.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Padding(0, 1)
	// no row is highlighted in a one-shot report
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

func writeTable(w io.Writer, snap Snapshot, theme styles.Theme) error {
	t := newSignalTable(snap, theme)
	title := theme.Title.Render(fmt.Sprintf("UPS signals for %s (mask %d)", snap.Device, snap.Mask))
	_, err := fmt.Fprintf(w, "%s\n\n%s\n", title, t.View())
	return err
}
