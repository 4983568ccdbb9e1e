package cli

import (
	"fmt"
	"strings"

	"tally/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3AA99F"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6F6E69"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#879A39"))
)

// RenderTitle renders a centered title in a bordered box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#282726")).
		Width(46).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

// TagDot renders a colored bullet for a palette color.
func TagDot(c model.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Variants().Accent)).
		Render("●")
}

// TagName renders a tag name tinted with its palette accent.
func TagName(name string, c model.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Variants().Accent)).
		Render(name)
}

// GroupHeader renders a group label with its right-aligned total.
func GroupHeader(label, total string, width int) string {
	gap := width - lipgloss.Width(label) - lipgloss.Width(total)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(label) + strings.Repeat(" ", gap) + totalStyle.Render(total)
}

// Row renders a two-column detail row under a group header, with the left
// cell dimmed id/name text and the right cell the amount.
func Row(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Muted renders dimmed helper text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Columns renders rows of cells padded to per-column widths, two spaces
// between columns. Cell widths are measured with ANSI styling stripped.
func Columns(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			pad := widths[i] - lipgloss.Width(cell)
			fmt.Fprintf(&b, "  %s%s", cell, strings.Repeat(" ", pad))
		}
		b.WriteString("\n")
	}
	return b.String()
}
