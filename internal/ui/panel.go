package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StockBar renders part of total as a bar with a percentage.
func StockBar(part, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	if part < 0 {
		part = 0
	}
	filled := int(float64(part) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	pct := int(float64(part) / float64(total) * 100)
	return fmt.Sprintf("%s%s %3d%%",
		strings.Repeat(current.BarFull, filled), strings.Repeat(current.BarEmpty, width-filled), pct)
}

// PanelString frames lines in the current theme's border.
func PanelString(lines []string) string {
	box := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}

// Panel prints a framed box.
func Panel(lines []string) {
	fmt.Fprintln(Stdout, PanelString(lines))
}

// Truncate shortens s to at most n visible cells, marking the cut with "...".
func Truncate(s string, n int) string {
	if lipgloss.Width(s) <= n || n <= 3 {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+3 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
