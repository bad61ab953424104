package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles + symbols + box border.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Warn lipgloss.Style
	Low, Selected                              lipgloss.Style
	Border                                     lipgloss.Border
	BorderColor                                lipgloss.TerminalColor
	SymOK, SymFail, SymInfo, SymLow, SymItem   string
	BarFull, BarEmpty                          string
}

var current = classic()

// SetTheme switches the active theme: classic (default), neon or mono.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warn:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Low:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymOK:       "✔",
		SymFail:     "✖",
		SymInfo:     "ℹ",
		SymLow:      "▼",
		SymItem:     "•",
		BarFull:     "█",
		BarEmpty:    "░",
	}
}

func neon() Theme {
	t := classic()
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")) // bright magenta
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true)
	t.Warn = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	t.Low = t.Warn.Bold(true)
	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
	t.BorderColor = lipgloss.Color("201")
	t.BarFull, t.BarEmpty = "▰", "▱"
	return t
}

// mono is plain ASCII with no colour at all.
func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:    plain.Bold(true),
		Muted:    plain,
		Accent:   plain,
		Success:  plain,
		Error:    plain,
		Warn:     plain,
		Low:      plain.Bold(true),
		Selected: plain.Reverse(true),
		Border: lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		},
		BorderColor: lipgloss.NoColor{},
		SymOK:       "ok",
		SymFail:     "x",
		SymInfo:     "i",
		SymLow:      "!",
		SymItem:     "-",
		BarFull:     "#",
		BarEmpty:    ".",
	}
}
