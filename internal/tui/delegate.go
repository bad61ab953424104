package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/inventory/internal/ui"
)

// categoryItem adapts a category to bubbles/list.Item
type categoryItem struct {
	Name  string
	Items int
	Units int
	Low   int
}

func (c categoryItem) FilterValue() string { return c.Name }

// stockItem adapts one record of the open category
type stockItem struct {
	Name     string
	Quantity int
	Low      bool
}

func (s stockItem) FilterValue() string { return s.Name }

// Custom delegate to control how rows render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	t := ui.Current()
	width := m.Width() - 4
	if width < 20 {
		width = 20
	}

	var line string
	switch it := item.(type) {
	case categoryItem:
		counts := t.Muted.Render(fmt.Sprintf("%d items, %d units", it.Items, it.Units))
		line = fmt.Sprintf("%-18s %s", ui.Truncate(it.Name, 18), counts)
		if it.Low > 0 {
			line += " " + t.Low.Render(fmt.Sprintf("%s %d low", t.SymLow, it.Low))
		}
	case stockItem:
		sym, qty := t.Muted.Render(t.SymItem), fmt.Sprintf("%d", it.Quantity)
		if it.Low {
			sym, qty = t.Low.Render(t.SymLow), t.Low.Render(qty)
		}
		line = fmt.Sprintf("%s %s: %s", sym, ui.Truncate(it.Name, width-12), qty)
	default:
		return
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}
