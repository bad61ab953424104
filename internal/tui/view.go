package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/inventory/internal/ui"
)

func (m Model) View() string {
	t := ui.Current()

	var content string
	switch m.screen {
	case screenItems:
		content = m.items.View()
	case screenResults:
		content = m.resultsView()
	default:
		content = m.categories.View()
	}

	if m.prompt != promptNone {
		bar := lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(t.BorderColor).
			Padding(0, 1)
		content += "\n" + bar.Render(m.promptTitle()+"\n"+m.ti.View())
	}
	if m.status != "" {
		content += "\n" + m.statusLine()
	}
	return ui.PanelString([]string{content})
}

func (m Model) promptTitle() string {
	switch m.prompt {
	case promptAddName:
		return "Add item to " + m.category
	case promptAddQuantity:
		return "Quantity for '" + m.addName + "'"
	case promptUpdateQuantity:
		return "New quantity for '" + m.editing + "'"
	case promptSearch:
		return "Search items"
	case promptImport:
		return "Import CSV"
	}
	return ""
}

func (m Model) statusLine() string {
	t := ui.Current()
	switch m.statusKind {
	case statusError:
		return t.Error.Render(t.SymFail + " " + m.status)
	case statusInfo:
		return t.Warn.Render(t.SymInfo + " " + m.status)
	default:
		return t.Success.Render(t.SymOK + " " + m.status)
	}
}

// resultsView shows a read-only report, clipped to the frame height.
func (m Model) resultsView() string {
	t := ui.Current()
	lines := append([]string{t.Title.Render(m.resultsTitle), ""}, m.results...)
	if limit := m.height - 6; limit > 3 && len(lines) > limit {
		more := len(lines) - limit + 1
		lines = append(lines[:limit-1:limit-1], t.Muted.Render("... and "+strconv.Itoa(more)+" more"))
	}
	lines = append(lines, "", t.Muted.Render("esc back • s search • l low stock • o overview • q quit"))
	return strings.Join(lines, "\n")
}
