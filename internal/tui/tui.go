package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/inventory/internal/inventory"
	"github.com/idilsaglam/inventory/internal/model"
	"github.com/idilsaglam/inventory/internal/ui"
)

type screen int

const (
	screenCategories screen = iota
	screenItems
	screenResults
)

type prompt int

const (
	promptNone prompt = iota
	promptAddName
	promptAddQuantity
	promptUpdateQuantity
	promptSearch
	promptImport
)

type statusKind int

const (
	statusOK statusKind = iota
	statusInfo
	statusError
)

var (
	addBind      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind     = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "update qty"))
	deleteBind   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	searchBind   = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "search"))
	lowBind      = key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "low stock"))
	overviewBind = key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overview"))
	exportBind   = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export"))
	importBind   = key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import"))
	backBind     = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
)

// Model is the bubbletea model. Every change goes straight to the store,
// which persists it, so there is nothing to save on quit.
type Model struct {
	store *inventory.Store

	screen     screen
	categories list.Model
	items      list.Model
	category   string // open category on screenItems

	// results screen (search, low stock, overview)
	resultsTitle string
	results      []string
	returnTo     screen

	// inline prompt
	prompt  prompt
	ti      textinput.Model
	addName string // carried from promptAddName to promptAddQuantity
	editing string // item being updated

	status     string
	statusKind statusKind

	width, height int
}

// Run starts the interactive view on st.
func Run(st *inventory.Store) error {
	p := tea.NewProgram(New(st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// New builds the initial model showing the category list.
func New(st *inventory.Store) Model {
	cats := newList("Inventory", "category", "categories")
	cats.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{searchBind, lowBind, overviewBind}
	}
	cats.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{searchBind, lowBind, overviewBind, exportBind, importBind}
	}

	items := newList("", "item", "items")
	items.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{addBind, editBind, deleteBind, backBind}
	}
	items.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{addBind, editBind, deleteBind, searchBind, lowBind, overviewBind, exportBind, importBind, backBind}
	}

	m := Model{
		store:      st,
		categories: cats,
		items:      items,
		width:      80,
		height:     24,
	}
	// text input shared by every prompt
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200

	m.refresh()
	m.resize()
	return m
}

func newList(title, singular, plural string) list.Model {
	t := ui.Current()
	l := list.New(nil, rowDelegate{}, 0, 0)
	l.Title = title
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName(singular, plural)
	return l
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.prompt != promptNone {
		return m.updatePrompt(msg)
	}

	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m.updateList(msg)
	}
	if km.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.screen != screenResults && m.activeList().SettingFilter() {
		return m.updateList(msg)
	}

	switch km.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		switch {
		case m.screen == screenResults:
			m.screen = m.returnTo
			return m, nil
		case m.activeList().FilterState() == list.FilterApplied:
			return m.updateList(msg)
		case m.screen == screenItems:
			m.screen = screenCategories
			return m, nil
		}
		return m, tea.Quit
	case "s":
		cmd := m.openPrompt(promptSearch, "Item name to search...", "")
		return m, cmd
	case "l":
		m.showLowStock()
		return m, nil
	case "o":
		m.showOverview()
		return m, nil
	case "x":
		path, n, err := m.store.Export("")
		if err != nil {
			m.setStatus(statusError, "Export failed: "+err.Error())
		} else {
			m.setStatus(statusOK, fmt.Sprintf("Exported %d records to %s", n, path))
		}
		return m, nil
	case "i":
		cmd := m.openPrompt(promptImport, "Path to CSV file...", "")
		return m, cmd
	}

	switch m.screen {
	case screenCategories:
		if km.String() == "enter" {
			if c, ok := m.categories.SelectedItem().(categoryItem); ok {
				m.openCategory(c.Name)
			}
			return m, nil
		}
	case screenItems:
		switch km.String() {
		case "a":
			cmd := m.openPrompt(promptAddName, "New item name...", "")
			return m, cmd
		case "e":
			if it, ok := m.items.SelectedItem().(stockItem); ok {
				m.editing = it.Name
				cmd := m.openPrompt(promptUpdateQuantity, "New quantity...", fmt.Sprint(it.Quantity))
				return m, cmd
			}
			return m, nil
		case "d":
			if it, ok := m.items.SelectedItem().(stockItem); ok {
				m.apply(m.store.Remove(m.category, it.Name),
					fmt.Sprintf("Removed '%s' from %s.", it.Name, m.category))
			}
			return m, nil
		}
	case screenResults:
		return m, nil
	}
	return m.updateList(msg)
}

func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			m.closePrompt()
			return m, nil
		case "enter":
			value := m.ti.Value()
			kind := m.prompt
			m.closePrompt()
			cmd := m.submit(kind, value)
			return m, cmd
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// submit runs the action behind a confirmed prompt. A prompt may chain into
// the next one (item name, then quantity).
func (m *Model) submit(kind prompt, value string) tea.Cmd {
	switch kind {
	case promptAddName:
		name := strings.TrimSpace(value)
		if name == "" {
			m.setStatus(statusError, "Item name cannot be empty.")
			return nil
		}
		m.addName = name
		return m.openPrompt(promptAddQuantity, fmt.Sprintf("Quantity for '%s'...", name), "")

	case promptAddQuantity:
		q, err := inventory.ParseQuantity(value)
		if err != nil {
			m.setStatus(statusError, "Quantity must be a number.")
			return nil
		}
		m.apply(m.store.Add(m.category, m.addName, q),
			fmt.Sprintf("Added '%s' with quantity %d to %s.", m.addName, q, m.category))

	case promptUpdateQuantity:
		q, err := inventory.ParseQuantity(value)
		if err != nil {
			m.setStatus(statusError, "Quantity must be a number.")
			return nil
		}
		m.apply(m.store.Update(m.category, m.editing, q),
			fmt.Sprintf("Updated '%s' to quantity %d in %s.", m.editing, q, m.category))

	case promptSearch:
		recs, err := m.store.Search(value)
		if err != nil {
			m.setStatus(statusError, errorText(err))
			return nil
		}
		lines := recordLines(recs, m.store.Threshold())
		if len(lines) == 0 {
			lines = []string{ui.Current().Muted.Render("No items found.")}
		}
		m.showResults(fmt.Sprintf("Search results for %q", strings.TrimSpace(value)), lines)

	case promptImport:
		path := strings.TrimSpace(value)
		if path == "" {
			return nil
		}
		res, err := m.store.Import(path)
		if err != nil {
			m.setStatus(statusError, "Failed to import inventory: "+err.Error())
			return nil
		}
		m.refresh()
		m.setStatus(statusOK, fmt.Sprintf("Imported %d records from %s.", res.Rows, path))
	}
	return nil
}

// apply reports the outcome of a store mutation and refreshes the lists.
func (m *Model) apply(err error, success string) {
	switch {
	case err == nil:
		m.setStatus(statusOK, success)
	case errors.Is(err, model.ErrDuplicateItem):
		m.setStatus(statusInfo, errorText(err))
	default:
		m.setStatus(statusError, errorText(err))
	}
	m.refresh()
}

func errorText(err error) string {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return err.Error()
}

func (m *Model) openPrompt(kind prompt, placeholder, value string) tea.Cmd {
	m.prompt = kind
	m.ti.Placeholder = placeholder
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.resize()
	return m.ti.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) openCategory(name string) {
	m.category = name
	m.screen = screenItems
	m.items.ResetFilter()
	m.items.Title = name
	m.refresh()
	m.items.Select(0)
}

func (m *Model) showResults(title string, lines []string) {
	if m.screen != screenResults {
		m.returnTo = m.screen
	}
	m.screen = screenResults
	m.resultsTitle = title
	m.results = lines
}

func (m *Model) showLowStock() {
	th := m.store.Threshold()
	lines := recordLines(m.store.LowStock(th), th)
	if len(lines) == 0 {
		lines = []string{ui.Current().Muted.Render("No items are below the low stock threshold.")}
	}
	m.showResults(fmt.Sprintf("Low stock alert (<= %d)", th), lines)
}

func (m *Model) showOverview() {
	t := ui.Current()
	ov := m.store.Overview()
	lines := []string{
		fmt.Sprintf("%s %d   %s %d", t.Accent.Render("Total items:"), ov.TotalQuantity,
			t.Accent.Render("Records:"), ov.Records),
		"",
	}
	for _, c := range ov.Categories {
		if c.Items == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-18s %s", c.Category,
			t.Muted.Render(ui.StockBar(c.Quantity, ov.TotalQuantity, 20))))
	}
	lines = append(lines, "")
	if len(ov.LowStock) == 0 {
		lines = append(lines, "Low stock items: None")
	} else {
		lines = append(lines, t.Low.Render("Low stock items:"))
		lines = append(lines, recordLines(ov.LowStock, ov.Threshold)...)
	}
	m.showResults("Dashboard overview", lines)
}

func recordLines(recs []model.Record, threshold int) []string {
	t := ui.Current()
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		qty := fmt.Sprint(r.Quantity)
		if r.Quantity <= threshold {
			qty = t.Low.Render(qty)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.SymItem, r.Item,
			t.Muted.Render("(Category: "+r.Category+", Quantity: ")+qty+t.Muted.Render(")")))
	}
	return out
}

// refresh rebuilds both lists from the store.
func (m *Model) refresh() {
	ov := m.store.Overview()
	cats := make([]list.Item, 0, len(ov.Categories))
	for _, c := range ov.Categories {
		cats = append(cats, categoryItem{Name: c.Category, Items: c.Items, Units: c.Quantity, Low: c.Low})
	}
	m.categories.SetItems(cats)
	m.categories.Title = fmt.Sprintf("Inventory   %d items  %d records  %s %d",
		ov.TotalQuantity, ov.Records, ui.Current().SymLow, len(ov.LowStock))

	if m.category == "" {
		return
	}
	items, err := m.store.List(m.category)
	if err != nil {
		m.screen = screenCategories
		m.category = ""
		return
	}
	rows := make([]list.Item, 0, len(items))
	for _, name := range items.Names() {
		q := items[name]
		rows = append(rows, stockItem{Name: name, Quantity: q, Low: q <= m.store.Threshold()})
	}
	m.items.SetItems(rows)
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind, m.status = kind, text
}

func (m *Model) activeList() *list.Model {
	if m.screen == screenItems {
		return &m.items
	}
	return &m.categories
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenItems:
		m.items, cmd = m.items.Update(msg)
	case screenCategories:
		m.categories, cmd = m.categories.Update(msg)
	}
	return m, cmd
}

// resize fits both lists into the frame, leaving room for the prompt and
// status lines.
func (m *Model) resize() {
	w, h := m.width-4, m.height-4
	if m.prompt != promptNone {
		h -= 4
	}
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.categories.SetSize(w, h)
	m.items.SetSize(w, h)
}
