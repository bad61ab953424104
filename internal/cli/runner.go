package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/inventory/internal/inventory"
	"github.com/idilsaglam/inventory/internal/model"
	"github.com/idilsaglam/inventory/internal/tui"
	"github.com/idilsaglam/inventory/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // group search and low-stock results by category
}

// Run dispatches subcommands against st and returns an exit code
// (0 ok, 1 error, 2 usage or invalid input). No args opens the TUI.
func Run(args []string, st *inventory.Store, opt Options) int {
	if len(args) == 0 {
		return doInteractive(st)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "tui":
		return doInteractive(st)

	case "categories", "cats":
		return doCategories(st)

	case "ls":
		if len(a) != 1 {
			ui.Fail("usage: inventory ls <category>")
			return 2
		}
		return doList(st, a[0])

	case "add", "update":
		if len(a) != 3 {
			ui.Fail(fmt.Sprintf("usage: inventory %s <category> <item> <quantity>", cmd))
			return 2
		}
		q, err := inventory.ParseQuantity(a[2])
		if err != nil {
			return report(cmd, err)
		}
		if cmd == "add" {
			return doAdd(st, a[0], a[1], q)
		}
		return doUpdate(st, a[0], a[1], q)

	case "rm":
		if len(a) != 2 {
			ui.Fail("usage: inventory rm <category> <item>")
			return 2
		}
		return doRemove(st, a[0], a[1])

	case "search":
		if len(a) == 0 {
			ui.Fail("usage: inventory search <term...>")
			return 2
		}
		return doSearch(st, strings.Join(a, " "), opt)

	case "low":
		threshold := st.Threshold()
		if len(a) > 1 {
			ui.Fail("usage: inventory low [threshold]")
			return 2
		}
		if len(a) == 1 {
			n, err := strconv.Atoi(a[0])
			if err != nil {
				ui.Fail("low: not a number: " + a[0])
				return 2
			}
			threshold = n
		}
		return doLowStock(st, threshold, opt)

	case "overview":
		return doOverview(st)

	case "export":
		if len(a) > 1 {
			ui.Fail("usage: inventory export [path]")
			return 2
		}
		path := ""
		if len(a) == 1 {
			path = a[0]
		}
		return doExport(st, path)

	case "import":
		if len(a) != 1 {
			ui.Fail("usage: inventory import <path.csv>")
			return 2
		}
		return doImport(st, a[0])
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout, `inventory - a small stock tracker

Usage:
  inventory [flags] [subcommand] [args]

Subcommands:
  (none) | tui                            Open the interactive view
  categories                              List categories with item counts
  ls <category>                           List items in a category
  add <category> <item> <quantity>        Add a new item
  update <category> <item> <quantity>     Set the quantity of an existing item
  rm <category> <item>                    Remove an item
  search <term...>                        Find items by name (case-insensitive)
  low [threshold]                         Show items at or below threshold
  overview                                Totals and low-stock summary
  export [path]                           Write all records to CSV
  import <path.csv>                       Merge records from CSV

Examples:
  inventory add Electronics Laptop 3
  inventory update "Office Supplies" Stapler 12
  inventory search lap
  inventory import stock.csv
`)
}

// report renders err as a status line and maps it to an exit code.
// A duplicate add is informational and exits 0.
func report(op string, err error) int {
	switch {
	case errors.Is(err, model.ErrDuplicateItem):
		ui.Info(err.Error())
		return 0
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrNotFound):
		ui.Fail(op + ": " + err.Error())
		if errors.Is(err, model.ErrNotFound) {
			ui.Hint("Hint: run `inventory ls <category>` to see existing items")
		}
		return 2
	default:
		ui.Fail(op + ": " + err.Error())
		return 1
	}
}

// -------------- subcommand impls ----------------

func doInteractive(st *inventory.Store) int {
	if err := tui.Run(st); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doCategories(st *inventory.Store) int {
	t := ui.Current()
	lines := []string{t.Title.Render("Categories"), ""}
	for _, c := range st.Overview().Categories {
		line := fmt.Sprintf("%s %-18s %s", t.Accent.Render(t.SymItem), c.Category,
			t.Muted.Render(fmt.Sprintf("%d items, %d units", c.Items, c.Quantity)))
		if c.Low > 0 {
			line += " " + t.Low.Render(fmt.Sprintf("%s %d low", t.SymLow, c.Low))
		}
		lines = append(lines, line)
	}
	ui.Panel(lines)
	return 0
}

func doList(st *inventory.Store, category string) int {
	items, err := st.List(category)
	if err != nil {
		return report("ls", err)
	}
	t := ui.Current()
	lines := []string{t.Title.Render("Current inventory in " + category), ""}
	lines = append(lines, itemLines(items, st.Threshold())...)
	ui.Panel(lines)
	return 0
}

func doAdd(st *inventory.Store, category, item string, q int) int {
	if err := st.Add(category, item, q); err != nil {
		return report("add", err)
	}
	ui.OK(fmt.Sprintf("added %q with quantity %d to %s", item, q, category))
	return 0
}

func doUpdate(st *inventory.Store, category, item string, q int) int {
	if err := st.Update(category, item, q); err != nil {
		return report("update", err)
	}
	ui.OK(fmt.Sprintf("updated %q to quantity %d in %s", item, q, category))
	return 0
}

func doRemove(st *inventory.Store, category, item string) int {
	if err := st.Remove(category, item); err != nil {
		return report("rm", err)
	}
	ui.OK(fmt.Sprintf("removed %q from %s", item, category))
	return 0
}

func doSearch(st *inventory.Store, term string, opt Options) int {
	recs, err := st.Search(term)
	if err != nil {
		return report("search", err)
	}
	t := ui.Current()
	lines := []string{t.Title.Render("Search results for " + strconv.Quote(term)), ""}
	if len(recs) == 0 {
		lines = append(lines, t.Muted.Render("no items found"))
	} else {
		lines = append(lines, recordLines(recs, st.Threshold(), opt.Group)...)
	}
	ui.Panel(lines)
	return 0
}

func doLowStock(st *inventory.Store, threshold int, opt Options) int {
	recs := st.LowStock(threshold)
	t := ui.Current()
	lines := []string{t.Title.Render(fmt.Sprintf("Low stock (<= %d)", threshold)), ""}
	if len(recs) == 0 {
		lines = append(lines, t.Muted.Render("no items are at or below the low stock threshold"))
	} else {
		lines = append(lines, recordLines(recs, threshold, opt.Group)...)
	}
	ui.Panel(lines)
	return 0
}

func doOverview(st *inventory.Store) int {
	ov := st.Overview()
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			t.Title.Render("Dashboard"),
			t.Accent.Render("Total items"), ov.TotalQuantity,
			t.Accent.Render("Records"), ov.Records,
			t.Low.Render(t.SymLow), len(ov.LowStock)),
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
		lines = append(lines, t.Muted.Render("Low stock items: none"))
	} else {
		lines = append(lines, t.Accent.Render(fmt.Sprintf("Low stock items (<= %d)", ov.Threshold)))
		lines = append(lines, recordLines(ov.LowStock, ov.Threshold, false)...)
	}
	ui.Panel(lines)
	return 0
}

func doExport(st *inventory.Store, path string) int {
	written, n, err := st.Export(path)
	if err != nil {
		return report("export", err)
	}
	ui.OK(fmt.Sprintf("exported %d records to %s", n, written))
	return 0
}

func doImport(st *inventory.Store, path string) int {
	res, err := st.Import(path)
	if err != nil {
		if errors.Is(err, model.ErrFormat) {
			ui.Fail("import: " + err.Error())
			ui.Hint("Nothing was imported. Expected header: Category,Item,Quantity")
			return 2
		}
		return report("import", err)
	}
	msg := fmt.Sprintf("imported %d records from %s", res.Rows, path)
	if len(res.CreatedCategories) > 0 {
		msg += " (new categories: " + strings.Join(res.CreatedCategories, ", ") + ")"
	}
	ui.OK(msg)
	return 0
}

// -------------- rendering helpers --------------

func itemLines(items model.Items, threshold int) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("(empty)")}
	}
	out := make([]string, 0, len(items))
	for _, name := range items.Names() {
		out = append(out, quantityLine(name, items[name], threshold))
	}
	return out
}

func recordLines(recs []model.Record, threshold int, group bool) []string {
	t := ui.Current()
	if !group {
		out := make([]string, 0, len(recs))
		for _, r := range recs {
			out = append(out, quantityLine(r.Item, r.Quantity, threshold)+" "+
				t.Muted.Render("("+r.Category+")"))
		}
		return out
	}
	var out []string
	last := ""
	for _, r := range recs {
		if r.Category != last {
			if last != "" {
				out = append(out, "")
			}
			out = append(out, t.Accent.Render(r.Category))
			last = r.Category
		}
		out = append(out, quantityLine(r.Item, r.Quantity, threshold))
	}
	return out
}

func quantityLine(name string, q, threshold int) string {
	t := ui.Current()
	sym, qty := t.Muted.Render(t.SymItem), strconv.Itoa(q)
	if q <= threshold {
		sym, qty = t.Low.Render(t.SymLow), t.Low.Render(qty)
	}
	return fmt.Sprintf("%s %s: %s", sym, ui.Truncate(name, 60), qty)
}
