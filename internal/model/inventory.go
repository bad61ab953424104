package model

import (
	"slices"
	"sort"
)

// DefaultLowStockThreshold is the quantity at or below which an item counts as low stock.
const DefaultLowStockThreshold = 5

// DefaultCategories are always present in an inventory, even when empty.
var DefaultCategories = []string{
	"Electronics",
	"Groceries",
	"Office Supplies",
	"Clothing",
	"Household Items",
	"Toys",
	"Books",
	"Beauty Products",
	"Pet Supplies",
	"Movies",
}

// IsDefaultCategory reports whether name is one of DefaultCategories.
func IsDefaultCategory(name string) bool {
	return slices.Contains(DefaultCategories, name)
}

// Items maps item name to quantity within a single category.
type Items map[string]int

// Inventory maps category name to its items.
type Inventory map[string]Items

// New returns an inventory holding every default category.
func New() Inventory {
	inv := Inventory{}
	inv.EnsureCategories()
	return inv
}

// EnsureCategories back-fills any missing default category with an empty set.
func (inv Inventory) EnsureCategories() {
	for _, c := range DefaultCategories {
		if inv[c] == nil {
			inv[c] = Items{}
		}
	}
}

// Clone returns a deep copy.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for c, items := range inv {
		cp := make(Items, len(items))
		for name, q := range items {
			cp[name] = q
		}
		out[c] = cp
	}
	return out
}

// Categories lists category names: defaults first in their fixed order,
// then any extra (imported) categories sorted lexically.
func (inv Inventory) Categories() []string {
	out := make([]string, 0, len(inv))
	for _, c := range DefaultCategories {
		if _, ok := inv[c]; ok {
			out = append(out, c)
		}
	}
	var extra []string
	for c := range inv {
		if !IsDefaultCategory(c) {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Names returns the item names sorted lexically.
func (items Items) Names() []string {
	out := make([]string, 0, len(items))
	for name := range items {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Records flattens the inventory in category order, items sorted within each.
func (inv Inventory) Records() []Record {
	var out []Record
	for _, c := range inv.Categories() {
		items := inv[c]
		for _, name := range items.Names() {
			out = append(out, Record{Item: name, Category: c, Quantity: items[name]})
		}
	}
	return out
}

// Total sums every quantity in the inventory.
func (inv Inventory) Total() int {
	total := 0
	for _, items := range inv {
		for _, q := range items {
			total += q
		}
	}
	return total
}
