// Package inventory owns the in-memory record store and the operations the
// shells drive: add, update, remove, list, search, low stock, overview,
// export and import.
//
// The store is write-through. Every mutation is applied to a copy, the copy
// is persisted, and only then does it replace the live inventory, so a failed
// save never leaves memory and disk disagreeing.
package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/inventory/internal/model"
	"github.com/idilsaglam/inventory/internal/store/jsonstore"
)

// Persister writes a full inventory snapshot.
type Persister interface {
	Save(model.Inventory) error
}

// Options tune a Store. Zero values fall back to defaults.
type Options struct {
	LowStockThreshold int    // default model.DefaultLowStockThreshold
	ExportPath        string // default csvstore.DefaultExportName
	Logger            *log.Logger
}

// Store is the single owner of an inventory.
type Store struct {
	inv        model.Inventory
	persist    Persister
	threshold  int
	exportPath string
	log        *log.Logger
}

// New wraps an already loaded inventory. Missing default categories are added.
func New(inv model.Inventory, p Persister, opt Options) *Store {
	if inv == nil {
		inv = model.New()
	}
	inv.EnsureCategories()

	s := &Store{
		inv:        inv,
		persist:    p,
		threshold:  opt.LowStockThreshold,
		exportPath: opt.ExportPath,
		log:        opt.Logger,
	}
	if s.threshold == 0 {
		s.threshold = model.DefaultLowStockThreshold
	}
	if s.exportPath == "" {
		s.exportPath = defaultExportPath
	}
	if s.log == nil {
		s.log = log.Default()
	}
	return s
}

// Open loads the structured file at path and returns a store that persists
// back to it. A corrupt file is returned as *model.CorruptFileError.
func Open(path string, opt Options) (*Store, error) {
	f := jsonstore.File{Path: path}
	inv, err := f.Load()
	if err != nil {
		return nil, err
	}
	s := New(inv, f, opt)
	s.log.Debug("inventory loaded", "path", path, "categories", len(inv))
	return s, nil
}

// Threshold is the default low-stock threshold used by Overview.
func (s *Store) Threshold() int { return s.threshold }

// ExportPath is where Export writes when given an empty path.
func (s *Store) ExportPath() string { return s.exportPath }

// Categories lists category names in display order.
func (s *Store) Categories() []string { return s.inv.Categories() }

// Snapshot returns a deep copy of the whole inventory.
func (s *Store) Snapshot() model.Inventory { return s.inv.Clone() }

// ParseQuantity converts user text into a quantity.
func ParseQuantity(text string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &model.ValidationError{Field: "quantity", Reason: fmt.Sprintf("%q is not a number", text)}
	}
	return q, nil
}

// Add inserts a new item. An existing item is left untouched and reported
// as *model.DuplicateItemError.
func (s *Store) Add(category, item string, quantity int) error {
	if err := s.checkTarget(category, item); err != nil {
		return err
	}
	if _, exists := s.inv[category][item]; exists {
		return &model.DuplicateItemError{Category: category, Item: item}
	}
	return s.mutate("add", func(inv model.Inventory) {
		inv[category][item] = quantity
	}, "category", category, "item", item, "quantity", quantity)
}

// Update overwrites the quantity of an existing item.
func (s *Store) Update(category, item string, quantity int) error {
	if err := s.checkTarget(category, item); err != nil {
		return err
	}
	if _, exists := s.inv[category][item]; !exists {
		return &model.NotFoundError{Category: category, Item: item}
	}
	return s.mutate("update", func(inv model.Inventory) {
		inv[category][item] = quantity
	}, "category", category, "item", item, "quantity", quantity)
}

// Remove deletes an existing item.
func (s *Store) Remove(category, item string) error {
	if err := s.checkTarget(category, item); err != nil {
		return err
	}
	if _, exists := s.inv[category][item]; !exists {
		return &model.NotFoundError{Category: category, Item: item}
	}
	return s.mutate("remove", func(inv model.Inventory) {
		delete(inv[category], item)
	}, "category", category, "item", item)
}

// List returns a copy of one category's items, possibly empty.
func (s *Store) List(category string) (model.Items, error) {
	if err := s.checkCategory(category); err != nil {
		return nil, err
	}
	items := s.inv[category]
	out := make(model.Items, len(items))
	for name, q := range items {
		out[name] = q
	}
	return out, nil
}

// Quantity looks up a single item.
func (s *Store) Quantity(category, item string) (int, bool) {
	q, ok := s.inv[category][item]
	return q, ok
}

func (s *Store) checkCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return &model.ValidationError{Field: "category", Reason: "please select a category"}
	}
	if _, ok := s.inv[category]; !ok {
		return &model.ValidationError{Field: "category", Reason: fmt.Sprintf("category %q not found in inventory", category)}
	}
	return nil
}

// checkTarget validates a category/item pair. Item names are kept exactly
// as given so records loaded or imported with surrounding spaces stay
// addressable.
func (s *Store) checkTarget(category, item string) error {
	if err := s.checkCategory(category); err != nil {
		return err
	}
	if strings.TrimSpace(item) == "" {
		return &model.ValidationError{Field: "item", Reason: "item name cannot be empty"}
	}
	return nil
}

// mutate applies fn to a copy, persists it and then swaps it in.
func (s *Store) mutate(op string, fn func(model.Inventory), kv ...any) error {
	next := s.inv.Clone()
	fn(next)
	if err := s.save(next); err != nil {
		s.log.Error("save failed, change discarded", append([]any{"op", op, "err", err}, kv...)...)
		return err
	}
	s.inv = next
	s.log.Debug(op, kv...)
	return nil
}

func (s *Store) save(inv model.Inventory) error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.Save(inv); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	return nil
}
