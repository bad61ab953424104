package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/idilsaglam/inventory/internal/model"
)

// JSON-backed storage. Single file, human-readable, rewritten whole on every save.
// No locking and no temp-file rename; fine for a local single-user tool.

// DefaultFileName is used when no path is configured.
const DefaultFileName = "inventory.json"

// File binds Load/Save to one path so the store can persist through it.
type File struct {
	Path string
}

func (f File) Load() (model.Inventory, error) { return Load(f.Path) }
func (f File) Save(inv model.Inventory) error { return Save(f.Path, inv) }

// Load reads the inventory at path. A missing file yields an inventory with
// only the default categories. Unparseable content is a *model.CorruptFileError.
func Load(path string) (model.Inventory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.New(), nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, &model.CorruptFileError{Path: path, Err: err}
	}

	inv := make(model.Inventory, len(raw))
	for category, msg := range raw {
		if !isObject(msg) {
			// non-object entries are reset for defaults and dropped otherwise
			if model.IsDefaultCategory(category) {
				inv[category] = model.Items{}
			}
			continue
		}
		var items model.Items
		if err := json.Unmarshal(msg, &items); err != nil {
			return nil, &model.CorruptFileError{
				Path: path,
				Err:  fmt.Errorf("category %q: %w", category, err),
			}
		}
		if items == nil {
			items = model.Items{}
		}
		inv[category] = items
	}
	inv.EnsureCategories()
	return inv, nil
}

// Save overwrites path with the full inventory, indented for humans.
func Save(path string, inv model.Inventory) error {
	b, err := json.MarshalIndent(inv, "", "    ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func isObject(msg json.RawMessage) bool {
	for _, c := range msg {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return c == '{'
	}
	return false
}
