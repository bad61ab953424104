package inventory

import (
	"sort"

	"github.com/idilsaglam/inventory/internal/model"
	"github.com/idilsaglam/inventory/internal/store/csvstore"
)

const defaultExportPath = csvstore.DefaultExportName

// Export writes every record to path, or to the store's export path when
// path is empty. It returns the path written and the row count.
func (s *Store) Export(path string) (string, int, error) {
	if path == "" {
		path = s.exportPath
	}
	records := s.inv.Records()
	if err := csvstore.Write(path, records); err != nil {
		s.log.Error("export failed", "path", path, "err", err)
		return path, 0, err
	}
	s.log.Info("inventory exported", "path", path, "rows", len(records))
	return path, len(records), nil
}

// ImportResult summarises a successful import.
type ImportResult struct {
	Rows              int
	CreatedCategories []string
}

// Import merges every row of the tabular file at path into the inventory.
// Existing items are overwritten and unknown categories are created. The
// first malformed row aborts the import and nothing is changed.
func (s *Store) Import(path string) (ImportResult, error) {
	records, err := csvstore.Read(path)
	if err != nil {
		s.log.Warn("import rejected", "path", path, "err", err)
		return ImportResult{}, err
	}

	var res ImportResult
	err = s.mutate("import", func(inv model.Inventory) {
		for _, r := range records {
			if _, ok := inv[r.Category]; !ok {
				inv[r.Category] = model.Items{}
				res.CreatedCategories = append(res.CreatedCategories, r.Category)
			}
			inv[r.Category][r.Item] = r.Quantity
		}
		res.Rows = len(records)
	}, "path", path, "rows", len(records))
	if err != nil {
		return ImportResult{}, err
	}
	sort.Strings(res.CreatedCategories)
	s.log.Info("inventory imported", "path", path, "rows", res.Rows, "new_categories", len(res.CreatedCategories))
	return res, nil
}
