package inventory

import (
	"strings"

	"github.com/idilsaglam/inventory/internal/model"
)

// Search returns every record whose item name contains term, ignoring case.
// No match is an empty result, not an error.
func (s *Store) Search(term string) ([]model.Record, error) {
	if term == "" {
		return nil, &model.ValidationError{Field: "search", Reason: "search term cannot be empty"}
	}
	needle := strings.ToLower(term)
	out := []model.Record{}
	for _, r := range s.inv.Records() {
		if strings.Contains(strings.ToLower(r.Item), needle) {
			out = append(out, r)
		}
	}
	return out, nil
}

// LowStock returns every record with quantity at or below threshold.
func (s *Store) LowStock(threshold int) []model.Record {
	out := []model.Record{}
	for _, r := range s.inv.Records() {
		if r.Quantity <= threshold {
			out = append(out, r)
		}
	}
	return out
}

// CategoryTotal is one line of the overview breakdown.
type CategoryTotal struct {
	Category string
	Items    int
	Quantity int
	Low      int
}

// Overview is the dashboard summary.
type Overview struct {
	TotalQuantity int
	Records       int
	Threshold     int
	LowStock      []model.Record
	Categories    []CategoryTotal
}

// Overview sums quantities across every record and lists low stock at the
// store's default threshold.
func (s *Store) Overview() Overview {
	ov := Overview{
		TotalQuantity: s.inv.Total(),
		Threshold:     s.threshold,
		LowStock:      s.LowStock(s.threshold),
	}
	for _, c := range s.inv.Categories() {
		ct := CategoryTotal{Category: c, Items: len(s.inv[c])}
		for _, q := range s.inv[c] {
			ct.Quantity += q
			if q <= s.threshold {
				ct.Low++
			}
		}
		ov.Records += ct.Items
		ov.Categories = append(ov.Categories, ct)
	}
	return ov
}
