package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/inventory/internal/model"
)

// Flat (category, item, quantity) interchange file for bulk export/import.

// DefaultExportName is the file written by an export when no path is configured.
const DefaultExportName = "inventory_export.csv"

// Header is the exact first row of every export.
var Header = []string{"Category", "Item", "Quantity"}

// Write overwrites path with one row per record under Header.
func Write(path string, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := Encode(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

// Encode writes Header and records to w.
func Encode(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Category, r.Item, strconv.Itoa(r.Quantity)}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Read parses every row at path. The first malformed row rejects the whole
// file with a *model.FormatError; no partial result is returned.
func Read(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return Decode(f, path)
}

// Decode parses rows from r. name is only used in error messages.
// Columns are matched by header name; extra columns are ignored.
func Decode(r io.Reader, name string) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &model.FormatError{Path: name, Reason: "missing header row"}
		}
		return nil, &model.FormatError{Path: name, Line: 1, Reason: err.Error()}
	}

	idx := map[string]int{}
	for i, h := range header {
		key := cleanHeader(h)
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	var missing []string
	for _, col := range Header {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &model.FormatError{
			Path:   name,
			Line:   1,
			Reason: "missing required column(s): " + strings.Join(missing, ", "),
		}
	}
	catIdx, itemIdx, qtyIdx := idx["Category"], idx["Item"], idx["Quantity"]
	need := max(catIdx, itemIdx, qtyIdx) + 1

	var out []model.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fe := &model.FormatError{Path: name, Reason: err.Error()}
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				fe.Line = pe.Line
			}
			return nil, fe
		}
		line, _ := cr.FieldPos(0)
		if len(row) < need {
			return nil, &model.FormatError{
				Path:   name,
				Line:   line,
				Reason: fmt.Sprintf("expected at least %d fields, got %d", need, len(row)),
			}
		}

		category, item := row[catIdx], row[itemIdx]
		if category == "" || item == "" {
			return nil, &model.FormatError{Path: name, Line: line, Reason: "category and item are required"}
		}
		qty, err := strconv.Atoi(strings.TrimSpace(row[qtyIdx]))
		if err != nil {
			return nil, &model.FormatError{
				Path:   name,
				Line:   line,
				Reason: fmt.Sprintf("quantity %q is not an integer", row[qtyIdx]),
			}
		}
		out = append(out, model.Record{Item: item, Category: category, Quantity: qty})
	}
	return out, nil
}

// cleanHeader strips a UTF-8 BOM and surrounding whitespace that spreadsheet
// exports tend to leave on the first header cell.
func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.TrimSpace(h)
}
