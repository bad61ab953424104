package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/inventory/internal/model"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestExportImportRoundTrip(t *testing.T) {
	src, _ := newTestStore(t, model.Inventory{
		"Electronics": {"Laptop": 3, "Phone, spare": 0},
		"Groceries":   {"Milk": 2, "Bread": 20},
		"Garden":      {"Rake": -1},
	})

	path, rows, err := src.Export("")
	require.NoError(t, err)
	assert.Equal(t, src.ExportPath(), path)
	assert.Equal(t, 5, rows)

	dst, p := newTestStore(t, nil)
	res, err := dst.Import(path)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rows)
	assert.Equal(t, []string{"Garden"}, res.CreatedCategories)

	assert.Equal(t, src.Snapshot(), dst.Snapshot())
	assert.Equal(t, 1, p.saves)
}

func TestImportedNameWithSpacesIsAddressable(t *testing.T) {
	s, _ := newTestStore(t, nil)

	_, err := s.Import(writeCSV(t, "Category,Item,Quantity\nGroceries, Milk,2\n"))
	require.NoError(t, err)
	assert.Equal(t, model.Items{" Milk": 2}, s.Snapshot()["Groceries"])

	got, err := s.Search("milk")
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, s.Update("Groceries", got[0].Item, 9))
	q, _ := s.Quantity("Groceries", " Milk")
	assert.Equal(t, 9, q)

	require.NoError(t, s.Remove("Groceries", got[0].Item))
	assert.Empty(t, s.Snapshot()["Groceries"])
}

func TestExportHeaderOnlyWhenEmpty(t *testing.T) {
	s, _ := newTestStore(t, nil)
	path := filepath.Join(t.TempDir(), "out.csv")

	_, rows, err := s.Export(path)
	require.NoError(t, err)
	assert.Zero(t, rows)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Category,Item,Quantity\n", string(b))
}

func TestImportUpsertsAndCreates(t *testing.T) {
	s, _ := newTestStore(t, model.Inventory{"Books": {"Atlas": 10, "Bible": 1}})

	res, err := s.Import(writeCSV(t, "Category,Item,Quantity\nBooks,Atlas,4\nGarden,Rake,2\nGarden,Hose,1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, []string{"Garden"}, res.CreatedCategories)

	books, _ := s.List("Books")
	assert.Equal(t, model.Items{"Atlas": 4, "Bible": 1}, books)
	garden, err := s.List("Garden")
	require.NoError(t, err)
	assert.Equal(t, model.Items{"Rake": 2, "Hose": 1}, garden)
}

func TestImportIsAllOrNothing(t *testing.T) {
	s, p := newTestStore(t, model.Inventory{"Books": {"Atlas": 10}})
	before := s.Snapshot()

	_, err := s.Import(writeCSV(t, "Category,Item,Quantity\nBooks,Atlas,1\nGarden,Rake,lots\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrFormat)

	assert.Equal(t, before, s.Snapshot())
	assert.Zero(t, p.saves)
}

func TestImportMissingColumns(t *testing.T) {
	s, _ := newTestStore(t, nil)
	_, err := s.Import(writeCSV(t, "Category,Name,Qty\nBooks,Atlas,1\n"))
	assert.ErrorIs(t, err, model.ErrFormat)
}

func TestImportMissingFile(t *testing.T) {
	s, _ := newTestStore(t, nil)
	_, err := s.Import(filepath.Join(t.TempDir(), "none.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImportSaveFailureChangesNothing(t *testing.T) {
	s, p := newTestStore(t, nil)
	p.fail = errors.New("read-only")

	_, err := s.Import(writeCSV(t, "Category,Item,Quantity\nGarden,Rake,2\n"))
	require.Error(t, err)
	assert.NotContains(t, s.Categories(), "Garden")
}
