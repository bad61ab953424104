package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/inventory/internal/model"
)

func TestSearchCaseInsensitive(t *testing.T) {
	s, _ := newTestStore(t, model.Inventory{
		"Electronics": {"Laptop": 3},
		"Books":       {"Atlas": 10},
	})

	got, err := s.Search("lap")
	require.NoError(t, err)
	assert.Equal(t, []model.Record{{Item: "Laptop", Category: "Electronics", Quantity: 3}}, got)

	got, err = s.Search("LAP")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSearchAcrossCategories(t *testing.T) {
	s, _ := newTestStore(t, model.Inventory{
		"Books":  {"Cook Guide": 1},
		"Movies": {"Guide to Film": 4},
		"Toys":   {"Kite": 2},
	})

	got, err := s.Search("guide")
	require.NoError(t, err)
	assert.Equal(t, []model.Record{
		{Item: "Cook Guide", Category: "Books", Quantity: 1},
		{Item: "Guide to Film", Category: "Movies", Quantity: 4},
	}, got)
}

func TestSearchNoMatchIsEmpty(t *testing.T) {
	s, _ := newTestStore(t, model.Inventory{"Books": {"Atlas": 10}})

	got, err := s.Search("zebra")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchEmptyTerm(t *testing.T) {
	s, _ := newTestStore(t, nil)
	_, err := s.Search("")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestSearchWhitespaceTerm(t *testing.T) {
	s, _ := newTestStore(t, model.Inventory{
		"Books":       {"Atlas": 10, "Road Atlas": 2},
		"Electronics": {"Laptop": 3},
	})

	got, err := s.Search(" ")
	require.NoError(t, err)
	assert.Equal(t, []model.Record{{Item: "Road Atlas", Category: "Books", Quantity: 2}}, got)
}

func TestLowStock(t *testing.T) {
	s, _ := newTestStore(t, model.Inventory{"Groceries": {"Milk": 2, "Bread": 20}})

	assert.Equal(t, []model.Record{{Item: "Milk", Category: "Groceries", Quantity: 2}}, s.LowStock(5))
	assert.Len(t, s.LowStock(20), 2)
	assert.Empty(t, s.LowStock(1))
}

func TestLowStockIncludesThreshold(t *testing.T) {
	s, _ := newTestStore(t, model.Inventory{"Toys": {"Ball": 5, "Kite": 6, "Yo-yo": -1}})

	got := s.LowStock(5)
	assert.Equal(t, []model.Record{
		{Item: "Ball", Category: "Toys", Quantity: 5},
		{Item: "Yo-yo", Category: "Toys", Quantity: -1},
	}, got)
}

func TestOverview(t *testing.T) {
	s, _ := newTestStore(t, model.Inventory{
		"Groceries":   {"Milk": 2, "Bread": 20},
		"Electronics": {"Laptop": 3},
	})

	ov := s.Overview()
	assert.Equal(t, 25, ov.TotalQuantity)
	assert.Equal(t, 3, ov.Records)
	assert.Equal(t, model.DefaultLowStockThreshold, ov.Threshold)
	assert.Equal(t, s.LowStock(model.DefaultLowStockThreshold), ov.LowStock)

	require.Len(t, ov.Categories, len(model.DefaultCategories))
	assert.Equal(t, CategoryTotal{Category: "Electronics", Items: 1, Quantity: 3, Low: 1}, ov.Categories[0])
	assert.Equal(t, CategoryTotal{Category: "Groceries", Items: 2, Quantity: 22, Low: 1}, ov.Categories[1])
}

func TestOverviewUsesConfiguredThreshold(t *testing.T) {
	s := New(model.Inventory{"Groceries": {"Bread": 20}}, nil, Options{LowStockThreshold: 25})

	ov := s.Overview()
	assert.Equal(t, 25, ov.Threshold)
	assert.Len(t, ov.LowStock, 1)
}

func TestOverviewEmpty(t *testing.T) {
	s, _ := newTestStore(t, nil)
	ov := s.Overview()
	assert.Zero(t, ov.TotalQuantity)
	assert.Empty(t, ov.LowStock)
}
