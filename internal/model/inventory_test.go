package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHasEveryDefaultCategory(t *testing.T) {
	inv := New()
	assert.Len(t, inv, len(DefaultCategories))
	for _, c := range DefaultCategories {
		assert.NotNil(t, inv[c], c)
		assert.Empty(t, inv[c], c)
	}
}

func TestEnsureCategoriesKeepsExisting(t *testing.T) {
	inv := Inventory{"Books": {"Atlas": 10}, "Garden": {"Rake": 1}}
	inv.EnsureCategories()

	assert.Equal(t, 10, inv["Books"]["Atlas"])
	assert.Equal(t, 1, inv["Garden"]["Rake"])
	assert.Len(t, inv, len(DefaultCategories)+1)
}

func TestCloneIsDeep(t *testing.T) {
	inv := Inventory{"Books": {"Atlas": 10}}
	cp := inv.Clone()
	cp["Books"]["Atlas"] = 1
	cp["Toys"] = Items{"Ball": 2}

	assert.Equal(t, 10, inv["Books"]["Atlas"])
	assert.NotContains(t, inv, "Toys")
}

func TestCategoriesOrder(t *testing.T) {
	inv := New()
	inv["Zines"] = Items{}
	inv["Garden"] = Items{}

	got := inv.Categories()
	assert.Equal(t, DefaultCategories, got[:len(DefaultCategories)])
	assert.Equal(t, []string{"Garden", "Zines"}, got[len(DefaultCategories):])
}

func TestRecordsAndTotal(t *testing.T) {
	inv := New()
	inv["Groceries"]["Milk"] = 2
	inv["Groceries"]["Bread"] = 20
	inv["Electronics"]["Laptop"] = 3

	assert.Equal(t, []Record{
		{Item: "Laptop", Category: "Electronics", Quantity: 3},
		{Item: "Bread", Category: "Groceries", Quantity: 20},
		{Item: "Milk", Category: "Groceries", Quantity: 2},
	}, inv.Records())
	assert.Equal(t, 25, inv.Total())
}

func TestErrorsMatchSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{&ValidationError{Field: "category", Reason: "required"}, ErrValidation},
		{&DuplicateItemError{Category: "Books", Item: "Atlas"}, ErrDuplicateItem},
		{&NotFoundError{Category: "Books", Item: "Atlas"}, ErrNotFound},
		{&CorruptFileError{Path: "inventory.json", Err: errors.New("eof")}, ErrCorruptFile},
		{&FormatError{Path: "in.csv", Line: 3, Reason: "bad quantity"}, ErrFormat},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("op: %w", tc.err)
		assert.ErrorIs(t, wrapped, tc.sentinel, tc.err.Error())
	}
	assert.NotErrorIs(t, &NotFoundError{}, ErrValidation)
}
