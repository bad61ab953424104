package csvstore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/inventory/internal/model"
)

func TestEncodeHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []model.Record{
		{Item: "Laptop", Category: "Electronics", Quantity: 3},
		{Item: "Pens, blue", Category: "Office Supplies", Quantity: -2},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"Category,Item,Quantity\n"+
			"Electronics,Laptop,3\n"+
			"Office Supplies,\"Pens, blue\",-2\n",
		buf.String())
}

func TestEncodeEmptyWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "Category,Item,Quantity\n", buf.String())
}

func TestWriteThenRead(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultExportName)
	in := []model.Record{
		{Item: "Laptop", Category: "Electronics", Quantity: 3},
		{Item: "Atlas", Category: "Books", Quantity: 10},
		{Item: "Rake", Category: "Garden", Quantity: 0},
	}
	require.NoError(t, Write(p, in))

	out, err := Read(p)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeColumnOrderAndExtras(t *testing.T) {
	src := "\ufeffQuantity, Item ,Category,Notes\n 7 ,Milk,Groceries,fresh\n"
	out, err := Decode(strings.NewReader(src), "in.csv")
	require.NoError(t, err)
	assert.Equal(t, []model.Record{{Item: "Milk", Category: "Groceries", Quantity: 7}}, out)
}

func TestDecodeSkipsBlankLines(t *testing.T) {
	src := "Category,Item,Quantity\n\nBooks,Atlas,1\n\n"
	out, err := Decode(strings.NewReader(src), "in.csv")
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestDecodeRejects(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{"empty file", "", 0, "missing header"},
		{"missing column", "Category,Item\nBooks,Atlas\n", 1, "Quantity"},
		{"non numeric", "Category,Item,Quantity\nBooks,Atlas,1\nBooks,Bible,many\n", 3, "not an integer"},
		{"float", "Category,Item,Quantity\nBooks,Atlas,1.5\n", 2, "not an integer"},
		{"short row", "Category,Item,Quantity\nBooks,Atlas\n", 2, "expected at least 3"},
		{"empty item", "Category,Item,Quantity\nBooks,,4\n", 2, "required"},
		{"bad quote", "Category,Item,Quantity\nBooks,\"Atl\"as,4\n", 2, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Decode(strings.NewReader(tc.src), "in.csv")
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, model.ErrFormat)

			var fe *model.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.line, fe.Line)
			assert.Contains(t, fe.Error(), tc.msg)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "none.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
