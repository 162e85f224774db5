package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// saveAndOpen writes f to a temp file and opens it again, so reads go through
// the same code path as a workbook loaded from disk.
func saveAndOpen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))
	require.NoError(t, f.Close())

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f2.Close() })
	return f2
}

func newSheet(t *testing.T, name string, cells map[string]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", name))
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue(name, cell, v))
	}
	return saveAndOpen(t, f)
}

func TestReadHeaderRecords(t *testing.T) {
	sheet := "Olkkari New Menu"
	f := newSheet(t, sheet, map[string]interface{}{
		"A1": "Category", "B1": "Dish Name", "C1": "Description", "D1": "Price (€)",
		"A2": "Starters", "B2": "Soup", "C2": "Tomato soup", "D2": "8.50",
		// row 3 left empty
		"A4": "Mains", "B4": "Steak", "D4": 35,
		"A5": "Mains", "B5": "Fish", "D5": 33.5,
	})

	headers, records, err := ReadHeaderRecords(f, sheet)
	require.NoError(t, err)

	assert.Equal(t, []string{"Category", "Dish Name", "Description", "Price (€)"}, headers)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, []string{"Category", "Dish Name", "Description", "Price (€)"}, first.Keys())
	v, _ := first.Get("Price (€)")
	assert.Equal(t, "8.50", v)
	v, _ = first.Get("Description")
	assert.Equal(t, "Tomato soup", v)

	second := records[1]
	desc, ok := second.Get("Description")
	assert.True(t, ok, "empty cells keep their header key")
	assert.Nil(t, desc)
	price, _ := second.Get("Price (€)")
	assert.Equal(t, int64(35), price)

	price, _ = records[2].Get("Price (€)")
	assert.Equal(t, 33.5, price)
}

func TestReadHeaderRecords_PositionalPairing(t *testing.T) {
	sheet := "Cocktail list"
	f := newSheet(t, sheet, map[string]interface{}{
		"A1": "Category", "C1": "Cocktail", "D1": "Garnish",
		"A2": "Signature", "B2": "ignored", "C2": "Funky Monkey", "D2": "Lime",
		"A3": "Classic", "C3": "Negroni", "E3": "beyond headers",
	})

	_, records, err := ReadHeaderRecords(f, sheet)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"Category", "Cocktail", "Garnish"}, records[0].Keys())
	name, _ := records[0].Get("Cocktail")
	assert.Equal(t, "Funky Monkey", name)

	garnish, ok := records[1].Get("Garnish")
	assert.True(t, ok)
	assert.Nil(t, garnish, "header wider than the row yields nil")
}

func TestReadHeaderRecords_SkipsFalsyRows(t *testing.T) {
	sheet := "Sheet"
	f := newSheet(t, sheet, map[string]interface{}{
		"A1": "Name", "B1": "Qty",
		"A2": "", "B2": 0,
		"A3": "Tonic", "B3": 0,
	})

	_, records, err := ReadHeaderRecords(f, sheet)
	require.NoError(t, err)
	require.Len(t, records, 1)
	name, _ := records[0].Get("Name")
	assert.Equal(t, "Tonic", name)
	qty, _ := records[0].Get("Qty")
	assert.Equal(t, int64(0), qty)
}

func TestReadHeaderRecords_ValueTypes(t *testing.T) {
	sheet := "Types"
	f := newSheet(t, sheet, map[string]interface{}{
		"A1": "Flag", "B1": "Date", "C1": "Text",
		"A2": true, "B2": time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "C2": "Crème brûlée",
	})

	_, records, err := ReadHeaderRecords(f, sheet)
	require.NoError(t, err)
	require.Len(t, records, 1)

	flag, _ := records[0].Get("Flag")
	assert.Equal(t, true, flag)
	date, _ := records[0].Get("Date")
	assert.Equal(t, "2024-05-01T00:00:00", date)
	text, _ := records[0].Get("Text")
	assert.Equal(t, "Crème brûlée", text)
}

func TestReadHeaderRecords_HeaderOnly(t *testing.T) {
	sheet := "Empty"
	f := newSheet(t, sheet, map[string]interface{}{"A1": "Category"})

	headers, records, err := ReadHeaderRecords(f, sheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Category"}, headers)
	assert.Empty(t, records)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	for _, v := range []interface{}{nil, "", int64(0), 0.0, false} {
		assert.True(t, IsEmpty(v), "%#v", v)
	}
	for _, v := range []interface{}{"x", int64(1), 0.5, true} {
		assert.False(t, IsEmpty(v), "%#v", v)
	}
}
