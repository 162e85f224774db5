package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/olkkari/menuload/pkg/menuload/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	records := []models.Record{
		models.NewRecord(
			"Category", "Starters",
			"Dish Name", "Soup",
			"Description", "Tomato soup",
			"Price (€)", "8.50",
		),
	}

	data, err := ToJSON(records)
	require.NoError(t, err)

	expected := `[
  {
    "Category": "Starters",
    "Dish Name": "Soup",
    "Description": "Tomato soup",
    "Price (€)": "8.50"
  }
]`
	assert.Equal(t, expected, string(data))
}

func TestToJSON_Empty(t *testing.T) {
	data, err := ToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestToJSON_LiteralText(t *testing.T) {
	records := []models.Record{
		models.NewRecord("Garnish", "Lime & mint <fresh>", "ABV / Notes", nil, "Qty", int64(2), "Price", 12.5),
	}
	data, err := ToJSON(records)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"Garnish": "Lime & mint <fresh>"`)
	assert.Contains(t, s, `"ABV / Notes": null`)
	assert.Contains(t, s, `"Qty": 2`)
	assert.Contains(t, s, `"Price": 12.5`)
}

func TestMarshal_LineSeparatorsEscaped(t *testing.T) {
	data, err := Marshal(models.NewRecord("Description", "x\u2028y & € <b>"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Description": "x\u2028y & € <b>"`)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scripts", "menu_data.json")
	records := []models.Record{
		models.NewRecord("Category", "5-Course Menu", "Dish Name", "Leipäjuusto", "Price (€)", 59.9),
		models.NewRecord("Category", "Mains", "Dish Name", "Brisket", "Price (€)", int64(33)),
		models.NewRecord("Category", nil, "Dish Name", "Sorbet", "Price (€)", nil),
	}
	require.NoError(t, WriteFile(path, records))

	written, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, []string{"Category", "Dish Name", "Price (€)"}, loaded[0].Keys())

	price, _ := loaded[1].Get("Price (€)")
	assert.Equal(t, json.Number("33"), price)

	again, err := ToJSON(loaded)
	require.NoError(t, err)
	assert.Equal(t, string(written), string(again))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestReadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"a": 1}, 3]`), 0644))

	_, err := ReadFile(path)
	assert.Error(t, err)
}
