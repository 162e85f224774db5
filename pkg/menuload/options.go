// Package menuload extracts the restaurant workbook into JSON and loads the
// JSON into the remote menu tables.
package menuload

const (
	// MenuSheet is the workbook tab holding the food menu.
	MenuSheet = "Olkkari New Menu"
	// CocktailSheet is the workbook tab holding the cocktail list.
	CocktailSheet = "Cocktail list"

	// DefaultWorkbook is the workbook read when none is given.
	DefaultWorkbook = "Olkkari_Menu_Wine_Cocktails.xlsx"
	// DefaultMenuOutput is where the food menu records are written.
	DefaultMenuOutput = "scripts/menu_data.json"
	// DefaultCocktailOutput is where the cocktail records are written.
	DefaultCocktailOutput = "scripts/cocktail_data.json"
)

// SheetSpec names a sheet to extract and the JSON file it goes to.
type SheetSpec struct {
	// Name is the workbook tab name, matched exactly.
	Name string
	// Output is the JSON file path for the sheet's records.
	Output string
	// Label is used in progress output, e.g. "menu".
	Label string
}

// Options configures extraction behavior.
type Options struct {
	// Sheets lists the sheets to extract, in order. Sheets missing from the
	// workbook are skipped.
	Sheets []SheetSpec
}

// DefaultOptions returns the two fixed sheets with their default outputs.
func DefaultOptions() Options {
	return NewOptions(DefaultMenuOutput, DefaultCocktailOutput)
}

// NewOptions returns the two fixed sheets writing to the given paths.
func NewOptions(menuOutput, cocktailOutput string) Options {
	return Options{
		Sheets: []SheetSpec{
			{Name: MenuSheet, Output: menuOutput, Label: "menu"},
			{Name: CocktailSheet, Output: cocktailOutput, Label: "cocktail"},
		},
	}
}
