package models

// SheetExport represents the records extracted from a single sheet.
type SheetExport struct {
	// SheetName is the workbook tab the records came from.
	SheetName string `json:"sheet_name"`
	// Headers are the row 1 labels in column order, empty labels included.
	Headers []string `json:"headers"`
	// Range is the cell range holding data, e.g. "A1:D14".
	Range string `json:"range,omitempty"`
	// Records contains one entry per non-empty data row, in row order.
	Records []Record `json:"records"`
	// Output is the JSON file the records are written to.
	Output string `json:"output,omitempty"`
}
