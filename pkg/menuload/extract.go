package menuload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/olkkari/menuload/pkg/menuload/models"
	"github.com/olkkari/menuload/pkg/menuload/output"
	"github.com/olkkari/menuload/pkg/menuload/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads the configured sheets of an Excel file.
// Sheets that are not in the workbook are skipped without error.
func Extract(path string, opts Options) ([]models.SheetExport, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	present := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		present[name] = true
	}

	var exports []models.SheetExport
	for _, spec := range opts.Sheets {
		if !present[spec.Name] {
			continue
		}
		headers, records, err := parser.ReadHeaderRecords(f, spec.Name)
		if err != nil {
			return nil, &SheetError{SheetName: spec.Name, Stage: StageRows, Err: err}
		}
		dataRange, err := parser.DataRange(f, spec.Name)
		if err != nil {
			return nil, &SheetError{SheetName: spec.Name, Stage: StageRange, Err: err}
		}
		exports = append(exports, models.SheetExport{
			SheetName: spec.Name,
			Headers:   headers,
			Range:     dataRange,
			Records:   records,
			Output:    spec.Output,
		})
	}

	return exports, nil
}

// WriteExports writes each export to its output file.
func WriteExports(exports []models.SheetExport) error {
	for _, exp := range exports {
		if err := output.WriteFile(exp.Output, exp.Records); err != nil {
			return &SheetError{SheetName: exp.SheetName, Stage: StageWrite, Path: exp.Output, Err: err}
		}
	}
	return nil
}

// ListSheets returns the sheet names of an Excel file in workbook order.
func ListSheets(path string) ([]string, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return f, nil
}
