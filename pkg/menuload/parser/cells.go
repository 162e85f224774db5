// Package parser provides Excel sheet reading utilities.
package parser

import (
	"strconv"
	"strings"

	"github.com/olkkari/menuload/pkg/menuload/models"
	"github.com/xuri/excelize/v2"
)

// dateLayout is used for date-formatted numeric cells.
const dateLayout = "2006-01-02T15:04:05"

// ReadHeaderRecords reads a sheet whose first row holds column labels.
// Every later row with at least one non-empty cell becomes a record that pairs
// each non-empty label with the value in the same column (nil when the cell is
// empty). Rows that produce no fields are dropped. Row order is kept.
func ReadHeaderRecords(f *excelize.File, sheetName string) ([]string, []models.Record, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	headers := rows[0]
	var result []models.Record
	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2 // 1-based, after the header row

		values := make([]interface{}, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			v, err := readCell(f, sheetName, colIdx+1, rowNum, raw)
			if err != nil {
				return nil, nil, err
			}
			values[colIdx] = v
		}
		if !anyValue(values) {
			continue
		}

		var record models.Record
		for i, header := range headers {
			if header == "" {
				continue
			}
			var v interface{}
			if i < len(values) {
				v = values[i]
			}
			record.Set(header, v)
		}
		if record.Len() > 0 {
			result = append(result, record)
		}
	}

	return headers, result, nil
}

// readCell converts a raw cell value into the scalar type the cell holds.
func readCell(f *excelize.File, sheetName string, col, row int, raw string) (interface{}, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return raw, nil
	}

	if isDateCell(f, sheetName, cellName) {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t.Format(dateLayout), nil
			}
		}
	}
	return parseValue(raw), nil
}

// isDateCell reports whether the cell carries a date number format.
func isDateCell(f *excelize.File, sheetName, cellName string) bool {
	idx, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || idx == 0 {
		return false
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		fmtCode := strings.ToLower(*style.CustomNumFmt)
		return strings.Contains(fmtCode, "yy") ||
			(strings.Contains(fmtCode, "d") && strings.Contains(fmtCode, "m"))
	}
	switch {
	case style.NumFmt >= 14 && style.NumFmt <= 22:
		return true
	case style.NumFmt >= 45 && style.NumFmt <= 47:
		return true
	}
	return false
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// anyValue reports whether at least one value is non-empty.
// nil, "", numeric zero and false all count as empty.
func anyValue(values []interface{}) bool {
	for _, v := range values {
		if !IsEmpty(v) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether a cell value counts as empty.
func IsEmpty(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case int64:
		return x == 0
	case float64:
		return x == 0
	case bool:
		return !x
	}
	return false
}
