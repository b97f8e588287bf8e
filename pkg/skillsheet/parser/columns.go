package parser

import (
	"github.com/xuri/excelize/v2"
)

// ColumnValues extracts the non-empty cell values of every column in a
// sheet. The result holds one slice per column, in sheet order, with
// blank cells skipped entirely. Numeric and boolean cells arrive in
// their string rendering, which is the form the tokenizer consumes.
func ColumnValues(f *excelize.File, sheetName string) ([][]string, error) {
	cols, err := f.GetCols(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([][]string, 0, len(cols))
	for _, col := range cols {
		var values []string
		for _, cellValue := range col {
			if cellValue == "" {
				continue
			}
			values = append(values, cellValue)
		}
		result = append(result, values)
	}

	return result, nil
}

// FirstColumnValues extracts the non-empty cell values of the first
// column only. Sheets with no columns yield an empty slice.
func FirstColumnValues(f *excelize.File, sheetName string) ([]string, error) {
	cols, err := ColumnValues(f, sheetName)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, nil
	}
	return cols[0], nil
}
