package skillsheet

import (
	"errors"
)

// ErrInputNotFound indicates the input workbook path does not exist.
var ErrInputNotFound = errors.New("input workbook not found")

// ErrSheetNotFound indicates a named sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidWorkbook indicates the input file exists but is not a
// readable xlsx workbook.
var ErrInvalidWorkbook = errors.New("invalid workbook")
