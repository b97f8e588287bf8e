package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestColumnValues(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "LinkedIn")
	f.SetCellValue(sheetName, "A2", "Python, SQL")
	f.SetCellValue(sheetName, "B1", "Job Posting")
	f.SetCellValue(sheetName, "B3", "Python, Java")
	f.SetCellValue(sheetName, "C2", 42)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	cols, err := ColumnValues(f2, sheetName)
	if err != nil {
		t.Fatalf("ColumnValues failed: %v", err)
	}

	if len(cols) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(cols))
	}

	// Blank cells are skipped, so each column holds only real values.
	if len(cols[0]) != 2 || cols[0][0] != "LinkedIn" || cols[0][1] != "Python, SQL" {
		t.Errorf("Unexpected first column: %v", cols[0])
	}
	if len(cols[1]) != 2 || cols[1][1] != "Python, Java" {
		t.Errorf("Unexpected second column: %v", cols[1])
	}

	// Numeric cells come back as their string rendering.
	if len(cols[2]) != 1 || cols[2][0] != "42" {
		t.Errorf("Expected [\"42\"], got %v", cols[2])
	}
}

func TestFirstColumnValues(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Go")
	f.SetCellValue(sheetName, "A3", "Rust")
	f.SetCellValue(sheetName, "B1", "ignored")

	tmpFile := filepath.Join(t.TempDir(), "first.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	values, err := FirstColumnValues(f2, sheetName)
	if err != nil {
		t.Fatalf("FirstColumnValues failed: %v", err)
	}
	if len(values) != 2 || values[0] != "Go" || values[1] != "Rust" {
		t.Errorf("Unexpected values: %v", values)
	}
}

func TestColumnValuesMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ColumnValues(f, "NoSuchSheet"); err == nil {
		t.Error("Expected error for missing sheet, got nil")
	}
}
