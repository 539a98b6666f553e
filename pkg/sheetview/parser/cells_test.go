package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName, false)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	// Every row is padded to the sheet's widest row
	for i, row := range rows {
		if len(row) != 2 {
			t.Errorf("Expected row %d to have 2 cells, got %d", i, len(row))
		}
	}

	if rows[0][0].Value != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0][0].Value)
	}

	// Check numeric typing
	if rows[1][0].Value != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1][0].Value, rows[1][0].Value)
	}
	if rows[1][1].Value != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1][1].Value)
	}

	// The missing B3 cell becomes an empty-text cell, not a hole
	if rows[2][1].Value != "" {
		t.Errorf("Expected empty string for missing cell, got %v", rows[2][1].Value)
	}
	if !rows[2][1].Empty() {
		t.Error("Expected padded cell to report Empty()")
	}
}

func TestExtractCellsFormulas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", 2)
	f.SetCellValue(sheetName, "A2", 3)
	f.SetCellValue(sheetName, "A3", 5)
	f.SetCellFormula(sheetName, "A3", "=A1+A2")

	tmpFile := filepath.Join(t.TempDir(), "formulas.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName, true)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[2][0].Formula == "" {
		t.Error("Expected formula text on A3")
	}
	if rows[0][0].Formula != "" {
		t.Errorf("Expected no formula on A1, got %q", rows[0][0].Formula)
	}
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
		{"n/a", "n/a"},
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
