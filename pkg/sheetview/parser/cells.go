// Package parser converts decoder output into grid rows.
package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/sheetlab/sheetview/pkg/sheetview/models"
)

// ExtractCells extracts one sheet into dense cell rows. The first
// source row is row index 0. Every row is padded to the sheet's widest
// row with empty-text cells, so a short row lacks nothing but trailing
// blanks and no row is truncated by the decoder dropping them.
func ExtractCells(f *excelize.File, sheetName string, includeFormulas bool) ([][]models.Cell, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	result := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, width)
		for colIdx := 0; colIdx < width; colIdx++ {
			value := ""
			if colIdx < len(row) {
				value = row[colIdx]
			}
			cell := models.NewCell(parseValue(value))

			if includeFormulas && value != "" {
				cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if formula, err := f.GetCellFormula(sheetName, cellName); err == nil && formula != "" {
					cell.Formula = formula
				}
			}
			cells[colIdx] = cell
		}
		result[rowIdx] = cells
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
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

// ParseValue is the exported value typing used by cell edits, so an
// edited cell is typed exactly like an ingested one.
func ParseValue(s string) any {
	return parseValue(s)
}
