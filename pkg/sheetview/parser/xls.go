package parser

import (
	"io"

	"github.com/extrame/xls"

	"github.com/sheetlab/sheetview/pkg/sheetview/models"
)

// XLSSheet is one decoded sheet of a legacy .xls workbook.
type XLSSheet struct {
	Name string
	Rows [][]models.Cell
}

// ExtractXLSSheets decodes a legacy .xls workbook into dense cell rows
// per sheet, in source order. The BIFF decoder only exposes display
// text, so values are typed with the same parseValue policy as the
// xlsx path and formulas are unavailable.
func ExtractXLSSheets(r io.ReadSeeker) ([]XLSSheet, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, err
	}

	sheets := make([]XLSSheet, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}

		rowCount := int(sheet.MaxRow) + 1
		raw := make([][]string, rowCount)
		width := 0
		for rowIdx := 0; rowIdx < rowCount; rowIdx++ {
			row := sheet.Row(rowIdx)
			if row == nil {
				continue
			}
			cols := row.LastCol() + 1
			if cols > width {
				width = cols
			}
			line := make([]string, cols)
			for colIdx := 0; colIdx < cols; colIdx++ {
				line[colIdx] = row.Col(colIdx)
			}
			raw[rowIdx] = line
		}

		rows := make([][]models.Cell, rowCount)
		for rowIdx, line := range raw {
			cells := make([]models.Cell, width)
			for colIdx := 0; colIdx < width; colIdx++ {
				value := ""
				if colIdx < len(line) {
					value = line[colIdx]
				}
				cells[colIdx] = models.NewCell(parseValue(value))
			}
			rows[rowIdx] = cells
		}

		sheets = append(sheets, XLSSheet{Name: sheet.Name, Rows: rows})
	}

	return sheets, nil
}
