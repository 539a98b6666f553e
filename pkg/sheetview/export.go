package sheetview

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sheetlab/sheetview/pkg/sheetview/models"
)

// exportSuffix is appended to the original base name on download.
const exportSuffix = "_edited"

// Export encodes one grid as a single-sheet xlsx document. Cells are
// written back as the scalars they hold; formula metadata is dropped.
// Empty cells are not written, which round-trips to the same padded
// empty-text cells on re-ingest.
func Export(grid models.Grid, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	if sheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range grid.Rows {
		for colIdx, cell := range row {
			if cell.Empty() {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cellName, cell.Value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFileName derives the download name from the original upload:
// base name, fixed suffix, xlsx extension.
func ExportFileName(original string) string {
	base := filepath.Base(original)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + exportSuffix + ".xlsx"
}
