package sheetview

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sheetlab/sheetview/pkg/sheetview/models"
	"github.com/sheetlab/sheetview/pkg/sheetview/parser"
)

// Accepted upload extensions. Checked before any decoding.
var acceptedExtensions = []string{".xlsx", ".xls"}

// Accepted reports whether the file name carries an accepted
// spreadsheet extension (case insensitive).
func Accepted(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, accepted := range acceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

// Ingest decodes an uploaded spreadsheet into a workbook.
//
// The file name gates the decoder: a name without an accepted
// extension returns ErrWrongFormat before any bytes are inspected. A
// codec failure returns *DecodeError and no partial workbook. On
// success the workbook holds one grid per sheet, in source order.
func Ingest(r io.Reader, filename string, opts Options) (*models.Workbook, error) {
	if !Accepted(filename) {
		return nil, ErrWrongFormat
	}

	bookName := filepath.Base(filename)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return ingestXLS(r, bookName)
	default:
		return ingestXLSX(r, bookName, opts)
	}
}

func ingestXLSX(r io.Reader, bookName string, opts Options) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, newDecodeError(bookName, err)
	}
	defer f.Close()

	wb := models.NewWorkbook(bookName)
	for _, sheetName := range f.GetSheetList() {
		rows, err := parser.ExtractCells(f, sheetName, opts.ShouldIncludeFormulas())
		if err != nil {
			return nil, newDecodeError(bookName, err)
		}
		wb.AddSheet(sheetName, models.NewGrid(rows))
	}
	return wb, nil
}

func ingestXLS(r io.Reader, bookName string) (*models.Workbook, error) {
	// The BIFF decoder needs random access; buffer the upload.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newDecodeError(bookName, err)
	}

	sheets, err := parser.ExtractXLSSheets(bytes.NewReader(data))
	if err != nil {
		return nil, newDecodeError(bookName, err)
	}

	wb := models.NewWorkbook(bookName)
	for _, sheet := range sheets {
		wb.AddSheet(sheet.Name, models.NewGrid(sheet.Rows))
	}
	return wb, nil
}
