// Package viewer holds the process-local UI state: the loaded
// workbook, the active sheet and the derived chart sample.
package viewer

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sheetlab/sheetview/pkg/sheetview"
	"github.com/sheetlab/sheetview/pkg/sheetview/chart"
	"github.com/sheetlab/sheetview/pkg/sheetview/models"
	"github.com/sheetlab/sheetview/pkg/sheetview/parser"
)

// FileInfo describes the upload behind the current workbook.
type FileInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Viewer is the explicit state container. A successful Load replaces
// all state atomically; a failed one leaves prior state intact, so
// readers never observe a partially committed sheet collection.
type Viewer struct {
	mu       sync.RWMutex
	workbook *models.Workbook
	active   string
	sample   []chart.Record
	file     FileInfo
}

// New returns an empty viewer.
func New() *Viewer {
	return &Viewer{sample: []chart.Record{}}
}

// Load ingests an upload and, on success, replaces the workbook, the
// active sheet (first sheet of the file) and the chart sample in one
// step. The returned error is ErrWrongFormat, *DecodeError, or nil.
func (v *Viewer) Load(r io.Reader, filename string, size int64) error {
	wb, err := sheetview.Ingest(r, filename, sheetview.DefaultOptions())
	if err != nil {
		log.Printf("[viewer] ingest of %q failed: %v", filename, err)
		return err
	}

	first := wb.FirstSheet()
	var sample []chart.Record
	if grid, ok := wb.Sheet(first); ok {
		sample = chart.BuildSample(grid.Raw())
	} else {
		sample = []chart.Record{}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.workbook = wb
	v.active = first
	v.sample = sample
	v.file = FileInfo{
		ID:         uuid.NewString(),
		Name:       filename,
		Size:       size,
		UploadedAt: time.Now(),
	}
	log.Printf("[viewer] loaded %q: %d sheet(s), active %q", filename, wb.SheetCount(), first)
	return nil
}

// SwitchSheet changes the active sheet and recomputes the chart sample
// from the newly selected grid. Unknown names change nothing.
func (v *Viewer) SwitchSheet(name string) ([]chart.Record, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.workbook == nil {
		return nil, sheetview.ErrNoWorkbook
	}
	grid, ok := v.workbook.Sheet(name)
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", name)
	}
	v.active = name
	v.sample = chart.BuildSample(grid.Raw())
	return v.sample, nil
}

// UpdateCell edits one cell of a named sheet, typing the submitted
// text the way ingest would. When the active sheet was touched, the
// chart sample is recomputed.
func (v *Viewer) UpdateCell(sheet string, row, col int, value string) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("invalid cell coordinate %d,%d", row, col)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.workbook == nil {
		return sheetview.ErrNoWorkbook
	}
	grid, ok := v.workbook.Sheet(sheet)
	if !ok {
		return fmt.Errorf("unknown sheet %q", sheet)
	}

	grid.Set(row, col, models.NewCell(parser.ParseValue(value)))
	v.workbook.SetSheet(sheet, grid)

	if sheet == v.active {
		v.sample = chart.BuildSample(grid.Raw())
	}
	return nil
}

// Snapshot is a consistent read of the viewer state for API responses.
type Snapshot struct {
	Loaded      bool
	File        FileInfo
	SheetNames  []string
	ActiveSheet string
	Sample      []chart.Record
}

// Snapshot returns the current state under the read lock.
func (v *Viewer) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	snap := Snapshot{Sample: v.sample}
	if v.workbook == nil {
		return snap
	}
	snap.Loaded = true
	snap.File = v.file
	snap.SheetNames = v.workbook.SheetNames()
	snap.ActiveSheet = v.active
	return snap
}

// Grid returns a detached copy of one sheet's grid. The copy shares no
// cell storage with the workbook, so callers may read it after the
// lock is released while edits keep landing on the live grid.
func (v *Viewer) Grid(name string) (models.Grid, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.workbook == nil {
		return models.Grid{}, sheetview.ErrNoWorkbook
	}
	grid, ok := v.workbook.Sheet(name)
	if !ok {
		return models.Grid{}, fmt.Errorf("unknown sheet %q", name)
	}
	return grid.Clone(), nil
}

// Export encodes the active sheet and returns the document bytes plus
// the download file name derived from the original upload.
func (v *Viewer) Export() ([]byte, string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.workbook == nil {
		return nil, "", sheetview.ErrNoWorkbook
	}
	grid, ok := v.workbook.Sheet(v.active)
	if !ok {
		return nil, "", sheetview.ErrNoWorkbook
	}
	data, err := sheetview.Export(grid, v.active)
	if err != nil {
		return nil, "", err
	}
	return data, sheetview.ExportFileName(v.file.Name), nil
}
