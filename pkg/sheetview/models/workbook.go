package models

// Workbook is the decoded sheet collection. Sheet order is the source
// file's sheet order; names are unique. A workbook is created wholesale
// by ingest and replaced wholesale by the next ingest, never patched
// sheet by sheet.
type Workbook struct {
	// BookName is the uploaded file name (no path).
	BookName string `json:"book_name"`

	order  []string
	sheets map[string]Grid
}

// NewWorkbook returns an empty workbook for the given file name.
func NewWorkbook(bookName string) *Workbook {
	return &Workbook{
		BookName: bookName,
		sheets:   make(map[string]Grid),
	}
}

// AddSheet appends a sheet, keeping insertion order. Re-adding an
// existing name replaces the grid without disturbing the order.
func (w *Workbook) AddSheet(name string, grid Grid) {
	if _, exists := w.sheets[name]; !exists {
		w.order = append(w.order, name)
	}
	w.sheets[name] = grid
}

// SheetNames returns the sheet names in source order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.order))
	copy(names, w.order)
	return names
}

// FirstSheet returns the first sheet name, or "" for an empty workbook.
func (w *Workbook) FirstSheet() string {
	if len(w.order) == 0 {
		return ""
	}
	return w.order[0]
}

// Sheet returns the grid for a name and whether it exists.
func (w *Workbook) Sheet(name string) (Grid, bool) {
	g, ok := w.sheets[name]
	return g, ok
}

// SetSheet stores an updated grid for an existing sheet name. Unknown
// names are ignored; sheets are only introduced by ingest.
func (w *Workbook) SetSheet(name string, grid Grid) {
	if _, ok := w.sheets[name]; ok {
		w.sheets[name] = grid
	}
}

// SheetCount returns the number of sheets.
func (w *Workbook) SheetCount() int {
	return len(w.order)
}
