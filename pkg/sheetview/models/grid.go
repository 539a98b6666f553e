package models

// Grid is one sheet's contents as an ordered sequence of cell rows.
// Row 0 is the first source row; header semantics are applied only by
// the chart sampling stage. Rows are dense: ingest pads every row to
// the sheet's widest row, and Set preserves that, so trailing blanks
// are never silently lost.
type Grid struct {
	Rows [][]Cell `json:"rows"`
}

// NewGrid wraps pre-built cell rows.
func NewGrid(rows [][]Cell) Grid {
	return Grid{Rows: rows}
}

// RowCount returns the number of rows.
func (g Grid) RowCount() int {
	return len(g.Rows)
}

// Raw unwraps the grid back to rows of scalar values, discarding
// formula metadata. This is the input shape of the chart sampling
// stage and of the export encoder.
func (g Grid) Raw() [][]any {
	raw := make([][]any, len(g.Rows))
	for i, row := range g.Rows {
		vals := make([]any, len(row))
		for j, cell := range row {
			vals[j] = cell.Value
		}
		raw[i] = vals
	}
	return raw
}

// Set places a cell at the given 0-based coordinate, growing the grid
// to fit. Growth keeps the grid dense: every row, new or existing, is
// padded with empty-text cells to the widest row after the write.
func (g *Grid) Set(row, col int, cell Cell) {
	width := col + 1
	for _, r := range g.Rows {
		if len(r) > width {
			width = len(r)
		}
	}
	for len(g.Rows) <= row {
		g.Rows = append(g.Rows, nil)
	}
	for i := range g.Rows {
		for len(g.Rows[i]) < width {
			g.Rows[i] = append(g.Rows[i], NewCell(""))
		}
	}
	g.Rows[row][col] = cell
}

// Clone returns a deep copy whose rows share no storage with the
// receiver, so the copy can be read while the original keeps changing.
func (g Grid) Clone() Grid {
	rows := make([][]Cell, len(g.Rows))
	for i, row := range g.Rows {
		rows[i] = append([]Cell(nil), row...)
	}
	return Grid{Rows: rows}
}

// Cell returns the cell at the given 0-based coordinate and whether it
// exists.
func (g Grid) Cell(row, col int) (Cell, bool) {
	if row < 0 || col < 0 || row >= len(g.Rows) || col >= len(g.Rows[row]) {
		return Cell{}, false
	}
	return g.Rows[row][col], true
}
