// Package sheetview ingests spreadsheet files into grids and encodes
// grids back into spreadsheet files.
package sheetview

// Options configures ingest behavior.
type Options struct {
	// IncludeFormulas specifies whether cell formula text is read into
	// the grid (reserved metadata, never evaluated).
	// If nil, defaults to true. The legacy .xls path ignores it: the
	// BIFF decoder exposes evaluated text only.
	IncludeFormulas *bool
}

// DefaultOptions returns default ingest options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeFormulas returns whether formula text is read.
func (o Options) ShouldIncludeFormulas() bool {
	if o.IncludeFormulas != nil {
		return *o.IncludeFormulas
	}
	return true
}
