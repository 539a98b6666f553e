// Package models defines data structures for decoded spreadsheets.
package models

import "strconv"

// Cell is a single spreadsheet value. Value is one of int64, float64
// or string; a blank cell holds the empty string. Formula carries the
// source formula text when the decoder exposes it and is never
// evaluated.
type Cell struct {
	Value   any    `json:"value"`
	Formula string `json:"formula,omitempty"`
}

// NewCell returns a value-only cell.
func NewCell(value any) Cell {
	return Cell{Value: value}
}

// Empty reports whether the cell holds no value.
func (c Cell) Empty() bool {
	if c.Value == nil {
		return true
	}
	s, ok := c.Value.(string)
	return ok && s == ""
}

// Numeric reports whether the cell value is a decoded number.
func (c Cell) Numeric() bool {
	switch c.Value.(type) {
	case int64, float64:
		return true
	}
	return false
}

// Text returns the cell value as display text.
func (c Cell) Text() string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
