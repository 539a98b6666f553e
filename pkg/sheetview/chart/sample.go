// Package chart derives the capped tabular sample a grid hands to the
// charting renderer.
package chart

import "fmt"

// NameKey is the category-axis key of every record.
const NameKey = "name"

// MaxSampleRows caps how many data rows feed the chart.
const MaxSampleRows = 6

// Palette is the fixed series color rotation supplied to the renderer,
// which owns axis layout, legends and color assignment beyond it.
var Palette = []string{
	"#8884d8",
	"#82ca9d",
	"#ffc658",
	"#ff7f50",
	"#a4de6c",
	"#d084d8",
}

// Record is one charted row: the NameKey category label plus one entry
// per numeric series present in that row. Rows may carry different
// series subsets; the renderer treats a missing key as absent.
type Record map[string]any

// BuildSample derives a chart sample from a grid's raw scalar rows.
//
// Row 0 is the header row; rows 1..MaxSampleRows are sampled in source
// order. A data column joins a record only when its value is numeric
// (int64 or float64) — nothing is coerced. Records left with no series
// are dropped, so the result may be shorter than the sample, including
// empty. Fewer than 2 input rows yield an empty sample. The function
// is pure: identical input produces identical output.
func BuildSample(rows [][]any) []Record {
	if len(rows) < 2 {
		return []Record{}
	}

	header := rows[0]
	limit := len(rows)
	if limit > 1+MaxSampleRows {
		limit = 1 + MaxSampleRows
	}

	sample := make([]Record, 0, limit-1)
	for rowIdx := 1; rowIdx < limit; rowIdx++ {
		row := rows[rowIdx]

		record := Record{NameKey: categoryLabel(row, rowIdx)}
		for colIdx := 1; colIdx < len(row); colIdx++ {
			if !numeric(row[colIdx]) {
				continue
			}
			record[seriesLabel(header, colIdx)] = row[colIdx]
		}

		// A name with no series charts nothing.
		if len(record) > 1 {
			sample = append(sample, record)
		}
	}

	return sample
}

// seriesLabel resolves the header cell for a data column, falling back
// to a synthesized label 1-indexed over the data columns.
func seriesLabel(header []any, colIdx int) string {
	if colIdx < len(header) {
		if s := text(header[colIdx]); s != "" {
			return s
		}
	}
	return fmt.Sprintf("Значение %d", colIdx)
}

// categoryLabel resolves a row's first cell, falling back to a
// synthesized label 1-indexed by position within the sample. The
// position counts sampled rows before the no-series post-filter.
func categoryLabel(row []any, position int) string {
	if len(row) > 0 {
		if s := text(row[0]); s != "" {
			return s
		}
	}
	return fmt.Sprintf("Строка %d", position)
}

func numeric(v any) bool {
	switch v.(type) {
	case int64, float64:
		return true
	}
	return false
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
