package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetKeepsGridDense(t *testing.T) {
	g := NewGrid([][]Cell{
		{NewCell("a")},
		{NewCell("b"), NewCell("c")},
	})

	g.Set(3, 2, NewCell(int64(7)))

	require.Equal(t, 4, g.RowCount())
	for i, row := range g.Rows {
		assert.Len(t, row, 3, "row %d", i)
	}

	cell, ok := g.Cell(3, 2)
	require.True(t, ok)
	assert.Equal(t, int64(7), cell.Value)

	// Rows materialized or widened by growth hold empty text, not holes
	padded, ok := g.Cell(2, 0)
	require.True(t, ok)
	assert.True(t, padded.Empty())
	padded, ok = g.Cell(0, 2)
	require.True(t, ok)
	assert.True(t, padded.Empty())
}

func TestSetWidensSiblingRows(t *testing.T) {
	g := NewGrid([][]Cell{
		{NewCell("a"), NewCell("b")},
		{NewCell("c"), NewCell("d")},
	})

	g.Set(0, 3, NewCell("e"))

	for i, row := range g.Rows {
		assert.Len(t, row, 4, "row %d", i)
	}
	cell, _ := g.Cell(1, 3)
	assert.True(t, cell.Empty())
}

func TestCloneDetachesStorage(t *testing.T) {
	g := NewGrid([][]Cell{{NewCell("a"), NewCell(int64(1))}})

	c := g.Clone()
	c.Rows[0][0] = NewCell("tampered")
	c.Set(0, 5, NewCell("grown"))

	assert.Equal(t, "a", g.Rows[0][0].Value)
	require.Len(t, g.Rows[0], 2)
	assert.Equal(t, [][]Cell{{NewCell("a"), NewCell(int64(1))}}, g.Rows)
}
