package grid_test

import (
	"image/color"
	"testing"

	"github.com/plus3/blockfit/grid"
	"github.com/stretchr/testify/assert"
)

func fillRow(g *grid.Grid, row int, c color.NRGBA, skip ...int) {
	skipped := map[int]bool{}
	for _, col := range skip {
		skipped[col] = true
	}
	for col := 0; col < g.Cols(); col++ {
		if !skipped[col] {
			g.Fill(row, col, c)
		}
	}
}

func fillCol(g *grid.Grid, col int, c color.NRGBA) {
	for row := 0; row < g.Rows(); row++ {
		g.Fill(row, col, c)
	}
}

func TestScanEmptyGrid(t *testing.T) {
	lines := grid.Scan(newGrid())
	assert.True(t, lines.Empty())
	assert.Equal(t, 0, lines.Count())
}

func TestScanAndClearRow(t *testing.T) {
	g := newGrid()
	fillRow(g, 0, red)
	g.Fill(1, 0, red)

	lines := grid.Scan(g)
	assert.Equal(t, []int{0}, lines.Rows)
	assert.Empty(t, lines.Cols)

	lines.Clear(g)
	for col := 0; col < g.Cols(); col++ {
		assert.False(t, g.Cell(0, col).Filled)
		assert.Equal(t, grid.Background, g.Cell(0, col).Color)
	}
	assert.True(t, g.Cell(1, 0).Filled, "cells outside the line stay")
}

func TestScanIgnoresAlmostFullLines(t *testing.T) {
	g := newGrid()
	fillRow(g, 4, red, 7)

	for row := 0; row < g.Rows(); row++ {
		if row != 2 {
			g.Fill(row, 9, red)
		}
	}

	lines := grid.Scan(g)
	assert.True(t, lines.Empty())

	lines.Clear(g)
	assert.Equal(t, 9+9-1, g.Filled())
}

func TestScanRowsAndColumnsFromOneSnapshot(t *testing.T) {
	g := newGrid()
	fillRow(g, 3, red)
	fillRow(g, 7, red)
	fillCol(g, 0, red)
	fillCol(g, 5, red)

	lines := grid.Scan(g)
	assert.Equal(t, []int{3, 7}, lines.Rows)
	assert.Equal(t, []int{0, 5}, lines.Cols)
	assert.Equal(t, 4, lines.Count())

	lines.Clear(g)
	assert.Equal(t, 0, g.Filled())
}

func TestScanDoesNotCascade(t *testing.T) {
	g := newGrid()
	fillRow(g, 0, red)
	fillCol(g, 9, red)
	g.Fill(5, 0, red)

	lines := grid.Scan(g)
	lines.Clear(g)

	assert.Equal(t, 1, g.Filled())
	assert.True(t, grid.Scan(g).Empty())
}
