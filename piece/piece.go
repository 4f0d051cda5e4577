// Package piece defines the block shapes offered to the player and the bag
// randomizer that deals them into the tray.
package piece

import (
	"image/color"
	"iter"
)

// Shape is a rectangular, row-major occupancy matrix.
type Shape [][]bool

// Width returns the number of columns in the shape's bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows in the shape's bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Cells yields the (row, col) offset of every occupied cell in row-major order.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, row := range s {
			for c, filled := range row {
				if filled && !yield(r, c) {
					return
				}
			}
		}
	}
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for range s.Cells() {
		n++
	}
	return n
}

// Bounds returns the tight bounding box of the occupied cells. ok is false
// for a shape with no occupied cells.
func (s Shape) Bounds() (minRow, minCol, maxRow, maxCol int, ok bool) {
	for r, c := range s.Cells() {
		if !ok {
			minRow, maxRow, minCol, maxCol = r, r, c, c
			ok = true
			continue
		}
		minRow = min(minRow, r)
		maxRow = max(maxRow, r)
		minCol = min(minCol, c)
		maxCol = max(maxCol, c)
	}
	return
}

// Piece is one dealt block shape with its color.
type Piece struct {
	Name  string
	Shape Shape
	Color color.NRGBA
}
