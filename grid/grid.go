// Package grid holds the playfield occupancy, maps pixels to cells and
// answers placement legality queries.
package grid

import (
	"image/color"
	"iter"
	"math"

	"github.com/plus3/blockfit/piece"
)

// Background is the fill of an empty cell.
var Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Cell is one grid square. An empty cell always carries Background.
type Cell struct {
	Row, Col int
	Filled   bool
	Color    color.NRGBA
}

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Grid is a fixed rows x cols board anchored at a pixel origin.
type Grid struct {
	rows, cols int
	x, y       float64
	size       float64
	cells      []Cell
}

// New creates an empty grid. Origin and cell size never change afterwards.
func New(rows, cols int, x, y, cellSize float64) *Grid {
	if rows <= 0 || cols <= 0 || cellSize <= 0 {
		panic("grid: rows, cols and cell size must be positive")
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		x:     x,
		y:     y,
		size:  cellSize,
		cells: make([]Cell, rows*cols),
	}
	g.Reset()
	return g
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell{Row: i / g.cols, Col: i % g.cols, Color: Background}
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// CellSize returns the pixel edge length of one cell.
func (g *Grid) CellSize() float64 {
	return g.size
}

// Origin returns the pixel position of the grid's top-left corner.
func (g *Grid) Origin() (x, y float64) {
	return g.x, g.y
}

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the cell at (row, col), or nil outside the grid.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// CellAt returns the cell under the pixel (x, y), or nil outside the grid.
func (g *Grid) CellAt(x, y float64) *Cell {
	col := int(math.Floor((x - g.x) / g.size))
	row := int(math.Floor((y - g.y) / g.size))
	return g.Cell(row, col)
}

// CellRect returns the pixel rectangle of (row, col).
func (g *Grid) CellRect(row, col int) Rect {
	return Rect{
		X: g.x + float64(col)*g.size,
		Y: g.y + float64(row)*g.size,
		W: g.size,
		H: g.size,
	}
}

// Bounds returns the pixel rectangle covered by the whole grid.
func (g *Grid) Bounds() Rect {
	return Rect{X: g.x, Y: g.y, W: float64(g.cols) * g.size, H: float64(g.rows) * g.size}
}

// Fill marks (row, col) as occupied by color. Out-of-range coordinates are ignored.
func (g *Grid) Fill(row, col int, c color.NRGBA) {
	if cell := g.Cell(row, col); cell != nil {
		cell.Filled = true
		cell.Color = c
	}
}

// Clear resets (row, col) to empty. Out-of-range coordinates are ignored.
func (g *Grid) Clear(row, col int) {
	if cell := g.Cell(row, col); cell != nil {
		cell.Filled = false
		cell.Color = Background
	}
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the cells in row-major order.
func (g *Grid) Snapshot() []Cell {
	return append([]Cell(nil), g.cells...)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = g.Snapshot()
	return &c
}

// CanPlace reports whether shape fits with its top-left corner at anchor:
// the anchor is on the grid and every occupied shape cell lands on an
// existing empty cell.
func (g *Grid) CanPlace(shape piece.Shape, anchor Coord) bool {
	if !g.InBounds(anchor.Row, anchor.Col) {
		return false
	}
	for r, c := range shape.Cells() {
		cell := g.Cell(anchor.Row+r, anchor.Col+c)
		if cell == nil || cell.Filled {
			return false
		}
	}
	return true
}

// Place fills the footprint of shape at anchor with color and returns the
// filled coordinates. An illegal placement returns nil and changes nothing.
func (g *Grid) Place(shape piece.Shape, anchor Coord, c color.NRGBA) []Coord {
	if !g.CanPlace(shape, anchor) {
		return nil
	}

	filled := make([]Coord, 0, shape.Count())
	for r, col := range shape.Cells() {
		at := Coord{Row: anchor.Row + r, Col: anchor.Col + col}
		g.Fill(at.Row, at.Col, c)
		filled = append(filled, at)
	}
	return filled
}

// Fits reports whether shape can be placed anywhere on the grid.
func (g *Grid) Fits(shape piece.Shape) bool {
	for range g.Anchors(shape) {
		return true
	}
	return false
}

// Anchors yields every legal anchor for shape in row-major order.
func (g *Grid) Anchors(shape piece.Shape) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for row := 0; row < g.rows; row++ {
			for col := 0; col < g.cols; col++ {
				at := Coord{Row: row, Col: col}
				if g.CanPlace(shape, at) && !yield(at) {
					return
				}
			}
		}
	}
}
