package placement

import (
	"math"

	"github.com/plus3/blockfit/grid"
	"github.com/plus3/blockfit/piece"
)

// Anchor maps a pointer position to the top-left cell a shape centered under
// the pointer would occupy. Even-sized dimensions are shifted by half a cell
// so they snap symmetrically. The same mapping is used while hovering and at
// release, so the previewed cells are always the committed cells.
func Anchor(g *grid.Grid, shape piece.Shape, x, y float64) grid.Coord {
	ox, oy := g.Origin()
	size := g.CellSize()

	gx, gy := x-ox, y-oy
	w, h := shape.Width(), shape.Height()

	colAdj, rowAdj := 0, 0
	if w%2 == 0 {
		gx -= size / 2
		colAdj = 1
	}
	if h%2 == 0 {
		gy -= size / 2
		rowAdj = 1
	}

	return grid.Coord{
		Row: int(math.Floor(gy/size)) - h/2 + rowAdj,
		Col: int(math.Floor(gx/size)) - w/2 + colAdj,
	}
}

// Aim returns the pointer position that centers shape over anchor. Anchor
// maps it back to the same cell.
func Aim(g *grid.Grid, shape piece.Shape, anchor grid.Coord) (x, y float64) {
	ox, oy := g.Origin()
	size := g.CellSize()

	x = ox + (float64(anchor.Col)+float64(shape.Width())/2)*size
	y = oy + (float64(anchor.Row)+float64(shape.Height())/2)*size
	return x, y
}
