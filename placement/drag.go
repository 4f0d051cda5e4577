package placement

import (
	"image/color"
	"math"

	"go.uber.org/zap"

	"github.com/plus3/blockfit/grid"
	"github.com/plus3/blockfit/input"
	"github.com/plus3/blockfit/scene"
)

var _ input.Listener = (*Engine)(nil)

// blockState is the geometry and fill a dragged block is restored to on
// rollback.
type blockState struct {
	X, Y, W, H float64
	Fill       color.NRGBA
}

// session is the transient state of one drag, from pointer-down on a tray
// block to pointer-up.
type session struct {
	slot             *slot
	startX, startY   float64
	offsetX, offsetY float64
	originals        []blockState
	cursor           []*scene.Rect
	hover            grid.Coord
	hovering         bool
}

// DragState is a read-only view of the active drag.
type DragState struct {
	Slot     int
	Piece    string
	StartX   float64
	StartY   float64
	Hover    grid.Coord
	Hovering bool
}

// Dragging returns the active drag, if any.
func (e *Engine) Dragging() (DragState, bool) {
	if e.drag == nil {
		return DragState{}, false
	}
	return DragState{
		Slot:     e.drag.slot.index,
		Piece:    e.drag.slot.piece.Name,
		StartX:   e.drag.startX,
		StartY:   e.drag.startY,
		Hover:    e.drag.hover,
		Hovering: e.drag.hovering,
	}, true
}

// OnPointerDown picks up the tray piece under the pointer.
func (e *Engine) OnPointerDown(p input.Pointer) {
	if p.Button != input.ButtonLeft || e.drag != nil {
		return
	}

	for _, hit := range e.surface.HitTest(p.X, p.Y) {
		if s := e.slotOf(hit); s != nil {
			e.pickUp(s, p)
			return
		}
	}
}

func (e *Engine) pickUp(s *slot, p input.Pointer) {
	shape := s.piece.Shape
	size := e.grid.CellSize()

	d := &session{
		slot:      s,
		startX:    p.X,
		startY:    p.Y,
		offsetX:   float64(shape.Width()) * size / 2,
		offsetY:   float64(shape.Height()) * size / 2,
		originals: make([]blockState, len(s.blocks)),
	}

	for i, b := range s.blocks {
		d.originals[i] = blockState{X: b.X, Y: b.Y, W: b.W, H: b.H, Fill: b.Fill}
		if b.Fill.A == 0xff {
			b.Fill = tint(b.Fill, e.cfg.LiftAlpha)
		}
	}

	for r, c := range shape.Cells() {
		d.cursor = append(d.cursor, e.surface.Rectangle(
			p.X-d.offsetX+float64(c)*size,
			p.Y-d.offsetY+float64(r)*size,
			size,
			size,
			scene.Style{
				Fill:        s.piece.Color,
				Border:      borderColor,
				BorderWidth: 1,
				Layer:       scene.LayerCursor,
			},
		))
	}

	e.drag = d
	e.logger.Debug("piece picked up",
		zap.Int("slot", s.index),
		zap.String("piece", s.piece.Name),
	)
}

// OnPointerMove updates the floating piece and the snapped grid preview once
// the pointer has left the dead zone around the pickup point.
func (e *Engine) OnPointerMove(p input.Pointer) {
	d := e.drag
	if d == nil {
		return
	}
	if math.Abs(p.X-d.startX) <= e.cfg.DeadZone && math.Abs(p.Y-d.startY) <= e.cfg.DeadZone {
		return
	}

	blocks := d.slot.blocks
	for _, b := range blocks {
		b.ShouldRender = true
	}

	shape := d.slot.piece.Shape
	size := e.grid.CellSize()

	i := 0
	for r, c := range shape.Cells() {
		d.cursor[i].X = p.X - d.offsetX + float64(c)*size
		d.cursor[i].Y = p.Y - d.offsetY + float64(r)*size
		i++
	}

	anchor := Anchor(e.grid, shape, p.X, p.Y)
	if !e.grid.CanPlace(shape, anchor) {
		for _, b := range blocks {
			b.ShouldRender = false
		}
		d.hovering = false
		return
	}

	fill := tint(d.slot.piece.Color, e.cfg.LiftAlpha)
	i = 0
	for r, c := range shape.Cells() {
		rect := e.grid.CellRect(anchor.Row+r, anchor.Col+c)
		b := blocks[i]
		b.X, b.Y, b.W, b.H = rect.X, rect.Y, rect.W, rect.H
		b.Fill = fill
		b.ShouldRender = true
		i++
	}
	d.hover = anchor
	d.hovering = true
}

// OnPointerUp commits the piece when released over the grid at a legal
// anchor and rolls it back to the tray otherwise. Legality is recomputed
// here rather than trusted from the last move.
func (e *Engine) OnPointerUp(p input.Pointer) {
	d := e.drag
	if d == nil || p.Button != input.ButtonLeft {
		return
	}
	defer e.endDrag()

	if e.grid.CellAt(p.X, p.Y) == nil {
		e.rollback()
		return
	}

	shape := d.slot.piece.Shape
	anchor := Anchor(e.grid, shape, p.X, p.Y)
	if !e.grid.CanPlace(shape, anchor) {
		e.rollback()
		return
	}

	e.commit(anchor)
}

func (e *Engine) commit(anchor grid.Coord) {
	s := e.drag.slot
	cells := e.grid.Place(s.piece.Shape, anchor, s.piece.Color)

	lines := grid.Scan(e.grid)
	lines.Clear(e.grid)

	s.kill()
	e.deal(s.index)

	e.stats.Placements++
	e.stats.BlocksPlaced += len(cells)
	e.stats.RowsCleared += len(lines.Rows)
	e.stats.ColsCleared += len(lines.Cols)
	e.stats.Score += len(cells) + pointsPerLine*lines.Count()

	e.logger.Debug("piece placed",
		zap.Int("slot", s.index),
		zap.String("piece", s.piece.Name),
		zap.Int("row", anchor.Row),
		zap.Int("col", anchor.Col),
		zap.Ints("rows_cleared", lines.Rows),
		zap.Ints("cols_cleared", lines.Cols),
		zap.Int("score", e.stats.Score),
	)

	if e.observer != nil {
		e.observer(Placement{
			Slot:   s.index,
			Piece:  s.piece,
			Anchor: anchor,
			Cells:  cells,
			Lines:  lines,
		})
	}
}

func (e *Engine) rollback() {
	d := e.drag
	for i, b := range d.slot.blocks {
		o := d.originals[i]
		b.X, b.Y, b.W, b.H = o.X, o.Y, o.W, o.H
		b.Fill = o.Fill
		b.ShouldRender = true
	}
	e.stats.Rollbacks++

	e.logger.Debug("piece returned to tray",
		zap.Int("slot", d.slot.index),
		zap.String("piece", d.slot.piece.Name),
	)
}

func (e *Engine) endDrag() {
	for _, b := range e.drag.cursor {
		b.Kill()
	}
	e.drag = nil
}
