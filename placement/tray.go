package placement

import (
	"go.uber.org/zap"

	"github.com/plus3/blockfit/piece"
	"github.com/plus3/blockfit/scene"
)

// slot is one tray position. blocks follow the shape's Cells order.
type slot struct {
	index  int
	piece  piece.Piece
	blocks []*scene.Rect
}

func (s *slot) kill() {
	for _, b := range s.blocks {
		b.Kill()
	}
	s.blocks = nil
}

func (s *slot) owns(r *scene.Rect) bool {
	for _, b := range s.blocks {
		if b == r {
			return true
		}
	}
	return false
}

// deal draws a piece from the supplier into slot i, centering the occupied
// cells inside the slot's preview area.
func (e *Engine) deal(i int) {
	p := e.supplier.Next()
	area := e.cfg.PreviewArea(i)
	size := e.cfg.PreviewCellSize

	minRow, minCol, maxRow, maxCol, _ := p.Shape.Bounds()
	pieceCenterX := float64(minCol+maxCol+1) * size / 2
	pieceCenterY := float64(minRow+maxRow+1) * size / 2
	startX := area.X + area.W/2 - pieceCenterX
	startY := area.Y + area.H/2 - pieceCenterY

	s := &slot{index: i, piece: p}
	for r, c := range p.Shape.Cells() {
		s.blocks = append(s.blocks, e.surface.Rectangle(
			startX+float64(c)*size,
			startY+float64(r)*size,
			size,
			size,
			scene.Style{
				Fill:        p.Color,
				Border:      borderColor,
				BorderWidth: 1,
				Layer:       scene.LayerTray,
			},
		))
	}
	e.slots[i] = s

	e.logger.Debug("piece dealt", zap.Int("slot", i), zap.String("piece", p.Name))
}

// slotOf returns the tray slot owning r, or nil.
func (e *Engine) slotOf(r *scene.Rect) *slot {
	for _, s := range e.slots {
		if s != nil && s.owns(r) {
			return s
		}
	}
	return nil
}

// TraySlot is a read-only view of one tray position.
type TraySlot struct {
	Index  int
	Piece  piece.Piece
	Blocks []*scene.Rect
}

// Tray returns the current tray contents in slot order.
func (e *Engine) Tray() []TraySlot {
	out := make([]TraySlot, 0, len(e.slots))
	for _, s := range e.slots {
		if s == nil {
			continue
		}
		out = append(out, TraySlot{
			Index:  s.index,
			Piece:  s.piece,
			Blocks: append([]*scene.Rect(nil), s.blocks...),
		})
	}
	return out
}
