package placement_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfit/grid"
	"github.com/plus3/blockfit/input"
	"github.com/plus3/blockfit/piece"
	"github.com/plus3/blockfit/placement"
	"github.com/plus3/blockfit/scene"
)

// queue deals a fixed sequence of pieces, cycling when exhausted.
type queue struct {
	pieces []piece.Piece
	dealt  int
}

func (q *queue) Next() piece.Piece {
	p := q.pieces[q.dealt%len(q.pieces)]
	q.dealt++
	return p
}

var (
	iPiece = piece.Piece{Name: "I", Shape: piece.Shape{{true, true, true, true}}, Color: color.NRGBA{G: 0xf0, B: 0xf0, A: 0xff}}
	dot    = piece.Piece{Name: "dot", Shape: piece.Shape{{true}}, Color: color.NRGBA{R: 0xf0, A: 0xff}}
	zPiece = piece.Piece{Name: "Z", Shape: piece.Shape{{false, true, true}, {true, true, false}}, Color: color.NRGBA{R: 0xf0, A: 0xff}}
	filler = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

type fixture struct {
	engine  *placement.Engine
	grid    *grid.Grid
	surface *scene.Manager
	placed  []placement.Placement
}

func newFixture(t *testing.T, pieces ...piece.Piece) *fixture {
	t.Helper()

	cfg := placement.DefaultConfig()
	require.NoError(t, cfg.Validate())

	f := &fixture{
		grid:    cfg.NewGrid(),
		surface: scene.NewManager(),
	}
	f.engine = placement.New(cfg, f.grid, f.surface, &queue{pieces: pieces},
		placement.WithObserver(func(p placement.Placement) {
			f.placed = append(f.placed, p)
		}),
	)
	return f
}

func left(x, y float64) input.Pointer {
	return input.Pointer{X: x, Y: y, Button: input.ButtonLeft}
}

// grab presses on the first block of the given tray slot.
func (f *fixture) grab(t *testing.T, slot int) []*scene.Rect {
	t.Helper()
	tray := f.engine.Tray()
	require.Greater(t, len(tray), slot)

	b := tray[slot].Blocks[0]
	f.engine.OnPointerDown(left(b.X+b.W/2, b.Y+b.H/2))
	_, dragging := f.engine.Dragging()
	require.True(t, dragging)
	return tray[slot].Blocks
}

// drop drags the held piece to the pointer position that targets anchor and
// releases it there.
func (f *fixture) drop(shape piece.Shape, anchor grid.Coord) {
	x, y := placement.Aim(f.grid, shape, anchor)
	f.engine.OnPointerMove(left(x, y))
	f.engine.OnPointerUp(left(x, y))
}

type snapshot struct {
	X, Y, W, H float64
	Fill       color.NRGBA
	Render     bool
}

func snap(blocks []*scene.Rect) []snapshot {
	out := make([]snapshot, len(blocks))
	for i, b := range blocks {
		out[i] = snapshot{b.X, b.Y, b.W, b.H, b.Fill, b.ShouldRender}
	}
	return out
}

func TestNewDealsFullTray(t *testing.T) {
	f := newFixture(t, iPiece, dot, zPiece)

	tray := f.engine.Tray()
	require.Len(t, tray, 3)
	assert.Equal(t, "I", tray[0].Piece.Name)
	assert.Equal(t, "dot", tray[1].Piece.Name)
	assert.Equal(t, "Z", tray[2].Piece.Name)

	for _, s := range tray {
		assert.Len(t, s.Blocks, s.Piece.Shape.Count())
		area := f.engine.Config().PreviewArea(s.Index)
		for _, b := range s.Blocks {
			assert.True(t, b.ShouldRender)
			assert.Equal(t, s.Piece.Color, b.Fill)
			assert.Equal(t, 25.0, b.W)
			assert.GreaterOrEqual(t, b.X, area.X)
			assert.LessOrEqual(t, b.X+b.W, area.X+area.W)
		}
	}
	assert.Equal(t, 9, f.surface.Len())
}

func TestPlaceIPieceWithoutClear(t *testing.T) {
	f := newFixture(t, iPiece, dot, dot, zPiece)

	f.grab(t, 0)
	f.drop(iPiece.Shape, grid.Coord{Row: 0, Col: 0})

	for col := 0; col < 10; col++ {
		cell := f.grid.Cell(0, col)
		if col < 4 {
			assert.True(t, cell.Filled, "col %d", col)
			assert.Equal(t, iPiece.Color, cell.Color)
		} else {
			assert.False(t, cell.Filled, "col %d", col)
		}
	}
	assert.Equal(t, 4, f.grid.Filled())

	require.Len(t, f.placed, 1)
	assert.True(t, f.placed[0].Lines.Empty())
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, f.placed[0].Anchor)

	_, dragging := f.engine.Dragging()
	assert.False(t, dragging)
}

func TestCompletingRowClearsIt(t *testing.T) {
	f := newFixture(t, dot, iPiece, iPiece, zPiece)
	for col := 0; col < 9; col++ {
		f.grid.Fill(0, col, filler)
	}
	f.grid.Fill(3, 3, filler)

	f.grab(t, 0)
	f.drop(dot.Shape, grid.Coord{Row: 0, Col: 9})

	for col := 0; col < 10; col++ {
		assert.False(t, f.grid.Cell(0, col).Filled, "col %d", col)
		assert.Equal(t, grid.Background, f.grid.Cell(0, col).Color)
	}
	assert.True(t, f.grid.Cell(3, 3).Filled)

	require.Len(t, f.placed, 1)
	assert.Equal(t, []int{0}, f.placed[0].Lines.Rows)

	stats := f.engine.Stats()
	assert.Equal(t, 1, stats.Placements)
	assert.Equal(t, 1, stats.RowsCleared)
	assert.Equal(t, 1+10, stats.Score)
}

func TestRowAndColumnClearTogether(t *testing.T) {
	f := newFixture(t, dot, dot, dot, dot)
	for i := 0; i < 10; i++ {
		if i != 4 {
			f.grid.Fill(4, i, filler)
			f.grid.Fill(i, 4, filler)
		}
	}

	f.grab(t, 0)
	f.drop(dot.Shape, grid.Coord{Row: 4, Col: 4})

	assert.Equal(t, 0, f.grid.Filled())
	require.Len(t, f.placed, 1)
	assert.Equal(t, []int{4}, f.placed[0].Lines.Rows)
	assert.Equal(t, []int{4}, f.placed[0].Lines.Cols)
}

func TestOverlapRollsBack(t *testing.T) {
	f := newFixture(t, iPiece, dot, dot)
	f.grid.Fill(2, 3, filler)
	before := f.grid.Snapshot()

	original := snap(f.engine.Tray()[0].Blocks)
	blocks := f.grab(t, 0)
	f.drop(iPiece.Shape, grid.Coord{Row: 2, Col: 1})

	assert.Equal(t, before, f.grid.Snapshot())
	assert.Equal(t, original, snap(blocks))
	assert.Empty(t, f.placed)
	assert.Equal(t, 1, f.engine.Stats().Rollbacks)
	assert.Equal(t, "I", f.engine.Tray()[0].Piece.Name)

	_, dragging := f.engine.Dragging()
	assert.False(t, dragging)
}

func TestReleaseOutsideGridRollsBack(t *testing.T) {
	f := newFixture(t, zPiece, dot, dot)

	original := snap(f.engine.Tray()[0].Blocks)
	blocks := f.grab(t, 0)

	f.engine.OnPointerMove(left(5, 5))
	f.engine.OnPointerUp(left(5, 5))

	assert.Equal(t, original, snap(blocks))
	assert.Equal(t, 0, f.grid.Filled())
	assert.Equal(t, 4+1+1, f.surface.Len(), "cursor preview killed")
}

func TestLiftTintsBlocks(t *testing.T) {
	f := newFixture(t, iPiece, dot, dot)

	blocks := f.grab(t, 0)
	for _, b := range blocks {
		assert.Equal(t, uint8(128), b.Fill.A)
		assert.Equal(t, iPiece.Color.G, b.Fill.G)
	}

	f.engine.OnPointerUp(left(0, 0))
	for _, b := range blocks {
		assert.Equal(t, iPiece.Color, b.Fill)
	}
}

func TestCursorPreviewFollowsPointer(t *testing.T) {
	f := newFixture(t, iPiece, dot, dot)
	before := f.surface.Len()

	f.grab(t, 0)
	require.Equal(t, before+4, f.surface.Len())

	cursor := topLayer(f.surface)
	require.Len(t, cursor, 4)

	f.engine.OnPointerMove(left(700, 300))
	assert.Equal(t, 700-100.0, cursor[0].X)
	assert.Equal(t, 300-25.0, cursor[0].Y)
	assert.Equal(t, 700-100.0+150, cursor[3].X)
	assert.Equal(t, 50.0, cursor[0].W)

	f.engine.OnPointerUp(left(5, 5))
	for _, c := range cursor {
		assert.False(t, c.Alive())
	}
	assert.Equal(t, before, f.surface.Len())
}

func topLayer(m *scene.Manager) []*scene.Rect {
	var out []*scene.Rect
	for _, r := range m.Objects() {
		if r.Layer == scene.LayerCursor {
			out = append(out, r)
		}
	}
	return out
}

func TestDeadZoneIgnoresSmallMoves(t *testing.T) {
	f := newFixture(t, dot, dot, dot)

	blocks := f.grab(t, 0)
	original := snap(blocks)
	b := blocks[0]
	cx, cy := b.X+b.W/2, b.Y+b.H/2

	f.engine.OnPointerMove(left(cx+5, cy-5))
	state, _ := f.engine.Dragging()
	assert.False(t, state.Hovering)
	assert.Equal(t, original, snap(blocks))
}

func TestHoverSnapsAndHides(t *testing.T) {
	f := newFixture(t, iPiece, dot, dot)
	f.grid.Fill(5, 5, filler)
	blocks := f.grab(t, 0)

	x, y := placement.Aim(f.grid, iPiece.Shape, grid.Coord{Row: 1, Col: 2})
	f.engine.OnPointerMove(left(x, y))

	state, ok := f.engine.Dragging()
	require.True(t, ok)
	assert.True(t, state.Hovering)
	assert.Equal(t, grid.Coord{Row: 1, Col: 2}, state.Hover)
	for i, b := range blocks {
		want := f.grid.CellRect(1, 2+i)
		assert.Equal(t, want.X, b.X)
		assert.Equal(t, want.Y, b.Y)
		assert.Equal(t, want.W, b.W)
		assert.True(t, b.ShouldRender)
		assert.Equal(t, uint8(128), b.Fill.A)
	}

	x, y = placement.Aim(f.grid, iPiece.Shape, grid.Coord{Row: 5, Col: 3})
	f.engine.OnPointerMove(left(x, y))
	state, _ = f.engine.Dragging()
	assert.False(t, state.Hovering)
	for _, b := range blocks {
		assert.False(t, b.ShouldRender)
	}

	x, y = placement.Aim(f.grid, iPiece.Shape, grid.Coord{Row: 6, Col: 0})
	f.engine.OnPointerMove(left(x, y))
	for _, b := range blocks {
		assert.True(t, b.ShouldRender)
	}
}

func TestHoverAnchorIsCommittedAnchor(t *testing.T) {
	for _, p := range piece.Catalog() {
		t.Run(p.Name, func(t *testing.T) {
			f := newFixture(t, p)
			target := grid.Coord{Row: 3, Col: 4}
			require.True(t, f.grid.CanPlace(p.Shape, target))

			f.grab(t, 0)
			x, y := placement.Aim(f.grid, p.Shape, target)
			f.engine.OnPointerMove(left(x, y))

			state, _ := f.engine.Dragging()
			assert.Equal(t, target, state.Hover)

			f.engine.OnPointerUp(left(x, y))
			require.Len(t, f.placed, 1)
			assert.Equal(t, target, f.placed[0].Anchor)

			for r, c := range p.Shape.Cells() {
				assert.Equal(t, p.Color, f.grid.Cell(target.Row+r, target.Col+c).Color)
			}
			assert.Equal(t, p.Shape.Count(), f.grid.Filled())
		})
	}
}

func TestCommitReplenishesSlot(t *testing.T) {
	f := newFixture(t, dot, iPiece, iPiece, zPiece)

	blocks := f.grab(t, 0)
	f.drop(dot.Shape, grid.Coord{Row: 9, Col: 9})

	for _, b := range blocks {
		assert.False(t, b.Alive())
	}

	tray := f.engine.Tray()
	require.Len(t, tray, 3)
	assert.Equal(t, "Z", tray[0].Piece.Name)
	assert.Equal(t, 0, tray[0].Index)
	assert.Equal(t, 4+4+4, f.surface.Len())
}

func TestPointerEventsWithoutDragAreIgnored(t *testing.T) {
	f := newFixture(t, dot, dot, dot)
	before := f.grid.Snapshot()

	assert.NotPanics(t, func() {
		f.engine.OnPointerMove(left(500, 100))
		f.engine.OnPointerUp(left(500, 100))
	})
	assert.Equal(t, before, f.grid.Snapshot())

	f.engine.OnPointerDown(left(1, 1))
	_, dragging := f.engine.Dragging()
	assert.False(t, dragging, "press on empty space")

	b := f.engine.Tray()[0].Blocks[0]
	f.engine.OnPointerDown(input.Pointer{X: b.X + 1, Y: b.Y + 1, Button: input.ButtonRight})
	_, dragging = f.engine.Dragging()
	assert.False(t, dragging, "right button")
}

func TestSecondPressWhileDraggingIsIgnored(t *testing.T) {
	f := newFixture(t, dot, iPiece, dot)
	f.grab(t, 0)

	b := f.engine.Tray()[1].Blocks[0]
	f.engine.OnPointerDown(left(b.X+1, b.Y+1))

	state, _ := f.engine.Dragging()
	assert.Equal(t, 0, state.Slot)
}

func TestStuck(t *testing.T) {
	f := newFixture(t, iPiece, iPiece, iPiece)
	assert.False(t, f.engine.Stuck())

	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if col%3 != 0 {
				f.grid.Fill(row, col, filler)
			}
		}
	}
	assert.True(t, f.engine.Stuck())
}

func TestReset(t *testing.T) {
	f := newFixture(t, dot, iPiece, zPiece)
	f.grab(t, 0)
	f.drop(dot.Shape, grid.Coord{Row: 0, Col: 0})
	f.grab(t, 1)

	f.engine.Reset()

	_, dragging := f.engine.Dragging()
	assert.False(t, dragging)
	assert.Equal(t, 0, f.grid.Filled())
	assert.Equal(t, placement.Stats{}, f.engine.Stats())
	assert.Len(t, f.engine.Tray(), 3)

	total := 0
	for _, s := range f.engine.Tray() {
		total += len(s.Blocks)
	}
	assert.Equal(t, total, f.surface.Len())
}

func TestSessionIDIsStable(t *testing.T) {
	f := newFixture(t, dot)
	id := f.engine.ID()
	f.engine.Reset()
	assert.Equal(t, id, f.engine.ID())
}
