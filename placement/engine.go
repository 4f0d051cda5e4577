// Package placement implements the drag-and-drop placement engine: it keeps
// the preview tray stocked, tracks the active drag, previews where the piece
// would land, commits legal placements and clears completed lines.
package placement

import (
	"image/color"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plus3/blockfit/grid"
	"github.com/plus3/blockfit/piece"
	"github.com/plus3/blockfit/scene"
)

// Surface creates and hit-tests the rectangles the engine draws with.
type Surface interface {
	Rectangle(x, y, w, h float64, style scene.Style) *scene.Rect
	HitTest(x, y float64) []*scene.Rect
}

// Supplier deals pieces into the tray.
type Supplier interface {
	Next() piece.Piece
}

// Observer is notified after every committed placement.
type Observer func(Placement)

// Placement describes one committed piece.
type Placement struct {
	Slot   int
	Piece  piece.Piece
	Anchor grid.Coord
	Cells  []grid.Coord
	Lines  grid.Lines
}

// Stats accumulates over a session.
type Stats struct {
	Placements   int
	BlocksPlaced int
	RowsCleared  int
	ColsCleared  int
	Rollbacks    int
	Score        int
}

const pointsPerLine = 10

var borderColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Engine owns the tray slots and the active drag session for one game. It is
// driven from a single event loop and is not safe for concurrent use.
type Engine struct {
	cfg      Config
	grid     *grid.Grid
	surface  Surface
	supplier Supplier
	logger   *zap.Logger
	observer Observer
	id       uuid.UUID

	slots []*slot
	drag  *session
	stats Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithObserver registers a callback invoked after each commit.
func WithObserver(fn Observer) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// New creates an engine and deals the initial tray. The grid is used for all
// pixel to cell conversions; cfg supplies the tray layout and drag tuning.
func New(cfg Config, g *grid.Grid, surface Surface, supplier Supplier, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		grid:     g,
		surface:  surface,
		supplier: supplier,
		logger:   zap.NewNop(),
		id:       uuid.New(),
		slots:    make([]*slot, cfg.TraySlots),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("session", e.id.String()))

	for i := range e.slots {
		e.deal(i)
	}

	e.logger.Debug("engine ready",
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
		zap.Int("tray_slots", cfg.TraySlots),
	)
	return e
}

// ID returns the session id.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Grid returns the board.
func (e *Engine) Grid() *grid.Grid {
	return e.grid
}

// Stats returns the accumulated session statistics.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Stuck reports whether no tray piece fits anywhere on the grid.
func (e *Engine) Stuck() bool {
	for _, s := range e.slots {
		if s != nil && e.grid.Fits(s.piece.Shape) {
			return false
		}
	}
	return true
}

// Reset abandons any drag, empties the grid, redeals the tray and zeroes the
// statistics.
func (e *Engine) Reset() {
	if e.drag != nil {
		e.rollback()
		e.endDrag()
	}

	e.grid.Reset()
	for i, s := range e.slots {
		if s != nil {
			s.kill()
		}
		e.deal(i)
	}
	e.stats = Stats{}

	e.logger.Debug("engine reset")
}

// tint returns c with the given opacity.
func tint(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(alpha * 0xff))
	return c
}
