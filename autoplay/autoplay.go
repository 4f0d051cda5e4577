// Package autoplay drives a placement engine through the same pointer events a
// person would produce, choosing moves with a greedy line-clearing heuristic.
package autoplay

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/plus3/blockfit/grid"
	"github.com/plus3/blockfit/input"
	"github.com/plus3/blockfit/placement"
)

var (
	ErrNoSlot   = errors.New("autoplay: tray slot is empty")
	ErrRejected = errors.New("autoplay: engine rejected the move")
)

// Move is a tray slot and the anchor it should be dropped at.
type Move struct {
	Slot   int
	Anchor grid.Coord
}

// Player picks and performs moves. Events go to the listener, which is the
// engine itself unless a dispatcher or recorder is placed in between.
type Player struct {
	engine   *placement.Engine
	listener input.Listener
	rng      *rand.Rand
	logger   *zap.Logger
	resets   int
}

// Option configures a Player.
type Option func(*Player)

// WithRand sets the tie-breaking source.
func WithRand(rng *rand.Rand) Option {
	return func(p *Player) {
		p.rng = rng
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Player) {
		p.logger = logger
	}
}

// WithListener routes the synthesized events through l instead of straight to
// the engine. l must deliver them to the engine in surface coordinates.
func WithListener(l input.Listener) Option {
	return func(p *Player) {
		p.listener = l
	}
}

// New creates a player for e.
func New(e *placement.Engine, opts ...Option) *Player {
	p := &Player{
		engine:   e,
		listener: e,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return p
}

// Resets returns how many times the player restarted a stuck game.
func (p *Player) Resets() int {
	return p.resets
}

// Choose returns the best legal move: the one clearing the most lines, then
// placing the most blocks. Ties are broken at random. ok is false when no
// tray piece fits.
func (p *Player) Choose() (m Move, ok bool) {
	g := p.engine.Grid()
	best, ties := -1, 0

	for _, s := range p.engine.Tray() {
		for anchor := range g.Anchors(s.Piece.Shape) {
			score := p.score(g, s, anchor)
			switch {
			case score > best:
				best, ties = score, 1
				m = Move{Slot: s.Index, Anchor: anchor}
			case score == best:
				// reservoir sampling keeps every tied move equally likely
				ties++
				if p.rng.IntN(ties) == 0 {
					m = Move{Slot: s.Index, Anchor: anchor}
				}
			}
		}
	}
	return m, best >= 0
}

func (p *Player) score(g *grid.Grid, s placement.TraySlot, anchor grid.Coord) int {
	sim := g.Clone()
	cells := sim.Place(s.Piece.Shape, anchor, s.Piece.Color)
	return grid.Scan(sim).Count()*100 + len(cells)
}

// Play performs m as a press on the tray piece, a drag to the target and a
// release there.
func (p *Player) Play(m Move) error {
	var slot *placement.TraySlot
	for _, s := range p.engine.Tray() {
		if s.Index == m.Slot {
			slot = &s
			break
		}
	}
	if slot == nil || len(slot.Blocks) == 0 {
		return fmt.Errorf("%w: %d", ErrNoSlot, m.Slot)
	}

	before := p.engine.Stats().Placements

	b := slot.Blocks[0]
	p.listener.OnPointerDown(input.Pointer{X: b.X + b.W/2, Y: b.Y + b.H/2, Button: input.ButtonLeft})

	x, y := placement.Aim(p.engine.Grid(), slot.Piece.Shape, m.Anchor)
	target := input.Pointer{X: x, Y: y, Button: input.ButtonLeft}
	p.listener.OnPointerMove(target)
	p.listener.OnPointerUp(target)

	if p.engine.Stats().Placements == before {
		return fmt.Errorf("%w: %s at %d,%d", ErrRejected, slot.Piece.Name, m.Anchor.Row, m.Anchor.Col)
	}
	return nil
}

// Step plays one move, or resets the engine when no tray piece fits. played
// is false after a reset.
func (p *Player) Step() (played bool, err error) {
	m, ok := p.Choose()
	if !ok {
		p.logger.Info("no moves left, resetting",
			zap.Int("score", p.engine.Stats().Score),
			zap.Int("placements", p.engine.Stats().Placements),
		)
		p.engine.Reset()
		p.resets++
		return false, nil
	}

	if err := p.Play(m); err != nil {
		return false, err
	}
	return true, nil
}
