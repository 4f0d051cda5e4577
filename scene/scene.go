// Package scene is an in-memory object surface: it creates rectangle
// handles with mutable geometry and fill, and keeps them in a slot storage so
// a host can draw and hit-test them each frame.
package scene

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/kamstrup/intmap"
)

// Layers used by the game. Higher layers are drawn later.
const (
	LayerGrid = iota
	LayerTray
	LayerCursor
)

// Style is the initial look of a rectangle.
type Style struct {
	Fill        color.NRGBA
	Border      color.NRGBA
	BorderWidth float64
	Layer       int
}

// Rect is a live rectangle handle. Geometry, fill and ShouldRender may be
// mutated directly; Kill removes it from its manager.
type Rect struct {
	X, Y, W, H   float64
	Fill         color.NRGBA
	Border       color.NRGBA
	BorderWidth  float64
	Layer        int
	ShouldRender bool

	id  uint32
	mgr *Manager
}

// ID returns the handle id, or 0 once the rectangle has been killed.
func (r *Rect) ID() uint32 {
	return r.id
}

// Alive reports whether the rectangle is still owned by a manager.
func (r *Rect) Alive() bool {
	return r.id != 0
}

// InBounds reports whether the point lies inside the rectangle. The left and
// top edges are inclusive, the right and bottom edges exclusive.
func (r *Rect) InBounds(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Kill destroys the rectangle. Killing twice is a no-op.
func (r *Rect) Kill() {
	if r.mgr == nil {
		return
	}
	r.mgr.remove(r)
}

const blockSize = 64

// Manager owns every live rectangle. Slots are allocated in fixed-size blocks
// and reused after Kill, so handle pointers stay stable for their lifetime.
type Manager struct {
	blocks    []*[blockSize]*Rect
	freeSlots []int
	nextSlot  int
	nextID    uint32
	slots     *intmap.Map[uint32, int]
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		slots: intmap.New[uint32, int](256),
	}
}

// Rectangle creates a visible rectangle.
func (m *Manager) Rectangle(x, y, w, h float64, style Style) *Rect {
	m.nextID++
	r := &Rect{
		X:            x,
		Y:            y,
		W:            w,
		H:            h,
		Fill:         style.Fill,
		Border:       style.Border,
		BorderWidth:  style.BorderWidth,
		Layer:        style.Layer,
		ShouldRender: true,
		id:           m.nextID,
		mgr:          m,
	}

	slot := m.allocate()
	m.blocks[slot/blockSize][slot%blockSize] = r
	m.slots.Put(r.id, slot)
	return r
}

func (m *Manager) allocate() int {
	if n := len(m.freeSlots); n > 0 {
		slot := m.freeSlots[n-1]
		m.freeSlots = m.freeSlots[:n-1]
		return slot
	}

	slot := m.nextSlot
	m.nextSlot++
	if slot/blockSize >= len(m.blocks) {
		m.blocks = append(m.blocks, new([blockSize]*Rect))
	}
	return slot
}

func (m *Manager) remove(r *Rect) {
	slot, ok := m.slots.Get(r.id)
	if !ok {
		return
	}

	m.blocks[slot/blockSize][slot%blockSize] = nil
	m.freeSlots = append(m.freeSlots, slot)
	m.slots.Del(r.id)

	r.id = 0
	r.mgr = nil
}

// Get returns the live rectangle with the given id, or nil.
func (m *Manager) Get(id uint32) *Rect {
	slot, ok := m.slots.Get(id)
	if !ok {
		return nil
	}
	return m.blocks[slot/blockSize][slot%blockSize]
}

// Len returns the number of live rectangles.
func (m *Manager) Len() int {
	return m.slots.Len()
}

// Objects returns every live rectangle in draw order: by layer, then by
// creation order.
func (m *Manager) Objects() []*Rect {
	out := make([]*Rect, 0, m.Len())
	for slot := 0; slot < m.nextSlot; slot++ {
		if r := m.blocks[slot/blockSize][slot%blockSize]; r != nil {
			out = append(out, r)
		}
	}

	slices.SortFunc(out, func(a, b *Rect) int {
		if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	return out
}

// HitTest returns every live rectangle containing the point, topmost first.
// Hidden rectangles are included; callers decide whether they count.
func (m *Manager) HitTest(x, y float64) []*Rect {
	objects := m.Objects()
	var hits []*Rect
	for i := len(objects) - 1; i >= 0; i-- {
		if objects[i].InBounds(x, y) {
			hits = append(hits, objects[i])
		}
	}
	return hits
}

// Clear kills every live rectangle.
func (m *Manager) Clear() {
	for _, r := range m.Objects() {
		r.Kill()
	}
	m.freeSlots = m.freeSlots[:0]
	m.nextSlot = 0
}
