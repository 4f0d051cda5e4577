// Package input carries pointer events from a host surface to the listeners
// that react to them.
package input

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Pointer is a pointer position in surface-local coordinates.
type Pointer struct {
	X, Y   float64
	Button Button
}

// Listener reacts to pointer events.
type Listener interface {
	OnPointerDown(p Pointer)
	OnPointerMove(p Pointer)
	OnPointerUp(p Pointer)
}

// Kind is the phase of a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a raw pointer event in client coordinates.
type Event struct {
	Kind             Kind
	ClientX, ClientY float64
	Button           Button
}

// Dispatcher translates client coordinates into surface-local ones and fans
// events out to listeners in registration order.
type Dispatcher struct {
	originX, originY float64
	listeners        []Listener
	blocked          func() bool
}

// NewDispatcher creates a dispatcher for a surface whose top-left corner sits
// at (originX, originY) in client coordinates.
func NewDispatcher(originX, originY float64) *Dispatcher {
	return &Dispatcher{originX: originX, originY: originY}
}

// Register adds a listener.
func (d *Dispatcher) Register(l Listener) {
	d.listeners = append(d.listeners, l)
}

// SetOrigin moves the surface origin, for example after a window resize.
func (d *Dispatcher) SetOrigin(x, y float64) {
	d.originX, d.originY = x, y
}

// BlockDownWhen drops pointer-down events while fn returns true. Moves and
// releases still flow so an in-progress drag can finish.
func (d *Dispatcher) BlockDownWhen(fn func() bool) {
	d.blocked = fn
}

// Dispatch delivers e to every listener.
func (d *Dispatcher) Dispatch(e Event) {
	if e.Kind == Down && d.blocked != nil && d.blocked() {
		return
	}

	p := Pointer{X: e.ClientX - d.originX, Y: e.ClientY - d.originY, Button: e.Button}
	for _, l := range d.listeners {
		switch e.Kind {
		case Down:
			l.OnPointerDown(p)
		case Move:
			l.OnPointerMove(p)
		case Up:
			l.OnPointerUp(p)
		}
	}
}
