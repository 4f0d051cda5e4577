package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = []struct {
	button Button
	mouse  ebiten.MouseButton
}{
	{ButtonLeft, ebiten.MouseButtonLeft},
	{ButtonRight, ebiten.MouseButtonRight},
	{ButtonMiddle, ebiten.MouseButtonMiddle},
}

// EbitenPoller turns ebiten's polled mouse state into pointer events. Call
// Poll once per Update.
type EbitenPoller struct {
	dispatcher   *Dispatcher
	lastX, lastY int
	seen         bool
}

// NewEbitenPoller creates a poller feeding d.
func NewEbitenPoller(d *Dispatcher) *EbitenPoller {
	return &EbitenPoller{dispatcher: d}
}

// Poll emits presses, then a move if the cursor changed position, then
// releases.
func (p *EbitenPoller) Poll() {
	x, y := ebiten.CursorPosition()
	cx, cy := float64(x), float64(y)

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			p.dispatcher.Dispatch(Event{Kind: Down, ClientX: cx, ClientY: cy, Button: b.button})
		}
	}

	if !p.seen || x != p.lastX || y != p.lastY {
		p.dispatcher.Dispatch(Event{Kind: Move, ClientX: cx, ClientY: cy})
		p.lastX, p.lastY = x, y
		p.seen = true
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			p.dispatcher.Dispatch(Event{Kind: Up, ClientX: cx, ClientY: cy, Button: b.button})
		}
	}
}
