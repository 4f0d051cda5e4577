// Package ebiten hosts the debug UI on the Ebiten Dear ImGui backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfit/debugui"
)

// Overlay wraps the Ebiten Dear ImGui backend and renders a debugui.UI on top
// of the game each frame.
type Overlay struct {
	*ebitenbackend.EbitenBackend
	ui *debugui.UI
}

// NewOverlay creates the backend window and disables imgui.ini persistence.
func NewOverlay(title string, width, height int, ui *debugui.UI) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{EbitenBackend: backend, ui: ui}
}

// Update builds this frame's windows. Call it once from the game's Update.
func (o *Overlay) Update() {
	o.BeginFrame()
	o.ui.Render()
	o.EndFrame()
}

// Draw renders the windows built by the last Update onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.EbitenBackend.Draw(screen)
}
