// Package debugui provides Dear ImGui inspection windows for a running game.
// Windows are registered as render items and drawn once per frame between the
// backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// UI is an ordered set of render items.
type UI struct {
	items []Item
	input InputState
}

// New creates an empty UI.
func New() *UI {
	return &UI{}
}

// Add registers a render function. Items render in registration order.
func (u *UI) Add(name string, render func()) {
	u.items = append(u.items, Item{Name: name, Render: render})
}

// Items returns the registered items.
func (u *UI) Items() []Item {
	return u.items
}

// Render refreshes the input state and runs every item. It must be called
// inside an ImGui frame.
func (u *UI) Render() {
	io := imgui.CurrentIO()
	u.input.WantCaptureMouse = io.WantCaptureMouse()
	u.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range u.items {
		item.Render()
	}
}

// Input returns the input state captured by the last Render.
func (u *UI) Input() InputState {
	return u.input
}

// WantCaptureMouse reports whether the last frame's windows were under the
// pointer. Hosts use it to keep clicks on a window from reaching the game.
func (u *UI) WantCaptureMouse() bool {
	return u.input.WantCaptureMouse
}
