package debugui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfit/debugui"
)

func TestItemsKeepRegistrationOrder(t *testing.T) {
	ui := debugui.New()
	ui.Add("engine", func() {})
	ui.Add("grid", func() {})
	ui.Add("bag", func() {})

	var names []string
	for _, item := range ui.Items() {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"engine", "grid", "bag"}, names)
	assert.False(t, ui.WantCaptureMouse())
}
