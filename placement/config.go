package placement

import (
	"errors"
	"fmt"

	"github.com/plus3/blockfit/grid"
)

var (
	ErrInvalidGrid    = errors.New("invalid grid configuration")
	ErrInvalidPreview = errors.New("invalid preview configuration")
	ErrInvalidTray    = errors.New("invalid tray configuration")
)

// Config holds the board geometry and drag tuning.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64

	Rows     int
	Cols     int
	CellSize float64

	PreviewCellSize float64
	PreviewRows     int
	PreviewCols     int
	PreviewSpacing  float64

	TraySlots int

	// DeadZone is how far, in pixels on either axis, the pointer must travel
	// from the pickup point before a drag starts tracking the grid.
	DeadZone float64

	// LiftAlpha is the opacity of a lifted or snapped piece, in (0, 1].
	LiftAlpha float64

	// VerticalOffset raises the grid and tray above the screen's center line.
	VerticalOffset float64
}

// DefaultConfig returns the standard 10x10 board on a 1280x720 surface.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:     1280,
		ScreenHeight:    720,
		Rows:            10,
		Cols:            10,
		CellSize:        50,
		PreviewCellSize: 25,
		PreviewRows:     5,
		PreviewCols:     5,
		PreviewSpacing:  20,
		TraySlots:       3,
		DeadZone:        5,
		LiftAlpha:       0.5,
		VerticalOffset:  50,
	}
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 || c.CellSize <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d cell=%v", ErrInvalidGrid, c.Rows, c.Cols, c.CellSize)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen %vx%v", ErrInvalidGrid, c.ScreenWidth, c.ScreenHeight)
	}
	if c.PreviewCellSize <= 0 || c.PreviewRows <= 0 || c.PreviewCols <= 0 || c.PreviewSpacing < 0 {
		return fmt.Errorf("%w: cell=%v rows=%d cols=%d spacing=%v",
			ErrInvalidPreview, c.PreviewCellSize, c.PreviewRows, c.PreviewCols, c.PreviewSpacing)
	}
	if c.LiftAlpha <= 0 || c.LiftAlpha > 1 {
		return fmt.Errorf("%w: lift alpha %v outside (0, 1]", ErrInvalidPreview, c.LiftAlpha)
	}
	if c.TraySlots <= 0 {
		return fmt.Errorf("%w: %d slots", ErrInvalidTray, c.TraySlots)
	}
	if c.DeadZone < 0 {
		return fmt.Errorf("%w: negative dead zone %v", ErrInvalidTray, c.DeadZone)
	}
	return nil
}

// GridOrigin returns the top-left pixel of the grid, centered horizontally and
// raised by VerticalOffset.
func (c Config) GridOrigin() (x, y float64) {
	x = (c.ScreenWidth - float64(c.Cols)*c.CellSize) / 2
	y = (c.ScreenHeight-float64(c.Rows)*c.CellSize)/2 - c.VerticalOffset
	return x, y
}

// NewGrid creates an empty grid placed according to the layout.
func (c Config) NewGrid() *grid.Grid {
	x, y := c.GridOrigin()
	return grid.New(c.Rows, c.Cols, x, y, c.CellSize)
}

// PreviewArea returns the pixel rectangle of tray slot i. The slots sit in a
// centered row directly below the grid.
func (c Config) PreviewArea(i int) grid.Rect {
	areaW := c.PreviewCellSize * float64(c.PreviewCols)
	areaH := c.PreviewCellSize * float64(c.PreviewRows)
	total := areaW*float64(c.TraySlots) + c.PreviewSpacing*float64(c.TraySlots-1)

	return grid.Rect{
		X: (c.ScreenWidth-total)/2 + float64(i)*(areaW+c.PreviewSpacing),
		Y: (c.ScreenHeight+float64(c.Rows)*c.CellSize)/2 - c.VerticalOffset,
		W: areaW,
		H: areaH,
	}
}
