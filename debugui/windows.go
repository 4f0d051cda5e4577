package debugui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfit/grid"
	"github.com/plus3/blockfit/piece"
	"github.com/plus3/blockfit/placement"
	"github.com/plus3/blockfit/scene"
)

func colorVec(c color.NRGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255.0, float32(c.G)/255.0, float32(c.B)/255.0, 1.0)
}

// EngineWindow shows the session, score, tray and drag state, with a button
// to restart the game.
func EngineWindow(e *placement.Engine) func() {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(300, 320), imgui.CondOnce)

		if imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
			stats := e.Stats()
			imgui.Text(fmt.Sprintf("Session: %s", e.ID()))
			imgui.Text(fmt.Sprintf("Score: %d", stats.Score))
			imgui.Text(fmt.Sprintf("Placements: %d (%d blocks)", stats.Placements, stats.BlocksPlaced))
			imgui.Text(fmt.Sprintf("Lines: %d rows | %d cols", stats.RowsCleared, stats.ColsCleared))
			imgui.Text(fmt.Sprintf("Rollbacks: %d", stats.Rollbacks))
			if e.Stuck() {
				imgui.TextColored(imgui.NewVec4(0.9, 0.2, 0.2, 1.0), "No moves left")
			}

			imgui.Separator()
			imgui.Text("Tray:")
			imgui.Indent()
			for _, s := range e.Tray() {
				imgui.PushStyleColorVec4(imgui.ColText, colorVec(s.Piece.Color))
				imgui.Text(fmt.Sprintf("■ %d: %s", s.Index, s.Piece.Name))
				imgui.PopStyleColor()
				imgui.SameLine()
				imgui.Text(fmt.Sprintf("(%d blocks)", len(s.Blocks)))
			}
			imgui.Unindent()

			imgui.Separator()
			if d, ok := e.Dragging(); ok {
				imgui.Text(fmt.Sprintf("Dragging %s from slot %d", d.Piece, d.Slot))
				imgui.Text(fmt.Sprintf("Start: %.0f, %.0f", d.StartX, d.StartY))
				if d.Hovering {
					imgui.Text(fmt.Sprintf("Hover: row %d col %d", d.Hover.Row, d.Hover.Col))
				} else {
					imgui.Text("Hover: none")
				}
			} else {
				imgui.Text("Idle")
			}

			imgui.Separator()
			if imgui.Button("Reset") {
				e.Reset()
			}
		}
		imgui.End()
	}
}

// occupancy renders the grid as text, one string per row: '#' for a filled
// cell and '.' for an empty one.
func occupancy(g *grid.Grid) []string {
	rows := make([]string, g.Rows())
	var sb strings.Builder
	for row := range rows {
		sb.Reset()
		for col := 0; col < g.Cols(); col++ {
			if g.Cell(row, col).Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

// GridWindow shows the occupancy of g as a table.
func GridWindow(g *grid.Grid) func() {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(300, 300), imgui.CondOnce)

		if imgui.BeginV("Grid", nil, imgui.WindowFlagsNone) {
			imgui.Text(fmt.Sprintf("Filled: %d / %d", g.Filled(), g.Rows()*g.Cols()))

			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
			if imgui.BeginTableV("GridTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("Row")
				imgui.TableSetupColumn("Cells")
				imgui.TableHeadersRow()

				for row, line := range occupancy(g) {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", row))
					imgui.TableNextColumn()
					imgui.Text(line)
				}
				imgui.EndTable()
			}
		}
		imgui.End()
	}
}

// BagWindow lists the pieces left in the current bag cycle, next first.
func BagWindow(b *piece.Bag) func() {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(970, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(300, 400), imgui.CondOnce)

		if imgui.BeginV("Bag", nil, imgui.WindowFlagsNone) {
			imgui.Text(fmt.Sprintf("Cycle: %d", b.Cycles()))
			imgui.Text(fmt.Sprintf("Remaining: %d", b.Remaining()))
			imgui.Separator()

			if imgui.TreeNodeStr("Upcoming") {
				for _, p := range b.Peek() {
					imgui.PushStyleColorVec4(imgui.ColText, colorVec(p.Color))
					imgui.BulletText(p.Name)
					imgui.PopStyleColor()
				}
				imgui.TreePop()
			}
		}
		imgui.End()
	}
}

// FrameStats tracks frame times and plots them with the scene object count.
type FrameStats struct {
	surface   *scene.Manager
	history   []float32
	index     int
	lastFrame time.Time
}

// NewFrameStats keeps historyFrames samples.
func NewFrameStats(surface *scene.Manager, historyFrames int) *FrameStats {
	return &FrameStats{
		surface:   surface,
		history:   make([]float32, historyFrames),
		lastFrame: time.Now(),
	}
}

// Tick records the time since the previous tick.
func (fs *FrameStats) Tick() {
	now := time.Now()
	fs.record(float32(now.Sub(fs.lastFrame).Seconds() * 1000))
	fs.lastFrame = now
}

func (fs *FrameStats) record(ms float32) {
	fs.history[fs.index] = ms
	fs.index = (fs.index + 1) % len(fs.history)
}

// Average returns the mean frame time in milliseconds over the history.
func (fs *FrameStats) Average() float32 {
	var sum float32
	for _, ms := range fs.history {
		sum += ms
	}
	return sum / float32(len(fs.history))
}

// Render draws the window.
func (fs *FrameStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(970, 420), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 180), imgui.CondOnce)

	if imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		avg := fs.Average()
		if avg > 0 {
			imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
		}
		imgui.Text(fmt.Sprintf("Scene Objects: %d", fs.surface.Len()))

		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		imgui.PlotLinesFloatPtr("##frametime", &fs.history[0], int32(len(fs.history)))
	}
	imgui.End()
}
