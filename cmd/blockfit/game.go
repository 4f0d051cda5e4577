package main

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/plus3/blockfit/autoplay"
	"github.com/plus3/blockfit/debugui"
	debugui_ebiten "github.com/plus3/blockfit/debugui/ebiten"
	"github.com/plus3/blockfit/input"
	"github.com/plus3/blockfit/placement"
	"github.com/plus3/blockfit/scene"
)

var (
	backgroundColor = color.RGBA{40, 42, 54, 255}
	gridLineColor   = color.RGBA{200, 200, 200, 255}
)

// Game implements ebiten.Game.
type Game struct {
	cfg     placement.Config
	engine  *placement.Engine
	surface *scene.Manager
	poller  *input.EbitenPoller
	logger  *zap.Logger

	overlay *debugui_ebiten.Overlay
	frames  *debugui.FrameStats

	player        *autoplay.Player
	autoplayEvery int
	tick          int
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
	}

	if g.overlay != nil {
		g.frames.Tick()
		g.overlay.Update()
	}

	g.poller.Poll()

	if _, dragging := g.engine.Dragging(); dragging {
		return nil
	}

	g.tick++
	if g.player != nil {
		if g.tick%g.autoplayEvery == 0 {
			if _, err := g.player.Step(); err != nil && !errors.Is(err, autoplay.ErrRejected) {
				return err
			}
		}
		return nil
	}

	if g.engine.Stuck() {
		g.logger.Info("no moves left",
			zap.Int("score", g.engine.Stats().Score),
			zap.Int("placements", g.engine.Stats().Placements),
		)
		g.engine.Reset()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	board := g.engine.Grid()
	for _, cell := range board.Snapshot() {
		r := board.CellRect(cell.Row, cell.Col)
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		vector.DrawFilledRect(screen, x, y, w, h, cell.Color, false)
		vector.StrokeRect(screen, x, y, w, h, 1, gridLineColor, false)
	}

	for _, obj := range g.surface.Objects() {
		if !obj.ShouldRender {
			continue
		}
		x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
		vector.DrawFilledRect(screen, x, y, w, h, obj.Fill, false)
		if obj.BorderWidth > 0 {
			vector.StrokeRect(screen, x, y, w, h, float32(obj.BorderWidth), obj.Border, false)
		}
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}
