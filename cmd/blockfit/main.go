// Command blockfit runs the block placement puzzle in an Ebiten window.
package main

import (
	"flag"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/blockfit/autoplay"
	"github.com/plus3/blockfit/debugui"
	debugui_ebiten "github.com/plus3/blockfit/debugui/ebiten"
	"github.com/plus3/blockfit/input"
	"github.com/plus3/blockfit/piece"
	"github.com/plus3/blockfit/placement"
	"github.com/plus3/blockfit/scene"
)

func main() {
	cfg := placement.DefaultConfig()
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Number of grid rows.")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Number of grid columns.")
	flag.Float64Var(&cfg.CellSize, "cell", cfg.CellSize, "Grid cell size in pixels.")
	flag.Float64Var(&cfg.DeadZone, "dead-zone", cfg.DeadZone, "Pixels the pointer must travel before a drag tracks the grid.")
	flag.Float64Var(&cfg.LiftAlpha, "lift-alpha", cfg.LiftAlpha, "Opacity of a lifted piece, in (0, 1].")
	seed := flag.Uint64("seed", 0, "Seed for the piece bag. 0 picks a random seed.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector.")
	verbose := flag.Bool("verbose", false, "Log engine events at debug level.")
	autoplayEvery := flag.Int("autoplay", 0, "Let the computer play one move every N frames. 0 disables.")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	bag := piece.NewBag(piece.Catalog(), piece.WithRand(rand.New(rand.NewPCG(*seed, *seed))))

	surface := scene.NewManager()
	engine := placement.New(cfg, cfg.NewGrid(), surface, bag, placement.WithLogger(logger))
	logger.Info("game started",
		zap.String("session", engine.ID().String()),
		zap.Uint64("seed", *seed),
	)

	dispatcher := input.NewDispatcher(0, 0)
	dispatcher.Register(engine)

	game := &Game{
		cfg:     cfg,
		engine:  engine,
		surface: surface,
		poller:  input.NewEbitenPoller(dispatcher),
		logger:  logger,
	}

	if *autoplayEvery > 0 {
		game.player = autoplay.New(engine,
			autoplay.WithListener(dispatcherListener{dispatcher}),
			autoplay.WithLogger(logger),
		)
		game.autoplayEvery = *autoplayEvery
	}

	width, height := int(cfg.ScreenWidth), int(cfg.ScreenHeight)
	if *debug {
		ui := debugui.New()
		game.frames = debugui.NewFrameStats(surface, 120)
		ui.Add("engine", debugui.EngineWindow(engine))
		ui.Add("grid", debugui.GridWindow(engine.Grid()))
		ui.Add("bag", debugui.BagWindow(bag))
		ui.Add("performance", game.frames.Render)

		game.overlay = debugui_ebiten.NewOverlay("blockfit", width, height, ui)
		dispatcher.BlockDownWhen(ui.WantCaptureMouse)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("blockfit")
	}

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

// dispatcherListener feeds synthesized pointer events through the dispatcher
// so autoplay goes through the same path as the mouse.
type dispatcherListener struct {
	d *input.Dispatcher
}

func (l dispatcherListener) OnPointerDown(p input.Pointer) {
	l.d.Dispatch(input.Event{Kind: input.Down, ClientX: p.X, ClientY: p.Y, Button: p.Button})
}

func (l dispatcherListener) OnPointerMove(p input.Pointer) {
	l.d.Dispatch(input.Event{Kind: input.Move, ClientX: p.X, ClientY: p.Y, Button: p.Button})
}

func (l dispatcherListener) OnPointerUp(p input.Pointer) {
	l.d.Dispatch(input.Event{Kind: input.Up, ClientX: p.X, ClientY: p.Y, Button: p.Button})
}
