// Command blockfit-stress plays the puzzle headless for a fixed duration and
// prints a markdown report of move latency, game outcomes and memory use.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/blockfit/autoplay"
	"github.com/plus3/blockfit/piece"
	"github.com/plus3/blockfit/placement"
	"github.com/plus3/blockfit/scene"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the piece bag and move tie-breaking.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("verbose", false, "Log every engine event.")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			panic(err)
		}
	}
	defer logger.Sync()

	cfg := placement.DefaultConfig()
	bag := piece.NewBag(piece.Catalog(), piece.WithRand(rand.New(rand.NewPCG(*seed, 0))))

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		StepTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	engine := placement.New(cfg, cfg.NewGrid(), scene.NewManager(), bag,
		placement.WithLogger(logger),
		placement.WithObserver(report.Record),
	)
	player := autoplay.New(engine,
		autoplay.WithRand(rand.New(rand.NewPCG(*seed, 1))),
		autoplay.WithLogger(logger),
	)
	report.Session = engine.ID().String()

	runtime.ReadMemStats(&report.MemStatsStart)

	fmt.Fprintf(os.Stderr, "Running autoplay for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			score := engine.Stats().Score

			stepStart := time.Now()
			played, err := player.Step()
			stepDuration := time.Since(stepStart)

			if err != nil {
				fmt.Fprintf(os.Stderr, "autoplay failed: %v\n", err)
				os.Exit(1)
			}
			if !played {
				report.EndGame(score)
				continue
			}
			report.StepTime.Samples = append(report.StepTime.Samples, stepDuration)
		}
	}

	report.EndGame(engine.Stats().Score)
	report.TotalTime = time.Since(startTime)
	report.StepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	if err := report.Generate(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate report: %v\n", err)
		os.Exit(1)
	}
}
