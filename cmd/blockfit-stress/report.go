package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfit/placement"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Session  string

	// Results
	Games          int
	BestScore      int
	TotalScore     int
	Placements     int
	BlocksPlaced   int
	RowsCleared    int
	ColsCleared    int
	TotalTime      time.Duration
	StepTime       Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Record is a placement observer.
func (r *Report) Record(p placement.Placement) {
	r.Placements++
	r.BlocksPlaced += len(p.Cells)
	r.RowsCleared += len(p.Lines.Rows)
	r.ColsCleared += len(p.Lines.Cols)
}

// EndGame closes out a game that finished with score.
func (r *Report) EndGame(score int) {
	r.Games++
	r.TotalScore += score
	r.BestScore = max(r.BestScore, score)
}

// AvgScore returns the mean final score per game.
func (r *Report) AvgScore() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.Games)
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
	s.P99 = percentile(s.Samples, 0.99)
}

func percentile(samples []time.Duration, q float64) time.Duration {
	sorted := append([]time.Duration(nil), samples...)
	slices.Sort(sorted)
	return sorted[int(float64(len(sorted)-1)*q)]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfit Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Session:** {{.Session}}

## Game Results
- **Games Played:** {{.Games}}
- **Best Score:** {{.BestScore}}
- **Average Score:** {{printf "%.1f" .AvgScore}}
- **Placements:** {{.Placements}} ({{.BlocksPlaced}} blocks)
- **Lines Cleared:** {{.RowsCleared}} rows, {{.ColsCleared}} cols

## Performance Results
- **Total Moves:** {{len .StepTime.Samples}}
- **Total Test Time:** {{.TotalTime}}
- **Move Time:**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}
  - **P99:** {{.StepTime.P99}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns .MemStatsEnd.PauseTotalNs}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
