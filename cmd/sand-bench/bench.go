package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"falling-sand/internal/sims/sand"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

type scenario struct {
	preset string
	seed   int64
}

// result summarizes one scenario run. Field tags name the CSV columns.
type result struct {
	Preset     string  `csv:"preset"`
	Seed       int64   `csv:"seed"`
	Steps      int     `csv:"steps"`
	SettleTick int     `csv:"settle_tick"`
	MeanMoves  float64 `csv:"mean_moves"`
	StdMoves   float64 `csv:"std_moves"`
	PeakMoves  int     `csv:"peak_moves"`
	Particles  int     `csv:"particles"`
	Conserved  bool    `csv:"conserved"`
	ElapsedMS  int64   `csv:"elapsed_ms"`
}

func scenarios(presets []string, seeds int) []scenario {
	out := make([]scenario, 0, len(presets)*seeds)
	for _, preset := range presets {
		for seed := int64(1); seed <= int64(seeds); seed++ {
			out = append(out, scenario{preset: preset, seed: seed})
		}
	}
	return out
}

// runScenario resets a fresh simulation for the scenario and ticks it. The
// settle tick is the first tick in which nothing moved, or -1.
func runScenario(base sand.Config, sc scenario, steps int) result {
	cfg := base
	cfg.Preset = sc.preset
	cfg.Seed = sc.seed
	sim := sand.NewWithConfig(cfg)
	sim.Reset(sc.seed)
	before := sim.Stats().Total()

	start := time.Now()
	moves := make([]float64, 0, steps)
	res := result{Preset: sc.preset, Seed: sc.seed, Steps: steps, SettleTick: -1}
	for i := 0; i < steps; i++ {
		sim.Tick()
		moved := sim.Moved()
		moves = append(moves, float64(moved))
		res.PeakMoves = max(res.PeakMoves, moved)
		if moved == 0 && res.SettleTick < 0 {
			res.SettleTick = i + 1
		}
	}
	res.ElapsedMS = time.Since(start).Milliseconds()
	switch {
	case len(moves) > 1:
		res.MeanMoves, res.StdMoves = stat.MeanStdDev(moves, nil)
	case len(moves) == 1:
		res.MeanMoves = moves[0]
	}
	res.Particles = sim.Stats().Total()
	res.Conserved = res.Particles == before
	return res
}

// runAll fans scenarios out over a worker pool and returns the results sorted
// by preset and seed.
func runAll(base sand.Config, list []scenario, steps, workers int, progress func(result)) []result {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan scenario)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range list {
			jobs <- sc
		}
		close(jobs)
	}()

	all := make([]result, 0, len(list))
	for res := range results {
		if progress != nil {
			progress(res)
		}
		all = append(all, res)
	}
	slices.SortFunc(all, func(a, b result) int {
		return cmp.Or(cmp.Compare(a.Preset, b.Preset), cmp.Compare(a.Seed, b.Seed))
	})
	return all
}

// presetSummary aggregates the runs of one preset.
type presetSummary struct {
	Preset      string
	Runs        int
	Settled     int
	MeanSettle  float64
	MeanMoves   float64
	StdMoves    float64
	AllConserve bool
}

func summarize(all []result) []presetSummary {
	var out []presetSummary
	for i := 0; i < len(all); {
		j := i
		for j < len(all) && all[j].Preset == all[i].Preset {
			j++
		}
		group := all[i:j]
		s := presetSummary{Preset: all[i].Preset, Runs: len(group), AllConserve: true}
		var settles, means []float64
		for _, r := range group {
			if r.SettleTick >= 0 {
				settles = append(settles, float64(r.SettleTick))
			}
			means = append(means, r.MeanMoves)
			s.AllConserve = s.AllConserve && r.Conserved
		}
		s.Settled = len(settles)
		if len(settles) > 0 {
			s.MeanSettle = stat.Mean(settles, nil)
		}
		if len(means) > 1 {
			s.MeanMoves, s.StdMoves = stat.MeanStdDev(means, nil)
		} else {
			s.MeanMoves = means[0]
		}
		out = append(out, s)
		i = j
	}
	return out
}

func printTable(w io.Writer, all []result, summaries []presetSummary) {
	fmt.Fprintf(w, "%-10s %6s %7s %10s %9s %6s %9s %5s\n",
		"preset", "seed", "settle", "mean-move", "std-move", "peak", "particles", "ok")
	for _, r := range all {
		fmt.Fprintf(w, "%-10s %6d %7d %10.2f %9.2f %6d %9d %5t\n",
			r.Preset, r.Seed, r.SettleTick, r.MeanMoves, r.StdMoves, r.PeakMoves, r.Particles, r.Conserved)
	}
	fmt.Fprintln(w)
	for _, s := range summaries {
		fmt.Fprintf(w, "%-10s runs=%d settled=%d mean_settle=%.1f moves=%.2f±%.2f conserved=%t\n",
			s.Preset, s.Runs, s.Settled, s.MeanSettle, s.MeanMoves, s.StdMoves, s.AllConserve)
	}
}

func writeCSV(w io.Writer, all []result) error {
	if err := gocsv.Marshal(&all, w); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
