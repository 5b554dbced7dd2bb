package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"falling-sand/internal/sims/sand"
)

func main() {
	presetList := flag.String("presets", "hourglass,dam,dunes", "comma separated presets to run")
	seeds := flag.Int("seeds", 8, "seeds per preset (1..n)")
	steps := flag.Int("steps", 600, "ticks to simulate per scenario")
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 96, "grid height")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	scene := flag.String("config", "", "YAML scene file layered over the embedded defaults")
	out := flag.String("out", "", "CSV file for per-scenario results")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	base, err := sand.LoadConfig(*scene)
	if err != nil {
		logger.Error("loading config", "err", err)
		os.Exit(1)
	}
	if *scene == "" {
		base.Width, base.Height = *width, *height
	}

	presets := strings.Split(*presetList, ",")
	for i, p := range presets {
		presets[i] = strings.TrimSpace(p)
		check := base
		check.Preset = presets[i]
		if err := check.Validate(); err != nil {
			logger.Error("invalid scenario", "preset", presets[i], "err", err)
			os.Exit(1)
		}
	}

	list := scenarios(presets, *seeds)
	logger.Info("sweeping", "scenarios", len(list), "workers", *workers, "steps", *steps,
		"w", base.Width, "h", base.Height)

	start := time.Now()
	all := runAll(base, list, *steps, *workers, func(r result) {
		logger.Debug("scenario done", "preset", r.Preset, "seed", r.Seed,
			"settle_tick", r.SettleTick, "elapsed_ms", r.ElapsedMS)
		if !r.Conserved {
			logger.Warn("particle count changed", "preset", r.Preset, "seed", r.Seed)
		}
	})
	logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))

	printTable(os.Stdout, all, summarize(all))

	if *out == "" {
		return
	}
	f, err := os.Create(*out)
	if err != nil {
		logger.Error("creating output", "path", *out, "err", err)
		os.Exit(1)
	}
	err = writeCSV(f, all)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("writing output", "path", *out, "err", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "wrote %d rows to %s\n", len(all), *out)
}
