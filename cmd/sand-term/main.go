package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Brush = 1
	cfg.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("starting", "sim", cfg.Sim, "scene", cfg.Scene, "tps", cfg.TPS, "seed", cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("creating screen", "err", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("initializing screen", "err", err)
		os.Exit(1)
	}

	// Fit the grid to the terminal unless the size was given explicitly.
	termW, termH := screen.Size()
	if cfg.Scene == "" {
		if cfg.Width <= 0 {
			cfg.Width = termW
		}
		if cfg.Height <= 0 {
			cfg.Height = gridRows(termH)
		}
	}
	sim, err := cfg.NewSim()
	if err != nil {
		screen.Fini()
		logger.Error("building simulation", "err", err)
		os.Exit(1)
	}

	screen.EnableMouse()
	screen.HideCursor()

	v := newView(screen, sim, cfg.Seed, cfg.Brush)
	ticks := run(screen, v, core.NewFixedStep(cfg.TPS))
	screen.Fini()

	size := sim.Size()
	attrs := []any{"sim", sim.Name(), "w", size.W, "h", size.H, "ticks", ticks}
	if s, ok := sim.(*sand.Simulation); ok {
		attrs = append(attrs, "stats", s.Stats())
	}
	logger.Info("session ended", attrs...)
}

// run drives the event and tick loop until the user quits. It returns the
// number of ticks that ran.
func run(screen tcell.Screen, v *view, step *core.FixedStep) int {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	frame := time.NewTicker(16 * time.Millisecond)
	defer frame.Stop()

	ticks := 0
	v.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || v.handle(ev) {
				return ticks
			}
			v.draw()
		case <-frame.C:
			if step.ShouldStep() && v.advance() {
				ticks++
			}
			v.draw()
		}
	}
}
