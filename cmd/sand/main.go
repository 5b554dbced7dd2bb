//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"falling-sand/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("sand: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.Brush)
	size := sim.Size()

	ebiten.SetWindowTitle("falling-sand: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
