package app

import (
	"flag"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"falling-sand/internal/sims/sand"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("sand", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-sim", "sand-dam", "-scale", "2", "-seed", "7", "-w", "80", "-h", "60", "-preset", "dunes", "-brush", "5"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Sim != "sand-dam" || cfg.Scale != 2 || cfg.Seed != 7 || cfg.Brush != 5 || cfg.TPS != 60 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	want := map[string]string{"w": "80", "h": "60", "seed": "7", "preset": "dunes"}
	if got := cfg.Options(); !maps.Equal(got, want) {
		t.Fatalf("expected options %v, got %v", want, got)
	}
}

func TestOptionsOmitZeroValues(t *testing.T) {
	if got := NewConfig().Options(); len(got) != 0 {
		t.Fatalf("expected no overrides, got %v", got)
	}
}

func TestNewSimFromRegistry(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 40, 30
	cfg.Preset = sand.PresetDam
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	if s := sim.Size(); s.W != 40 || s.H != 30 {
		t.Fatalf("unexpected size %+v", s)
	}
	if sim.(*sand.Simulation).Count(sand.KindWater) == 0 {
		t.Fatal("dam preset should have been applied on reset")
	}

	cfg.Sim = "life"
	if _, err := cfg.NewSim(); err == nil || !strings.Contains(err.Error(), "sand-dunes") {
		t.Fatalf("expected unknown sim error listing the registry, got %v", err)
	}
}

func TestNewSimFromScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	scene := "width: 12\nheight: 12\npreset: empty\nsetup:\n  - {kind: stone, x: 0, y: 11, w: 12, h: 1}\n"
	if err := os.WriteFile(path, []byte(scene), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := NewConfig()
	cfg.Scene = path
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	if got := sim.(*sand.Simulation).Count(sand.KindStone); got != 12 {
		t.Fatalf("expected 12 stone cells, got %d", got)
	}

	cfg.Width = 6
	if _, err := cfg.NewSim(); err == nil {
		t.Fatal("shrinking the grid below the setup fills should fail validation")
	}
}
