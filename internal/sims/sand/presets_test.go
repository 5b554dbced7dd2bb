package sand

import (
	"slices"
	"testing"

	"falling-sand/internal/core"
)

func TestPresetsDeterministic(t *testing.T) {
	for _, name := range PresetNames() {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 64, 48
		cfg.Preset = name
		sim := NewWithConfig(cfg)

		sim.Reset(5)
		first := slices.Clone(sim.Grid().Cells())
		for i := 0; i < 10; i++ {
			sim.Tick()
		}
		sim.Reset(5)
		if !slices.Equal(first, sim.Grid().Cells()) {
			t.Fatalf("preset %s: reset with the same seed differs", name)
		}
		if sim.Ticks() != 0 || sim.TickVisit() {
			t.Fatalf("preset %s: reset should restart the tick state", name)
		}
	}
}

func TestPresetContents(t *testing.T) {
	cases := map[string][]Kind{
		PresetHourglass: {KindSand, KindWall},
		PresetDam:       {KindStone, KindWater, KindSand},
		PresetDunes:     {KindStone, KindSand, KindWater},
	}
	for name, kinds := range cases {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 96, 64
		cfg.Preset = name
		sim := NewWithConfig(cfg)
		sim.Reset(0)
		for _, k := range kinds {
			if sim.Count(k) == 0 {
				t.Fatalf("preset %s should contain %s", name, k)
			}
		}
	}

	empty := New(16, 16)
	empty.Reset(3)
	if n := len(empty.Counts()); n != 0 {
		t.Fatalf("empty preset placed %d kinds", n)
	}
}

func TestDunesDependOnSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	cfg.Preset = PresetDunes
	sim := NewWithConfig(cfg)
	sim.Reset(1)
	a := slices.Clone(sim.Grid().Cells())
	sim.Reset(2)
	if slices.Equal(a, sim.Grid().Cells()) {
		t.Fatal("different seeds should produce different terrain")
	}
}

func TestPresetsOnTinyGrids(t *testing.T) {
	for _, name := range PresetNames() {
		for _, size := range []core.Vector{core.Vec(1, 1), core.Vec(2, 3), core.Vec(5, 2)} {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height = size.X, size.Y
			cfg.Preset = name
			sim := NewWithConfig(cfg)
			sim.Reset(1)
			sim.Tick()
		}
	}
}

func TestRegisteredPresets(t *testing.T) {
	factories := core.Sims()
	for _, name := range []string{"sand", "sand-dam", "sand-dunes", "sand-hourglass", "sand-empty"} {
		f, ok := factories[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		sim := f(map[string]string{"w": "32", "h": "24"})
		if sim.Size() != (core.Size{W: 32, H: 24}) {
			t.Fatalf("%s: size %+v", name, sim.Size())
		}
	}
	sim := factories["sand-dam"](nil).(*Simulation)
	if sim.Config().Preset != PresetDam {
		t.Fatalf("sand-dam built preset %q", sim.Config().Preset)
	}
}
