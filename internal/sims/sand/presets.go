package sand

import (
	"sort"

	"falling-sand/internal/core"

	"github.com/ojrac/opensimplex-go"
)

// Preset names accepted in Config.Preset.
const (
	PresetEmpty     = "empty"
	PresetHourglass = "hourglass"
	PresetDam       = "dam"
	PresetDunes     = "dunes"
)

// Preset paints an initial scene into a freshly cleared simulation.
type Preset func(s *Simulation, rng *core.RNG)

var presets = map[string]Preset{
	PresetEmpty:     func(*Simulation, *core.RNG) {},
	PresetHourglass: hourglass,
	PresetDam:       dam,
	PresetDunes:     dunes,
}

// PresetNames lists the known presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fillClipped fills the part of the rectangle that lies inside the grid.
func (s *Simulation) fillClipped(origin, size core.Vector, k Kind) {
	x0, y0 := max(origin.X, 0), max(origin.Y, 0)
	x1 := min(origin.X+size.X, s.grid.Width())
	y1 := min(origin.Y+size.Y, s.grid.Height())
	if x1 <= x0 || y1 <= y0 {
		return
	}
	_ = s.FillKind(core.Vec(x0, y0), core.Vec(x1-x0, y1-y0), k)
}

// hourglass drops a block of sand into a wall funnel.
func hourglass(s *Simulation, _ *core.RNG) {
	w, h := s.grid.Width(), s.grid.Height()
	s.fillClipped(core.Vec(w/4, h/20), core.Vec(w/2, h/4), KindSand)

	top := h * 2 / 5
	rows := max(h/5, 1)
	neck := max(w/64, 1)
	span := w/2 - w/8 - neck
	thick := span/rows + 2
	for i := 0; i <= rows; i++ {
		left := w/8 + i*span/rows
		right := w - left - thick
		s.fillClipped(core.Vec(left, top+i), core.Vec(thick, 1), KindWall)
		s.fillClipped(core.Vec(right, top+i), core.Vec(thick, 1), KindWall)
	}
}

// dam holds a pool of water behind a stone column and drops sand beside it.
func dam(s *Simulation, _ *core.RNG) {
	w, h := s.grid.Width(), s.grid.Height()
	col := w / 3
	thick := max(w/40, 1)
	s.fillClipped(core.Vec(col, h/3), core.Vec(thick, h-h/3), KindStone)
	s.fillClipped(core.Vec(0, h/3+h/10), core.Vec(col, h-h/3-h/10), KindWater)
	s.fillClipped(core.Vec(w*3/5, 0), core.Vec(w/5, h/7), KindSand)
}

// dunes lays down an OpenSimplex stone terrain topped with sand, with a body
// of water waiting to fall in the upper left.
func dunes(s *Simulation, rng *core.RNG) {
	w, h := s.grid.Width(), s.grid.Height()
	noise := opensimplex.New(rng.Source().Int64())
	for x := 0; x < w; x++ {
		ground := noise.Eval2(float64(x)*0.03, 0.5)
		height := int(float64(h) * (0.25 + 0.1*ground))
		s.fillClipped(core.Vec(x, h-height), core.Vec(1, height), KindStone)

		drift := noise.Eval2(float64(x)*0.07, 7.3)
		thick := 2 + int((drift+1)*float64(h)*0.03)
		s.fillClipped(core.Vec(x, h-height-thick), core.Vec(1, thick), KindSand)
	}
	s.fillClipped(core.Vec(0, h/20), core.Vec(w/4, h/6), KindWater)
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	for _, name := range PresetNames() {
		preset := name
		core.Register("sand-"+preset, func(cfg map[string]string) core.Sim {
			c := FromMap(cfg)
			c.Preset = preset
			return NewWithConfig(c)
		})
	}
}
