package sand

import (
	"falling-sand/internal/core"
)

// Simulation owns the particle grid and advances it one tick at a time.
type Simulation struct {
	cfg Config

	grid *core.Grid[Cell]
	rng  *core.RNG

	// tickVisit is the Visited value of particles not yet processed in the
	// current tick. It inverts after every sweep.
	tickVisit bool
	ticks     uint64
	moved     int

	display []uint8
}

// New returns an empty simulation with the provided dimensions.
func New(w, h int) *Simulation {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Preset = PresetEmpty
	cfg.Setup = nil
	return NewWithConfig(cfg)
}

// NewWithConfig allocates the grid described by cfg. The grid starts empty;
// presets and setup fills are applied by Reset.
func NewWithConfig(cfg Config) *Simulation {
	grid := core.NewGrid(cfg.Width, cfg.Height, Empty())
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	return &Simulation{
		cfg:     cfg,
		grid:    grid,
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, grid.Len()),
	}
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "sand" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return s.grid.Size() }

// Grid exposes the particle grid for setup and rendering code.
func (s *Simulation) Grid() *core.Grid[Cell] { return s.grid }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// TickVisit returns the Visited value that marks a particle as pending.
func (s *Simulation) TickVisit() bool { return s.tickVisit }

// Ticks returns the number of completed ticks since the last reset.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Moved returns the number of successful swaps during the last tick.
func (s *Simulation) Moved() int { return s.moved }

// Reset clears the grid and rebuilds the configured scene. A zero seed falls
// back to the configured one.
func (s *Simulation) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng.Seed(effective)
	s.grid.Clear(Empty())
	s.tickVisit = false
	s.ticks = 0
	s.moved = 0

	if preset, ok := presets[s.cfg.Preset]; ok {
		preset(s, s.rng)
	}
	for _, f := range s.cfg.Setup {
		kind, err := ParseKind(f.Kind)
		if err != nil {
			continue
		}
		// Validate has already checked the bounds of configured fills.
		_ = s.FillKind(core.Vec(f.X, f.Y), core.Vec(f.W, f.H), kind)
	}
}

// Step advances the simulation by one tick.
func (s *Simulation) Step() { s.Tick() }

// Tick sweeps the grid once, columns left to right and rows bottom to top,
// running the behavior of every particle that has not been processed yet.
func (s *Simulation) Tick() {
	w, h := s.grid.Width(), s.grid.Height()
	cells := s.grid.Cells()
	moved := 0
	for x := 0; x < w; x++ {
		for y := h - 1; y >= 0; y-- {
			c := &cells[x+y*w]
			if !c.Occupied || c.Particle.Visited != s.tickVisit {
				continue
			}
			api := NewAPI(s.grid, s.rng, core.Vec(x, y))
			c.Particle.Behavior.Apply(api)
			moved += api.Swaps()
		}
	}
	s.tickVisit = !s.tickVisit
	s.ticks++
	s.moved = moved
}

// pending returns a cell of kind k that the next sweep will process.
func (s *Simulation) pending(k Kind) Cell {
	c := CellOf(k)
	c.Particle.Visited = s.tickVisit
	return c
}

// Place puts a fresh particle of kind k at p.
func (s *Simulation) Place(p core.Vector, k Kind) error {
	return s.grid.Set(p, s.pending(k))
}

// Erase empties the cell at p.
func (s *Simulation) Erase(p core.Vector) error {
	return s.grid.Set(p, Empty())
}

// FillKind fills the rectangle [origin, origin+size) with particles of kind
// k. Nothing is written if any part of the rectangle is out of bounds.
func (s *Simulation) FillKind(origin, size core.Vector, k Kind) error {
	return s.grid.Fill(origin, size, s.pending(k))
}

// Paint places particles of kind k in every in-bounds cell of the disc
// around center and returns how many cells were written.
func (s *Simulation) Paint(center core.Vector, radius int, k Kind) int {
	return s.paintDisc(center, radius, s.pending(k))
}

// EraseDisc empties every in-bounds cell of the disc around center.
func (s *Simulation) EraseDisc(center core.Vector, radius int) int {
	return s.paintDisc(center, radius, Empty())
}

func (s *Simulation) paintDisc(center core.Vector, radius int, c Cell) int {
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	written := 0
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			if s.grid.Set(center.Add(core.Vec(dx, dy)), c) == nil {
				written++
			}
		}
	}
	return written
}

// Count returns the number of particles of kind k.
func (s *Simulation) Count(k Kind) int {
	total := 0
	for _, c := range s.grid.Cells() {
		if c.Occupied && c.Particle.Kind == k {
			total++
		}
	}
	return total
}

// Counts tallies particles per kind.
func (s *Simulation) Counts() map[Kind]int {
	counts := make(map[Kind]int, kindCount)
	for _, c := range s.grid.Cells() {
		if c.Occupied {
			counts[c.Particle.Kind]++
		}
	}
	return counts
}
