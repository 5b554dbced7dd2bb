package sand

import (
	"fmt"

	"falling-sand/internal/core"
)

// Rand is the random source consulted for left/right tie-breaks.
// *core.RNG and *rand.Rand both satisfy it.
type Rand interface {
	Uint32() uint32
}

// API is a view of the grid bound to the position of the particle whose
// behavior is running. It lives for a single behavior call.
type API struct {
	grid  *core.Grid[Cell]
	rng   Rand
	pos   core.Vector
	swaps int
}

// NewAPI binds an API to pos, which must hold a particle. Anything else is a
// scheduler bug and panics.
func NewAPI(grid *core.Grid[Cell], rng Rand, pos core.Vector) *API {
	c, err := grid.Ptr(pos)
	if err != nil {
		panic(fmt.Sprintf("sand: api bound to invalid position: %v", err))
	}
	if !c.Occupied {
		panic(fmt.Sprintf("sand: api bound to empty cell %s", pos))
	}
	return &API{grid: grid, rng: rng, pos: pos}
}

// Position returns the absolute position of the current particle.
func (a *API) Position() core.Vector { return a.pos }

// Swaps returns the number of successful swaps performed through a.
func (a *API) Swaps() int { return a.swaps }

// Current returns the particle at the tracked position.
func (a *API) Current() *Particle {
	c, err := a.grid.Ptr(a.pos)
	if err != nil || !c.Occupied {
		panic(fmt.Sprintf("sand: tracked cell %s lost its particle", a.pos))
	}
	return &c.Particle
}

// FlipVisited toggles the visited flag of the current particle.
func (a *API) FlipVisited() {
	p := a.Current()
	p.Visited = !p.Visited
}

// Neighbor returns the particle at the relative position rel, or nil when
// that cell is empty or outside the grid.
func (a *API) Neighbor(rel core.Vector) *Particle {
	c, err := a.grid.Ptr(a.pos.Add(rel))
	if err != nil || !c.Occupied {
		return nil
	}
	return &c.Particle
}

// InBounds reports whether the relative position rel lies inside the grid.
func (a *API) InBounds(rel core.Vector) bool {
	return a.grid.InBounds(a.pos.Add(rel))
}

// Swap moves the current particle to rel when the target is empty or holds
// a particle of strictly lower priority. It reports whether the move happened.
func (a *API) Swap(rel core.Vector) bool {
	priority := a.Current().Priority
	target := a.pos.Add(rel)
	c, err := a.grid.Ptr(target)
	if err != nil {
		return false
	}
	if c.Occupied && c.Particle.Priority >= priority {
		return false
	}
	if err := a.grid.Swap(a.pos, target); err != nil {
		return false
	}
	a.pos = target
	a.swaps++
	return true
}

// RandomDirection returns -1 or +1. Without a random source it is always +1.
func (a *API) RandomDirection() int {
	if a.rng == nil {
		return 1
	}
	return int(a.rng.Uint32()%2)*2 - 1
}
