package sand

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind identifies a particle material.
type Kind uint8

const (
	KindStone Kind = iota
	KindSand
	KindWater
	KindWall

	kindCount
)

// Swap priority bands. A mover displaces only strictly lower priorities.
const (
	PriorityGas    uint8 = 42
	PriorityLiquid uint8 = 127
	PrioritySolid  uint8 = 212
	PriorityFixed  uint8 = 255
)

// Particle is the value stored in an occupied cell.
type Particle struct {
	Kind     Kind
	Color    color.RGBA
	Priority uint8
	Visited  bool
	Behavior Behavior
}

type kindInfo struct {
	name     string
	behavior Behavior
	priority uint8
	color    color.RGBA
}

var catalog = [kindCount]kindInfo{
	KindStone: {name: "stone", behavior: BehaviorSolid, priority: PrioritySolid, color: color.RGBA{R: 65, G: 64, B: 64, A: 255}},
	KindSand:  {name: "sand", behavior: BehaviorPowder, priority: PrioritySolid, color: color.RGBA{R: 194, G: 178, B: 128, A: 255}},
	KindWater: {name: "water", behavior: BehaviorLiquid, priority: PriorityLiquid, color: color.RGBA{R: 29, G: 162, B: 255, A: 255}},
	KindWall:  {name: "wall", behavior: BehaviorStatic, priority: PriorityFixed, color: color.RGBA{R: 20, G: 20, B: 24, A: 255}},
}

// Kinds lists every particle kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return catalog[k].name
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range catalog {
		if info.name == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown particle kind %q", name)
}

// NewParticle returns a fresh particle of the given kind.
func NewParticle(k Kind) Particle {
	info := catalog[k]
	return Particle{
		Kind:     k,
		Color:    info.color,
		Priority: info.priority,
		Behavior: info.behavior,
	}
}

// Cell is an optional particle slot.
type Cell struct {
	Particle Particle
	Occupied bool
}

// Empty returns an unoccupied cell.
func Empty() Cell { return Cell{} }

// CellOf returns a cell holding a fresh particle of kind k.
func CellOf(k Kind) Cell { return Cell{Particle: NewParticle(k), Occupied: true} }

// Get returns the particle and whether the cell is occupied.
func (c Cell) Get() (Particle, bool) { return c.Particle, c.Occupied }
