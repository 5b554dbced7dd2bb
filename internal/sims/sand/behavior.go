package sand

import (
	"fmt"

	"falling-sand/internal/core"
)

// Behavior tags the movement rule applied to a particle each tick.
type Behavior uint8

const (
	BehaviorStatic Behavior = iota
	BehaviorSolid
	BehaviorPowder
	BehaviorLiquid

	behaviorCount
)

// BehaviorFunc is a movement rule. It must call FlipVisited exactly once.
type BehaviorFunc func(api *API)

var behaviors = [behaviorCount]BehaviorFunc{
	BehaviorStatic: StaticBehavior,
	BehaviorSolid:  SolidBehavior,
	BehaviorPowder: PowderBehavior,
	BehaviorLiquid: LiquidBehavior,
}

func (b Behavior) String() string {
	switch b {
	case BehaviorStatic:
		return "static"
	case BehaviorSolid:
		return "solid"
	case BehaviorPowder:
		return "powder"
	case BehaviorLiquid:
		return "liquid"
	default:
		return fmt.Sprintf("behavior(%d)", uint8(b))
	}
}

// Apply runs the rule for b against api.
func (b Behavior) Apply(api *API) {
	if b >= behaviorCount {
		panic(fmt.Sprintf("sand: unknown %s", b))
	}
	behaviors[b](api)
}

// StaticBehavior never moves.
func StaticBehavior(api *API) {
	api.FlipVisited()
}

// SolidBehavior falls straight down.
func SolidBehavior(api *API) {
	api.Swap(core.Down)
	api.FlipVisited()
}

// PowderBehavior falls down, then slides to one of the lower diagonals.
func PowderBehavior(api *API) {
	dx := api.RandomDirection()
	_ = api.Swap(core.Down) ||
		api.Swap(core.Down.Add(core.Left.Mul(dx))) ||
		api.Swap(core.Down.Add(core.Left.Mul(-dx)))
	api.FlipVisited()
}

// LiquidBehavior falls, then slides diagonally, then spreads sideways.
func LiquidBehavior(api *API) {
	dx := api.RandomDirection()
	_ = api.Swap(core.Down) ||
		api.Swap(core.Down.Add(core.Left.Mul(dx))) ||
		api.Swap(core.Down.Add(core.Left.Mul(-dx))) ||
		api.Swap(core.Left.Mul(dx)) ||
		api.Swap(core.Left.Mul(-dx))
	api.FlipVisited()
}
