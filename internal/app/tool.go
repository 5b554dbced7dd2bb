package app

import (
	"strconv"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

// Brush radius limits.
const (
	MinBrush = 0
	MaxBrush = 32
)

// Editor is implemented by sims that accept brush strokes.
type Editor interface {
	Paint(center core.Vector, radius int, k sand.Kind) int
	EraseDisc(center core.Vector, radius int) int
}

// Tool holds the brush state shared by the front-ends.
type Tool struct {
	Material sand.Kind
	Brush    int
}

// NewTool returns a sand brush with the radius clamped to the valid range.
func NewTool(brush int) Tool {
	t := Tool{Material: sand.KindSand}
	t.Resize(brush)
	return t
}

// Select picks the material bound to the 1-based slot. It reports false when
// the slot has no material.
func (t *Tool) Select(slot int) bool {
	kinds := sand.Kinds()
	if slot < 1 || slot > len(kinds) {
		return false
	}
	t.Material = kinds[slot-1]
	return true
}

// Resize grows or shrinks the brush by delta.
func (t *Tool) Resize(delta int) {
	t.Brush = min(max(t.Brush+delta, MinBrush), MaxBrush)
}

// Paint stamps the selected material around p when the sim is editable.
func (t Tool) Paint(sim core.Sim, p core.Vector) int {
	ed, ok := sim.(Editor)
	if !ok {
		return 0
	}
	return ed.Paint(p, t.Brush, t.Material)
}

// Erase clears the brush disc around p when the sim is editable.
func (t Tool) Erase(sim core.Sim, p core.Vector) int {
	ed, ok := sim.(Editor)
	if !ok {
		return 0
	}
	return ed.EraseDisc(p, t.Brush)
}

// Group describes the tool state for the HUD and status line.
func (t Tool) Group(paused bool) core.ParameterGroup {
	state := "running"
	if paused {
		state = "paused"
	}
	return core.ParameterGroup{
		Name: "Tool",
		Params: []core.Parameter{
			{Key: "material", Label: "Material", Type: core.ParamTypeString, Value: t.Material.String()},
			{Key: "brush", Label: "Brush", Type: core.ParamTypeInt, Value: strconv.Itoa(t.Brush)},
			{Key: "state", Label: "State", Type: core.ParamTypeString, Value: state},
		},
	}
}

// ToGrid converts window pixel coordinates into grid coordinates.
func ToGrid(x, y, scale int) core.Vector {
	if scale <= 0 {
		scale = 1
	}
	return core.Vec(floorDiv(x, scale), floorDiv(y, scale))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
