package app

import (
	"testing"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

func TestToolSelectAndResize(t *testing.T) {
	tool := NewTool(100)
	if tool.Brush != MaxBrush || tool.Material != sand.KindSand {
		t.Fatalf("unexpected initial tool %+v", tool)
	}
	tool.Resize(-200)
	if tool.Brush != MinBrush {
		t.Fatalf("brush should clamp at %d, got %d", MinBrush, tool.Brush)
	}
	if !tool.Select(3) || tool.Material != sand.KindWater {
		t.Fatalf("slot 3 should select water, got %s", tool.Material)
	}
	if tool.Select(0) || tool.Select(5) {
		t.Fatal("slots outside 1-4 should be rejected")
	}
	if tool.Material != sand.KindWater {
		t.Fatalf("rejected slot changed material to %s", tool.Material)
	}
}

func TestToolPaintAndErase(t *testing.T) {
	sim := sand.New(10, 10)
	tool := NewTool(1)
	tool.Select(4)
	if n := tool.Paint(sim, core.Vec(5, 5)); n != 5 {
		t.Fatalf("expected 5 cells painted, got %d", n)
	}
	if sim.Count(sand.KindWall) != 5 {
		t.Fatalf("expected 5 walls, got %d", sim.Count(sand.KindWall))
	}
	if n := tool.Erase(sim, core.Vec(5, 5)); n != 5 {
		t.Fatalf("expected 5 cells erased, got %d", n)
	}
	if sim.Count(sand.KindWall) != 0 {
		t.Fatal("walls should be erased")
	}
}

func TestToolGroup(t *testing.T) {
	tool := NewTool(2)
	g := tool.Group(true)
	values := map[string]string{}
	for _, p := range g.Params {
		values[p.Key] = p.Value
	}
	if values["material"] != "sand" || values["brush"] != "2" || values["state"] != "paused" {
		t.Fatalf("unexpected tool group %v", values)
	}
}

func TestToGrid(t *testing.T) {
	cases := []struct {
		x, y, scale int
		want        core.Vector
	}{
		{0, 0, 3, core.Vec(0, 0)},
		{8, 3, 3, core.Vec(2, 1)},
		{-1, 5, 3, core.Vec(-1, 1)},
		{4, 4, 0, core.Vec(4, 4)},
	}
	for _, tc := range cases {
		if got := ToGrid(tc.x, tc.y, tc.scale); got != tc.want {
			t.Fatalf("ToGrid(%d,%d,%d) = %v, want %v", tc.x, tc.y, tc.scale, got, tc.want)
		}
	}
}
