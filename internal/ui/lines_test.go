package ui

import (
	"testing"

	"falling-sand/internal/core"
)

func TestPanelLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{
			{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: "64"},
		}},
		{Name: "Empty"},
		{Name: "Tool", Params: []core.Parameter{
			{Key: "material", Label: "Material", Type: core.ParamTypeString, Value: "water"},
		}},
	}}
	lines := panelLines("Sand", snap, 16)
	want := []panelLine{
		{text: "Sand", header: true},
		{text: "World", header: true},
		{text: "Width         64"},
		{text: "Tool", header: true},
		{text: "Material   water"},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %+v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %+v, got %+v", i, want[i], lines[i])
		}
	}
}

func TestAlignPairKeepsOneSpace(t *testing.T) {
	if got := alignPair("Particles", "123456", 8); got != "Particles 123456" {
		t.Fatalf("unexpected alignment %q", got)
	}
}
