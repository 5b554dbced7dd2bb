package ui

import (
	"strings"
	"unicode"

	"falling-sand/internal/core"
)

// panelLine is one text row of the HUD panel.
type panelLine struct {
	text   string
	header bool
}

// panelLines flattens a snapshot into the rows the HUD draws: the title, then
// each group name followed by its label/value pairs. Values are right-aligned
// to the given column width in characters.
func panelLines(title string, snapshot core.ParameterSnapshot, columns int) []panelLine {
	lines := []panelLine{{text: title, header: true}}
	for _, group := range snapshot.Groups {
		if len(group.Params) == 0 {
			continue
		}
		lines = append(lines, panelLine{text: group.Name, header: true})
		for _, p := range group.Params {
			lines = append(lines, panelLine{text: alignPair(p.Label, p.Value, columns)})
		}
	}
	return lines
}

func alignPair(label, value string, columns int) string {
	gap := columns - len(label) - len(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}

func panelTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Stats"
	}
	r := []rune(sim.Name())
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
