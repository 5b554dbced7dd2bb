//go:build ebiten

package ui

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the stats panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []panelLine
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: panelTitle(sim)}
}

// Update refreshes the cached rows from the simulation. The tool group
// describes the front-end state (material, brush, pause) and is listed last.
func (h *HUD) Update(tool core.ParameterGroup) {
	if h == nil {
		return
	}
	var snapshot core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snapshot = provider.Parameters()
	}
	snapshot.Groups = append(snapshot.Groups, tool)
	columns := (h.width - 2*panelPadding) / glyphWidth
	h.lines = panelLines(h.title, snapshot, columns)
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for i, line := range h.lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line.header {
			col = color.RGBA{R: 200, G: 200, B: 210, A: 255}
			if i > 0 {
				y += groupGap
			}
		}
		if y > h.lastHeight-panelPadding {
			return
		}
		text.Draw(h.panel, line.text, face, panelPadding, y, col)
		y += lineHeight
	}
}

const (
	panelPadding   = 12
	lineHeight     = 18
	groupGap       = 10
	headerBaseline = 14
	glyphWidth     = 7
)
