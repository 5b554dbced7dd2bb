//go:build ebiten

package app

import (
	"image/color"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/render"
	"falling-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the stats panel right of the grid.
const HUDWidth = 200

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA
	tool    Tool

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, brush int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, HUDWidth),
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		tool:    NewTool(brush),
		scale:   scale,
		seed:    seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for slot, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if inpututil.IsKeyJustPressed(key) {
			g.tool.Select(slot + 1)
		}
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		g.tool.Resize(1)
	} else if dy < 0 {
		g.tool.Resize(-1)
	}
	g.handleMouse()

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.tool.Group(g.paused))
	return nil
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	size := g.sim.Size()
	if x < 0 || y < 0 || x >= size.W*g.scale || y >= size.H*g.scale {
		return
	}
	p := ToGrid(x, y, g.scale)
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.tool.Paint(g.sim, p)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.tool.Erase(g.sim, p)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
