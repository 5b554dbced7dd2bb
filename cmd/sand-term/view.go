package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/render"

	"github.com/gdamore/tcell/v2"
)

// halfBlock draws the upper grid row in the foreground and the lower one in
// the background, so each terminal row shows two grid rows.
const halfBlock = '▀'

type paletteProvider interface {
	Palette() []color.RGBA
}

// view owns the terminal state for one simulation.
type view struct {
	screen  tcell.Screen
	sim     core.Sim
	palette []color.RGBA
	tool    app.Tool
	seed    int64

	paused   bool
	tickOnce bool
}

func newView(screen tcell.Screen, sim core.Sim, seed int64, brush int) *view {
	v := &view{
		screen:  screen,
		sim:     sim,
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		tool:    app.NewTool(brush),
		seed:    seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		v.palette = p.Palette()
	}
	return v
}

// gridRows returns how many grid rows fit above the status line.
func gridRows(termHeight int) int {
	return max(termHeight-1, 1) * 2
}

// handle applies one terminal event. It reports true when the user quits.
func (v *view) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		p := core.Vec(x, y*2)
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			v.tool.Paint(v.sim, p)
			v.tool.Paint(v.sim, p.Add(core.Down))
		case ev.Buttons()&tcell.Button2 != 0:
			v.tool.Erase(v.sim, p)
			v.tool.Erase(v.sim, p.Add(core.Down))
		case ev.Buttons()&tcell.WheelUp != 0:
			v.tool.Resize(1)
		case ev.Buttons()&tcell.WheelDown != 0:
			v.tool.Resize(-1)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

func (v *view) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return true
	case ' ':
		v.paused = !v.paused
	case 'n', 'N':
		v.tickOnce = true
	case 'r', 'R':
		v.sim.Reset(v.seed)
	case 's', 'S':
		v.seed = time.Now().UnixNano()
		v.sim.Reset(v.seed)
	case '+', '=':
		v.tool.Resize(1)
	case '-':
		v.tool.Resize(-1)
	default:
		if r >= '1' && r <= '9' {
			v.tool.Select(int(r - '0'))
		}
	}
	return false
}

// advance steps the simulation unless paused. It reports whether a tick ran.
func (v *view) advance() bool {
	if v.paused && !v.tickOnce {
		return false
	}
	v.sim.Step()
	v.tickOnce = false
	return true
}

// draw renders the grid and the status line, then shows the frame.
func (v *view) draw() {
	v.screen.Clear()
	size := v.sim.Size()
	cells := v.sim.Cells()
	termW, termH := v.screen.Size()
	rows := min((size.H+1)/2, termH-1)
	cols := min(size.W, termW)
	for ty := 0; ty < rows; ty++ {
		for x := 0; x < cols; x++ {
			upper := termColor(render.Lookup(v.palette, cells[x+2*ty*size.W]))
			lower := upper
			if 2*ty+1 < size.H {
				lower = termColor(render.Lookup(v.palette, cells[x+(2*ty+1)*size.W]))
			}
			v.screen.SetContent(x, ty, halfBlock, nil, tcell.StyleDefault.Foreground(upper).Background(lower))
		}
	}
	v.drawStatus(termH - 1)
	v.screen.Show()
}

func (v *view) drawStatus(y int) {
	parts := []string{}
	if provider, ok := v.sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			if group.Name == "Particles" {
				parts = append(parts, joinParams(group))
			}
		}
	}
	parts = append(parts, joinParams(v.tool.Group(v.paused)))
	status := fmt.Sprintf(" %s | %s", v.sim.Name(), strings.Join(parts, " | "))
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for x, r := range []rune(status) {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func joinParams(group core.ParameterGroup) string {
	fields := make([]string, len(group.Params))
	for i, p := range group.Params {
		fields[i] = strings.ToLower(p.Label) + "=" + p.Value
	}
	return strings.Join(fields, " ")
}

func termColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
