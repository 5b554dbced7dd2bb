//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type maskProvider interface {
	WaitingMask() []float32
	PriorityMask() []float32
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim          core.Sim
	scale        int
	showWaiting  bool
	showPriority bool
	maskImg      *ebiten.Image
	maskBuf      []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlays: V for particles that will sit out the next
// sweep, P for the swap priority heat map.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.showWaiting = !o.showWaiting
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showPriority = !o.showPriority
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showWaiting && !o.showPriority {
		return
	}
	provider, ok := o.sim.(maskProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	if o.showPriority {
		o.drawMask(screen, provider.PriorityMask(), color.RGBA{R: 255, G: 120, B: 40})
	}
	if o.showWaiting {
		o.drawMask(screen, provider.WaitingMask(), color.RGBA{R: 64, G: 164, B: 223})
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	const (
		maxAlpha  = 160.0
		glowBase  = 0.35
		glowRange = 0.65
	)

	for i, v := range mask {
		base := i * 4
		intensity := math.Min(math.Max(float64(v), 0), 1)
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		alpha := math.Round(maxAlpha * intensity)
		glow := (glowBase + glowRange*math.Sqrt(intensity)) * alpha / 255
		// WritePixels expects premultiplied alpha.
		o.maskBuf[base+0] = uint8(float64(tint.R) * glow)
		o.maskBuf[base+1] = uint8(float64(tint.G) * glow)
		o.maskBuf[base+2] = uint8(float64(tint.B) * glow)
		o.maskBuf[base+3] = uint8(alpha)
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
