package render

import "image/color"

// Lookup returns the palette entry for a display value. Values past the end
// of the palette map to its last entry; an empty palette yields transparent
// black.
func Lookup(palette []color.RGBA, v uint8) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	idx := int(v)
	if last := len(palette) - 1; idx > last {
		idx = last
	}
	return palette[idx]
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		base := i * 4
		col := Lookup(palette, c)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
