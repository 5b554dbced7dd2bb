package sand

import "image/color"

// Background is the palette entry for empty cells.
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

var sandPalette = buildPalette()

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, int(kindCount)+1)
	palette[0] = Background
	for i, info := range catalog {
		palette[i+1] = info.color
	}
	return palette
}

// Palette maps display values returned by Cells to colors.
func (s *Simulation) Palette() []color.RGBA {
	return sandPalette
}

// Cells returns the display buffer: 0 for empty cells, 1+Kind otherwise.
func (s *Simulation) Cells() []uint8 {
	for i, c := range s.grid.Cells() {
		if !c.Occupied {
			s.display[i] = 0
			continue
		}
		s.display[i] = uint8(c.Particle.Kind) + 1
	}
	return s.display
}

// ColorAt returns the display color of the cell at index i of the grid.
func (s *Simulation) ColorAt(i int) color.RGBA {
	cells := s.grid.Cells()
	if i < 0 || i >= len(cells) || !cells[i].Occupied {
		return Background
	}
	return cells[i].Particle.Color
}

// WaitingMask marks particles whose Visited flag says they will be skipped
// by the next sweep, which happens to particles displaced into an already
// scanned cell.
func (s *Simulation) WaitingMask() []float32 {
	cells := s.grid.Cells()
	mask := make([]float32, len(cells))
	for i, c := range cells {
		if c.Occupied && c.Particle.Visited != s.tickVisit {
			mask[i] = 1
		}
	}
	return mask
}

// PriorityMask returns each cell's swap priority scaled to [0,1].
func (s *Simulation) PriorityMask() []float32 {
	cells := s.grid.Cells()
	mask := make([]float32, len(cells))
	for i, c := range cells {
		if c.Occupied {
			mask[i] = float32(c.Particle.Priority) / 255
		}
	}
	return mask
}
