package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a position falls outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// Grid stores a fixed-size 2D grid of values in row-major order.
type Grid[T any] struct {
	w, h int
	data []T
}

// NewGrid allocates a grid with the given dimensions, every slot set to fill.
func NewGrid[T any](w, h int, fill T) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	data := make([]T, w*h)
	for i := range data {
		data[i] = fill
	}
	return &Grid[T]{w: w, h: h, data: data}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.w, H: g.h} }

// Len returns the number of slots.
func (g *Grid[T]) Len() int { return len(g.data) }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// InBounds reports whether p addresses a slot of the grid.
func (g *Grid[T]) InBounds(p Vector) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// Index returns the linear slice index for p.
func (g *Grid[T]) Index(p Vector) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.w, g.h)
	}
	return p.X + p.Y*g.w, nil
}

// Get returns a copy of the value at p.
func (g *Grid[T]) Get(p Vector) (T, error) {
	idx, err := g.Index(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.data[idx], nil
}

// Ptr returns a pointer to the slot at p for in-place mutation.
func (g *Grid[T]) Ptr(p Vector) (*T, error) {
	idx, err := g.Index(p)
	if err != nil {
		return nil, err
	}
	return &g.data[idx], nil
}

// Set overwrites the slot at p.
func (g *Grid[T]) Set(p Vector, v T) error {
	idx, err := g.Index(p)
	if err != nil {
		return err
	}
	g.data[idx] = v
	return nil
}

// Swap exchanges the contents of two slots. Nothing changes unless both
// positions are in bounds.
func (g *Grid[T]) Swap(p1, p2 Vector) error {
	i, err := g.Index(p1)
	if err != nil {
		return err
	}
	j, err := g.Index(p2)
	if err != nil {
		return err
	}
	g.data[i], g.data[j] = g.data[j], g.data[i]
	return nil
}

// Fill writes v into every slot of the rectangle [origin, origin+size). The
// whole rectangle is validated before anything is written; an empty
// rectangle is a no-op.
func (g *Grid[T]) Fill(origin, size Vector, v T) error {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	last := origin.Add(size).Sub(Vector{X: 1, Y: 1})
	if !g.InBounds(origin) || !g.InBounds(last) {
		return fmt.Errorf("%w: fill %s+%s in %dx%d grid", ErrOutOfBounds, origin, size, g.w, g.h)
	}
	for y := origin.Y; y <= last.Y; y++ {
		row := y * g.w
		for x := origin.X; x <= last.X; x++ {
			g.data[row+x] = v
		}
	}
	return nil
}

// Clear resets every slot to v.
func (g *Grid[T]) Clear(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}
