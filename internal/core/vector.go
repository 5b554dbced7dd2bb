package core

import "fmt"

// Vector is a signed integer offset or grid position.
type Vector struct {
	X, Y int
}

// Unit directions in screen orientation (y grows downwards).
var (
	Up    = Vector{X: 0, Y: -1}
	Down  = Vector{X: 0, Y: 1}
	Left  = Vector{X: -1, Y: 0}
	Right = Vector{X: 1, Y: 0}
)

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y int) Vector { return Vector{X: x, Y: y} }

// Add returns v+o.
func (v Vector) Add(o Vector) Vector { return Vector{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vector) Sub(o Vector) Vector { return Vector{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul scales both components by k.
func (v Vector) Mul(k int) Vector { return Vector{X: v.X * k, Y: v.Y * k} }

func (v Vector) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }
