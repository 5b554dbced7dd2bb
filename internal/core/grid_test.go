package core

import (
	"errors"
	"slices"
	"testing"
)

func TestGridBoundsInvariant(t *testing.T) {
	g := NewGrid(4, 3, 0)
	for y := -2; y <= 4; y++ {
		for x := -2; x <= 5; x++ {
			p := Vec(x, y)
			_, err := g.Get(p)
			if g.InBounds(p) != (err == nil) {
				t.Fatalf("Get(%s) err=%v but InBounds=%v", p, err, g.InBounds(p))
			}
			if err != nil && !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Get(%s) returned %v, expected ErrOutOfBounds", p, err)
			}
		}
	}
}

func TestGridRowMajorLayout(t *testing.T) {
	g := NewGrid(3, 2, 0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if err := g.Set(Vec(x, y), x+y*3); err != nil {
				t.Fatalf("Set(%d,%d): %v", x, y, err)
			}
		}
	}
	if want := []int{0, 1, 2, 3, 4, 5}; !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells %v, expected %v", g.Cells(), want)
	}
	idx, err := g.Index(Vec(2, 1))
	if err != nil || idx != 5 {
		t.Fatalf("Index(2,1) = %d, %v; expected 5", idx, err)
	}
}

func TestGridSwap(t *testing.T) {
	g := NewGrid(2, 2, 0)
	_ = g.Set(Vec(0, 0), 1)
	_ = g.Set(Vec(1, 1), 2)

	if err := g.Swap(Vec(0, 0), Vec(1, 1)); err != nil {
		t.Fatalf("swap: %v", err)
	}
	if a, _ := g.Get(Vec(0, 0)); a != 2 {
		t.Fatalf("expected 2 at origin after swap, got %d", a)
	}
	if b, _ := g.Get(Vec(1, 1)); b != 1 {
		t.Fatalf("expected 1 at (1,1) after swap, got %d", b)
	}

	if err := g.Swap(Vec(1, 1), Vec(1, 1)); err != nil {
		t.Fatalf("self swap should succeed, got %v", err)
	}

	before := slices.Clone(g.Cells())
	if err := g.Swap(Vec(0, 0), Vec(2, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := g.Swap(Vec(-1, 0), Vec(0, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("failed swap must not modify the grid")
	}
}

func TestGridPtrMutatesInPlace(t *testing.T) {
	g := NewGrid(2, 2, 0)
	p, err := g.Ptr(Vec(1, 0))
	if err != nil {
		t.Fatalf("Ptr: %v", err)
	}
	*p = 9
	if v, _ := g.Get(Vec(1, 0)); v != 9 {
		t.Fatalf("expected write through pointer, got %d", v)
	}
	if _, err := g.Ptr(Vec(0, 2)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestGridFill(t *testing.T) {
	g := NewGrid(4, 4, 0)
	if err := g.Fill(Vec(1, 1), Vec(2, 3), 7); err != nil {
		t.Fatalf("fill: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v, _ := g.Get(Vec(x, y))
			inside := x >= 1 && x <= 2 && y >= 1 && y <= 3
			if inside != (v == 7) {
				t.Fatalf("cell (%d,%d)=%d, inside=%v", x, y, v, inside)
			}
		}
	}
}

func TestGridFillIsAtomic(t *testing.T) {
	g := NewGrid(4, 4, 0)
	_ = g.Set(Vec(3, 3), 5)
	before := slices.Clone(g.Cells())

	cases := []struct {
		origin, size Vector
	}{
		{Vec(2, 2), Vec(3, 1)},
		{Vec(-1, 0), Vec(2, 2)},
		{Vec(0, 3), Vec(1, 2)},
		{Vec(4, 4), Vec(1, 1)},
	}
	for _, tc := range cases {
		if err := g.Fill(tc.origin, tc.size, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Fill(%s,%s) err=%v, expected ErrOutOfBounds", tc.origin, tc.size, err)
		}
		if !slices.Equal(before, g.Cells()) {
			t.Fatalf("Fill(%s,%s) partially modified the grid", tc.origin, tc.size)
		}
	}

	if err := g.Fill(Vec(10, 10), Vec(0, 3), 1); err != nil {
		t.Fatalf("empty rectangle should be a no-op, got %v", err)
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3, "x")
	if g.Width() != 1 || g.Height() != 1 || g.Len() != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.Width(), g.Height())
	}
	if v, _ := g.Get(Vec(0, 0)); v != "x" {
		t.Fatalf("expected fill value, got %q", v)
	}
}

func TestVectorArithmetic(t *testing.T) {
	v := Down.Add(Left.Mul(-1))
	if v != Vec(1, 1) {
		t.Fatalf("Down+Left*-1 = %s", v)
	}
	if got := Vec(3, -2).Sub(Vec(5, 5)); got != Vec(-2, -7) {
		t.Fatalf("unexpected Sub result %s", got)
	}
	if Up.Add(Down) != (Vector{}) || Left.Add(Right) != (Vector{}) {
		t.Fatal("opposite directions should cancel")
	}
}
