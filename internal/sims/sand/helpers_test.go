package sand

import (
	"testing"

	"falling-sand/internal/core"
)

// scriptedRand replays fixed draws so direction choices are predictable.
type scriptedRand struct {
	draws []uint32
	next  int
}

func (r *scriptedRand) Uint32() uint32 {
	v := r.draws[r.next%len(r.draws)]
	r.next++
	return v
}

// leftFirst makes RandomDirection return +1, trying the left side first.
func leftFirst() *scriptedRand { return &scriptedRand{draws: []uint32{1}} }

// rightFirst makes RandomDirection return -1, trying the right side first.
func rightFirst() *scriptedRand { return &scriptedRand{draws: []uint32{0}} }

func newTestGrid(w, h int) *core.Grid[Cell] {
	return core.NewGrid(w, h, Empty())
}

func put(t *testing.T, g *core.Grid[Cell], idx int, k Kind) {
	t.Helper()
	p := core.Vec(idx%g.Width(), idx/g.Width())
	if err := g.Set(p, CellOf(k)); err != nil {
		t.Fatalf("placing %s at %s: %v", k, p, err)
	}
}

func kindAt(g *core.Grid[Cell], idx int) (Kind, bool) {
	c := g.Cells()[idx]
	return c.Particle.Kind, c.Occupied
}

func expectKind(t *testing.T, g *core.Grid[Cell], idx int, k Kind) {
	t.Helper()
	got, ok := kindAt(g, idx)
	if !ok {
		t.Fatalf("cell %d is empty, expected %s", idx, k)
	}
	if got != k {
		t.Fatalf("cell %d holds %s, expected %s", idx, got, k)
	}
}

func expectEmpty(t *testing.T, g *core.Grid[Cell], idx int) {
	t.Helper()
	if got, ok := kindAt(g, idx); ok {
		t.Fatalf("cell %d holds %s, expected empty", idx, got)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
