package life

import (
	"testing"

	"tickgol/internal/core"
)

func newGrid(t *testing.T, w, h int, edges core.EdgeMode) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h, edges)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func stamp(t *testing.T, g *core.Grid, name string, x, y int) {
	t.Helper()
	p, ok := Lookup(name)
	if !ok {
		t.Fatalf("pattern %q not registered", name)
	}
	Stamp(g, p, core.Position{X: x, Y: y})
}

func expectAlive(t *testing.T, g *core.Grid, alive map[[2]int]bool, stage string) {
	t.Helper()
	for p, c := range g.All() {
		want := alive[[2]int{p.X, p.Y}]
		if (c == core.Alive) != want {
			t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, p.X, p.Y, c == core.Alive, want)
		}
	}
}

func TestNextStateRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantDead := core.Dead
		if n == 3 {
			wantDead = core.Alive
		}
		if got := NextState(core.Dead, n); got != wantDead {
			t.Fatalf("dead cell with %d neighbours -> %v, want %v", n, got, wantDead)
		}

		wantAlive := core.Dead
		if n == 2 || n == 3 {
			wantAlive = core.Alive
		}
		if got := NextState(core.Alive, n); got != wantAlive {
			t.Fatalf("live cell with %d neighbours -> %v, want %v", n, got, wantAlive)
		}
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	e := NewEngine()
	for _, edges := range []core.EdgeMode{core.Bounded, core.Toroidal} {
		g := newGrid(t, 7, 5, edges)
		st := e.Step(g)
		if st.Alive != 0 || st.Changed {
			t.Fatalf("%v: empty grid step stats = %+v", edges, st)
		}
		if g.CountAlive() != 0 {
			t.Fatalf("%v: spontaneous generation on empty grid", edges)
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := newGrid(t, 6, 6, core.Bounded)
	stamp(t, g, "block", 2, 2)
	before := g.Clone()

	st := NewEngine().Step(g)
	if !g.Equal(before) {
		t.Fatal("block changed after one step")
	}
	if st.Changed || st.Alive != 4 {
		t.Fatalf("block step stats = %+v", st)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newGrid(t, 5, 5, core.Bounded)
	stamp(t, g, "blinker", 1, 2)
	e := NewEngine()

	e.Step(g)
	expectAlive(t, g, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "after first step")

	e.Step(g)
	expectAlive(t, g, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "after second step")
}

func TestBoundedEdgesDoNotWrap(t *testing.T) {
	// A vertical blinker against the left wall loses the column that would
	// have wrapped around.
	g := newGrid(t, 5, 5, core.Bounded)
	g.Set(core.Position{X: 0, Y: 1}, core.Alive)
	g.Set(core.Position{X: 0, Y: 2}, core.Alive)
	g.Set(core.Position{X: 0, Y: 3}, core.Alive)

	NewEngine().Step(g)
	expectAlive(t, g, map[[2]int]bool{{0, 2}: true, {1, 2}: true}, "bounded")
}

func TestToroidalEdgesWrap(t *testing.T) {
	g := newGrid(t, 5, 5, core.Toroidal)
	g.Set(core.Position{X: 0, Y: 1}, core.Alive)
	g.Set(core.Position{X: 0, Y: 2}, core.Alive)
	g.Set(core.Position{X: 0, Y: 3}, core.Alive)

	NewEngine().Step(g)
	expectAlive(t, g, map[[2]int]bool{{4, 2}: true, {0, 2}: true, {1, 2}: true}, "toroidal")
}

func TestNeighborsAtCorner(t *testing.T) {
	g := newGrid(t, 3, 3, core.Bounded)
	g.Fill(func(core.Position) core.Cell { return core.Alive })
	if n := Neighbors(g, core.Position{X: 0, Y: 0}); n != 3 {
		t.Fatalf("corner neighbours = %d, want 3", n)
	}
	if n := Neighbors(g, core.Position{X: 1, Y: 1}); n != 8 {
		t.Fatalf("centre neighbours = %d, want 8", n)
	}
}

func TestNextIsDeterministicAndPure(t *testing.T) {
	g := newGrid(t, 16, 16, core.Bounded)
	Randomize(g, core.NewRNG(7))
	saved := g.Clone()
	e := NewEngine()

	first := e.Next(g)
	if !g.Equal(saved) {
		t.Fatal("Next mutated its input")
	}
	second := e.Next(saved)
	if !first.Equal(second) {
		t.Fatal("same generation produced different successors")
	}
}

func TestGliderAdvancesTwoGenerationsDistinctly(t *testing.T) {
	g := newGrid(t, 8, 8, core.Bounded)
	stamp(t, g, "glider", 1, 1)
	e := NewEngine()

	g0 := g.Clone()
	e.Step(g)
	g1 := g.Clone()
	e.Step(g)
	if g1.Equal(g0) || g.Equal(g1) {
		t.Fatal("glider generations should all differ")
	}
	if g.CountAlive() != 5 {
		t.Fatalf("glider population = %d, want 5", g.CountAlive())
	}
}

func TestGliderReturnsShiftedAfterFourSteps(t *testing.T) {
	g := newGrid(t, 10, 10, core.Bounded)
	stamp(t, g, "glider", 1, 1)
	e := NewEngine()
	for i := 0; i < 4; i++ {
		e.Step(g)
	}

	want := newGrid(t, 10, 10, core.Bounded)
	stamp(t, want, "glider", 2, 2)
	if !g.Equal(want) {
		t.Fatal("glider did not move one cell diagonally after four steps")
	}
}
