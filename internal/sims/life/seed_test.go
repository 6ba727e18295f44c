package life

import (
	"testing"

	"tickgol/internal/core"
)

func TestRandomizeIsSeedDeterministic(t *testing.T) {
	a := newGrid(t, 32, 32, core.Bounded)
	b := newGrid(t, 32, 32, core.Bounded)
	Randomize(a, core.NewRNG(42))
	Randomize(b, core.NewRNG(42))
	if !a.Equal(b) {
		t.Fatal("same seed produced different boards")
	}

	c := newGrid(t, 32, 32, core.Bounded)
	Randomize(c, core.NewRNG(43))
	if a.Equal(c) {
		t.Fatal("different seeds produced identical boards")
	}

	alive := a.CountAlive()
	if alive < 400 || alive > 624 {
		t.Fatalf("random fill has %d/1024 live cells, expected roughly half", alive)
	}
}

func TestPerlinFillIsSeedDeterministic(t *testing.T) {
	a := newGrid(t, 40, 30, core.Bounded)
	b := newGrid(t, 40, 30, core.Bounded)
	PerlinFill(a, 9, perlinScale, perlinThreshold)
	PerlinFill(b, 9, perlinScale, perlinThreshold)
	if !a.Equal(b) {
		t.Fatal("same noise seed produced different boards")
	}
}

func TestSeedDeadClears(t *testing.T) {
	g := newGrid(t, 4, 4, core.Bounded)
	Randomize(g, core.NewRNG(1))
	Seed(g, FillDead, 1)
	if g.CountAlive() != 0 {
		t.Fatal("dead fill left live cells")
	}
}

func TestStampClipsOffGrid(t *testing.T) {
	g := newGrid(t, 3, 3, core.Bounded)
	stamp(t, g, "block", 2, 2)
	if g.CountAlive() != 1 {
		t.Fatalf("clipped block has %d cells, want 1", g.CountAlive())
	}
}
