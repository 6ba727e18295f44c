package life

import "tickgol/internal/core"

// NextState applies Conway's B3/S23 rule to a cell with n live neighbours.
func NextState(c core.Cell, n int) core.Cell {
	if n == 3 || (c == core.Alive && n == 2) {
		return core.Alive
	}
	return core.Dead
}

// Stats summarises the generation produced by a step.
type Stats struct {
	Alive   int
	Changed bool
}

// Engine evolves grids one generation at a time. It keeps a side buffer so
// repeated steps on same-sized grids do not allocate.
type Engine struct {
	nxt []core.Cell
}

// NewEngine returns an engine with no buffer yet.
func NewEngine() *Engine { return &Engine{} }

// Neighbors counts live cells in the Moore neighbourhood of p, honouring the
// grid's edge mode. Positions that do not resolve count as dead.
func Neighbors(g *core.Grid, p core.Position) int {
	n := 0
	for _, d := range core.MooreOffsets {
		if c, ok := g.Lookup(p.Add(d)); ok && c == core.Alive {
			n++
		}
	}
	return n
}

// Step advances g by one generation. Every next state is computed from the
// current generation before any cell is committed.
func (e *Engine) Step(g *core.Grid) Stats {
	if cap(e.nxt) < g.Len() {
		e.nxt = make([]core.Cell, g.Len())
	}
	nxt := e.nxt[:g.Len()]

	var st Stats
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := core.Position{X: x, Y: y}
			cur := g.At(p)
			next := NextState(cur, Neighbors(g, p))
			if next == core.Alive {
				st.Alive++
			}
			st.Changed = st.Changed || next != cur
			nxt[y*w+x] = next
		}
	}
	g.Commit(nxt)
	return st
}

// Next returns the generation after g without modifying g.
func (e *Engine) Next(g *core.Grid) *core.Grid {
	out := g.Clone()
	e.Step(out)
	return out
}
