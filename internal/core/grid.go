package core

import (
	"fmt"
	"iter"
)

// Cell is the state of a single board position.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead Cell = iota
	// Alive marks a populated cell.
	Alive
)

// String returns a short label for the cell state.
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Position addresses a cell on the grid.
type Position struct {
	X, Y int
}

// In reports whether p lies inside a w*h grid.
func (p Position) In(w, h int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

// Add offsets p by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// MooreOffsets lists the eight neighbour offsets in row-major order.
var MooreOffsets = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// EdgeMode selects how neighbour lookups behave at the border.
type EdgeMode uint8

const (
	// Bounded treats positions outside the grid as absent.
	Bounded EdgeMode = iota
	// Toroidal wraps lookups to the opposite edge.
	Toroidal
)

// String returns the flag-style name of the edge mode.
func (m EdgeMode) String() string {
	if m == Toroidal {
		return "toroidal"
	}
	return "bounded"
}

// ParseEdgeMode converts a flag value into an EdgeMode.
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch s {
	case "", "bounded":
		return Bounded, nil
	case "toroidal", "wrap":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("%w: unknown edge mode %q", ErrInvalidConfiguration, s)
}

// Grid stores a 2D board of cells in row-major order. Its dimensions never
// change after construction.
type Grid struct {
	w, h  int
	edges EdgeMode
	cells []Cell
}

// NewGrid allocates an all-dead grid. Dimensions must be positive.
func NewGrid(w, h int, edges EdgeMode) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d must be positive", ErrInvalidConfiguration, w, h)
	}
	return &Grid{w: w, h: h, edges: edges, cells: make([]Cell, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Edges returns the neighbour lookup mode.
func (g *Grid) Edges() EdgeMode { return g.edges }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Lookup resolves p against the edge mode. ok is false when p falls off a
// bounded grid.
func (g *Grid) Lookup(p Position) (c Cell, ok bool) {
	if !p.In(g.w, g.h) {
		if g.edges != Toroidal {
			return Dead, false
		}
		p.X, p.Y = g.Wrap(p.X, p.Y)
	}
	return g.cells[g.Index(p.X, p.Y)], true
}

// At returns the cell at p, or Dead when p is off the grid.
func (g *Grid) At(p Position) Cell {
	if !p.In(g.w, g.h) {
		return Dead
	}
	return g.cells[g.Index(p.X, p.Y)]
}

// Set writes c at p. Positions off the grid are ignored.
func (g *Grid) Set(p Position, c Cell) {
	if !p.In(g.w, g.h) {
		return
	}
	g.cells[g.Index(p.X, p.Y)] = c
}

// Commit replaces every cell from next in a single pass. next must hold
// exactly Len cells.
func (g *Grid) Commit(next []Cell) {
	if len(next) != len(g.cells) {
		panic(fmt.Sprintf("core: commit of %d cells into %dx%d grid", len(next), g.w, g.h))
	}
	copy(g.cells, next)
}

// Snapshot returns a copy of the cells in row-major order.
func (g *Grid) Snapshot() []Cell {
	return append([]Cell(nil), g.cells...)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, edges: g.edges, cells: g.Snapshot()}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// All yields every position and its state in row-major order.
func (g *Grid) All() iter.Seq2[Position, Cell] {
	return func(yield func(Position, Cell) bool) {
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				if !yield(Position{X: x, Y: y}, g.cells[y*g.w+x]) {
					return
				}
			}
		}
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Position, c Cell)) {
	for p, c := range g.All() {
		fn(p, c)
	}
}

// CountAlive returns the number of live cells.
func (g *Grid) CountAlive() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Fill sets every cell using fn.
func (g *Grid) Fill(fn func(p Position) Cell) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.cells[y*g.w+x] = fn(Position{X: x, Y: y})
		}
	}
}
