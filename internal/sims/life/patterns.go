package life

import (
	"sort"

	"tickgol/internal/core"
)

// Pattern is a named set of live offsets relative to an origin.
type Pattern struct {
	Name  string
	Cells []core.Position
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name. Empty names are ignored.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames returns the registered names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for k := range patterns {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the pattern's cells alive at origin. Cells landing off the grid
// are dropped.
func Stamp(g *core.Grid, p Pattern, origin core.Position) {
	for _, c := range p.Cells {
		g.Set(origin.Add(c), core.Alive)
	}
}

func init() {
	Register(Pattern{Name: "block", Cells: []core.Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}})
	Register(Pattern{Name: "blinker", Cells: []core.Position{{0, 0}, {1, 0}, {2, 0}}})
	Register(Pattern{Name: "toad", Cells: []core.Position{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}})
	Register(Pattern{Name: "beacon", Cells: []core.Position{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}})
	Register(Pattern{Name: "glider", Cells: []core.Position{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}})
}
