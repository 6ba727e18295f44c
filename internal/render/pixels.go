package render

import (
	"image/color"

	"tickgol/internal/core"
)

// Tile indices for each cell state, matching the tile sheet layout.
const (
	TileDead  = 4
	TileAlive = 5
)

// DisplayIndex maps a cell state to its tile index.
func DisplayIndex(c core.Cell) int {
	if c == core.Alive {
		return TileAlive
	}
	return TileDead
}

// DefaultPalette colours the two tiles used by the board.
func DefaultPalette() []color.RGBA {
	palette := make([]color.RGBA, TileAlive+1)
	palette[TileDead] = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	palette[TileAlive] = color.RGBA{R: 120, G: 220, B: 130, A: 255}
	return palette
}

// fillPaletteRGBA converts the grid into RGBA pixels using a palette indexed
// by DisplayIndex. When the palette is empty the buffer is cleared to
// transparent black.
func fillPaletteRGBA(buf []byte, g *core.Grid, palette []color.RGBA) {
	last := len(palette) - 1
	for p, c := range g.All() {
		base := g.Index(p.X, p.Y) * 4
		if last < 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		idx := DisplayIndex(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
