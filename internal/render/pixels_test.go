package render

import (
	"image/color"
	"testing"

	"tickgol/internal/core"
)

func TestDisplayIndex(t *testing.T) {
	if DisplayIndex(core.Alive) != TileAlive || DisplayIndex(core.Dead) != TileDead {
		t.Fatal("display mapping changed")
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	g, err := core.NewGrid(2, 1, core.Bounded)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(core.Position{X: 1, Y: 0}, core.Alive)
	palette := DefaultPalette()

	buf := make([]byte, 8)
	fillPaletteRGBA(buf, g, palette)
	dead, alive := palette[TileDead], palette[TileAlive]
	if buf[0] != dead.R || buf[1] != dead.G || buf[2] != dead.B || buf[3] != dead.A {
		t.Fatalf("dead pixel = %v", buf[:4])
	}
	if buf[4] != alive.R || buf[5] != alive.G || buf[6] != alive.B || buf[7] != alive.A {
		t.Fatalf("alive pixel = %v", buf[4:])
	}

	short := []color.RGBA{{R: 9, A: 255}}
	fillPaletteRGBA(buf, g, short)
	if buf[4] != 9 || buf[0] != 9 {
		t.Fatalf("short palette not clamped: %v", buf)
	}

	fillPaletteRGBA(buf, g, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette left byte %d = %d", i, b)
		}
	}
}
