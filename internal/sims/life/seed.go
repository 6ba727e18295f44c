package life

import (
	"github.com/aquilax/go-perlin"

	"tickgol/internal/core"
)

// Fill names an initial board layout.
type Fill string

const (
	FillDead   Fill = "dead"
	FillRandom Fill = "random"
	FillPerlin Fill = "perlin"
)

// Perlin noise parameters. Alpha and beta follow the go-perlin defaults.
const (
	perlinAlpha     = 2
	perlinBeta      = 2
	perlinOctaves   = 3
	perlinScale     = 0.15
	perlinThreshold = 0.05
)

// Randomize sets every cell alive with independent probability one half.
func Randomize(g *core.Grid, rng *core.RNG) {
	g.Fill(func(core.Position) core.Cell {
		if rng.Bool() {
			return core.Alive
		}
		return core.Dead
	})
}

// PerlinFill seeds clustered live regions: a cell is alive where the noise
// sampled at (x*scale, y*scale) exceeds threshold.
func PerlinFill(g *core.Grid, seed int64, scale, threshold float64) {
	if scale <= 0 {
		scale = perlinScale
	}
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	g.Fill(func(p core.Position) core.Cell {
		if noise.Noise2D(float64(p.X)*scale, float64(p.Y)*scale) > threshold {
			return core.Alive
		}
		return core.Dead
	})
}

// Seed lays out g according to fill. Unknown fills leave the board dead.
func Seed(g *core.Grid, fill Fill, seed int64) {
	switch fill {
	case FillRandom:
		Randomize(g, core.NewRNG(seed))
	case FillPerlin:
		PerlinFill(g, seed, perlinScale, perlinThreshold)
	default:
		g.Clear()
	}
}
