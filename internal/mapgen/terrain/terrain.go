// Package terrain turns noise fields into overworld-style maps of water,
// grass and mountains, and registers the noise demonstration generators.
package terrain

import (
	"strconv"

	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
)

// Classification thresholds
const (
	WaterBelow    = 0.0
	MountainAbove = 0.5
)

// Classify maps a noise sample to a terrain tile. With waterRamp set, deeper
// water is darker; otherwise water is flat blue.
func Classify(n float64, waterRamp bool) grid.Tile {
	switch {
	case n < WaterBelow:
		if waterRamp {
			return grid.Tile{Glyph: grid.GlyphWater, Color: grid.RGB(0, 0, n+0.75)}
		}
		return grid.Tile{Glyph: grid.GlyphWater, Color: grid.Blue}
	case n < MountainAbove:
		return grid.Tile{Glyph: grid.GlyphGrass, Color: grid.RGB(0, n+0.25, 0)}
	default:
		return grid.Tile{Glyph: grid.GlyphMountain, Color: grid.RGB(n, n, n)}
	}
}

// Grayscale maps a [-1,1] sample to an open tile shaded from black to white
func Grayscale(n float64) grid.Tile {
	v := (n + 1) / 2
	return grid.Tile{Glyph: grid.GlyphOpen, Color: grid.RGB(v, v, v)}
}

// Paint samples f at every cell and writes the tile chosen by toTile
func Paint(f noise.Field, toTile func(float64) grid.Tile) *grid.Grid {
	g := grid.New()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			g.SetTile(grid.Pt(x, y), toTile(f.Eval(float64(x), float64(y))))
		}
	}
	return g
}

// Scaled samples f at (x*sx, y*sy)
func Scaled(f noise.Field, sx, sy float64) noise.Field {
	return noise.FieldFunc(func(x, y float64) float64 {
		return f.Eval(x*sx, y*sy)
	})
}

// Zoom sweep bounds
const (
	sweepStart = float32(1.0)
	sweepStep  = float32(0.01)
	sweepFloor = float32(0.1)
)

// ScaleSweep lists the zoom levels from 1.0 down by 0.01 while above 0.1.
// The steps accumulate in single precision so the labels read the way the
// values actually drift.
func ScaleSweep() []float32 {
	var scales []float32
	for s := sweepStart; s > sweepFloor; s -= sweepStep {
		scales = append(scales, s)
	}
	return scales
}

// ScaleLabel formats a zoom level for a frame label
func ScaleLabel(s float32) string {
	return "Scale " + strconv.FormatFloat(float64(s), 'g', -1, 32)
}

// Options shared by the terrain generators
type Options struct {
	Basis noise.Basis
}

// DefaultOptions uses simplex noise
func DefaultOptions() Options {
	return Options{Basis: noise.BasisSimplex}
}

func waterRampTile(n float64) grid.Tile {
	return Classify(n, true)
}

func flatWaterTile(n float64) grid.Tile {
	return Classify(n, false)
}
