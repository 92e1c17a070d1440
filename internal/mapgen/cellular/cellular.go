// Package cellular grows caves by smoothing random noise with a cellular
// automaton.
package cellular

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Name is the registry key
const Name = "cellular"

const (
	// SolidPercent is the chance a seeded cell starts solid
	SolidPercent = 55
	// DefaultIterations is how many smoothing passes Build runs
	DefaultIterations = 10
)

// OpenColor paints cells the automaton opens
var OpenColor = grid.Green

// Seed fills every cell independently: solid with SolidPercent chance,
// otherwise open in openColor
func Seed(src rng.Source, g *grid.Grid, openColor grid.Color) {
	for i := 0; i < g.Len(); i++ {
		if src.Range(0, 100) < SolidPercent {
			g.SetIdx(i, grid.GlyphSolid, grid.DarkGray)
		} else {
			g.SetIdx(i, grid.GlyphOpen, openColor)
		}
	}
}

// NextState applies the rule to a solid-neighbour count: 0 closes, 1 to 4
// opens, 5 or more closes
func NextState(solidNeighbors int) rune {
	switch {
	case solidNeighbors == 0:
		return grid.GlyphSolid
	case solidNeighbors < 5:
		return grid.GlyphOpen
	default:
		return grid.GlyphSolid
	}
}

// counter counts solid cells around a point
type counter struct {
	g  *grid.Grid
	nb paths.Neighbors
}

func (c *counter) solid(p gruid.Point) bool {
	return c.g.GlyphAt(grid.Pt(p.X, p.Y)) == grid.GlyphSolid
}

func (c *counter) count(p grid.Point) int {
	return len(c.nb.All(gruid.Point{X: p.X, Y: p.Y}, c.solid))
}

// SolidNeighbors counts the solid cells among the 8 neighbours of p.
// Neighbours outside the grid do not count.
func SolidNeighbors(g *grid.Grid, p grid.Point) int {
	c := &counter{g: g}
	return c.count(p)
}

// Step runs one smoothing pass. Counts are read from a snapshot so the pass
// is order independent; the border ring is never rewritten.
func Step(g *grid.Grid) {
	c := &counter{g: g.Clone()}
	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			p := grid.Pt(x, y)
			if NextState(c.count(p)) == grid.GlyphOpen {
				g.Set(p, grid.GlyphOpen, OpenColor)
			} else {
				g.Set(p, grid.GlyphSolid, grid.DarkGray)
			}
		}
	}
}

// Cave seeds a fresh grid and smooths it without recording frames
func Cave(src rng.Source, iterations int) *grid.Grid {
	g := grid.New()
	Seed(src, g, OpenColor)
	for i := 0; i < iterations; i++ {
		Step(g)
	}
	return g
}

// Generator records the noise and every smoothing pass
type Generator struct {
	src        rng.Source
	iterations int
}

// New returns a generator running iterations passes
func New(src rng.Source, iterations int) *Generator {
	return &Generator{src: src, iterations: iterations}
}

// Setup is a no-op
func (gen *Generator) Setup() {}

// Build seeds, then smooths
func (gen *Generator) Build() (*mapgen.Result, error) {
	g := grid.New()
	rec := frames.NewRecorder(gen.iterations + 1)

	Seed(gen.src, g, OpenColor)
	rec.Recordf(g, "Random Noise - %d%% Walls", SolidPercent)

	for i := 0; i < gen.iterations; i++ {
		Step(g)
		rec.Recordf(g, "Iteration %d", i+1)
	}

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(Name, "Cellular automaton caves smoothed from random noise",
		func(src rng.Source) mapgen.Generator {
			return New(src, DefaultIterations)
		})
}
