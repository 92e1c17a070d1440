// Package drunkard digs caves with random walkers that restart from
// already dug cells until a third of the grid is open.
package drunkard

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Name is the registry key
const Name = "drunkard"

const (
	// MaxSteps caps one walk. The walker stops once it has taken more
	// than MaxSteps steps.
	MaxSteps = 200
	// TargetOpen is the open cell count that ends the build
	TargetOpen = grid.Size / 3
)

var directions = [4]grid.Point{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// Walk staggers from start, opening every cell it enters as active. It
// stops on leaving the grid or after MaxSteps. The start cell is not dug.
func Walk(src rng.Source, g *grid.Grid, start grid.Point) int {
	steps, pos := 0, start
	for {
		pos = pos.Add(directions[src.Range(0, 4)])
		if !g.SetTile(pos, grid.Tile{Glyph: grid.GlyphOpen, Color: grid.Red, State: grid.StateActive}) {
			return steps
		}
		steps++
		if steps > MaxSteps {
			return steps
		}
	}
}

// Generator is the drunkard's walk generator
type Generator struct {
	src rng.Source
}

// New returns a generator
func New(src rng.Source) *Generator {
	return &Generator{src: src}
}

// Setup is a no-op
func (gen *Generator) Setup() {}

// Build walks from the center, then from random open cells
func (gen *Generator) Build() (*mapgen.Result, error) {
	g := grid.New()
	rec := frames.NewRecorder(64)
	center := grid.Pt(grid.Width/2, grid.Height/2)

	rec.Record(g, "Start Solid")
	Walk(gen.src, g, center)
	rec.Record(g, "First Drunken Digger")

	for i := 2; g.Count(grid.GlyphOpen) < TargetOpen; i++ {
		g.Promote(grid.StateActive, grid.StateSettled, grid.Green)

		start := center
		if idx, ok := rng.SliceEntry(gen.src, g.Indices(grid.GlyphOpen)); ok {
			start = grid.PointOf(idx)
		}
		Walk(gen.src, g, start)
		rec.Recordf(g, "Drunken Digger %d", i)
	}

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(Name, "Random walkers dig until a third of the map is open",
		func(src rng.Source) mapgen.Generator {
			return New(src)
		})
}
