// Package combination stitches a room map and a cave together and joins
// the halves with a maze prefab
package combination

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/bsp"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/cellular"
	"github.com/KirkDiggler/rpg-mapgen/internal/prefab"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Name is the registry key
const Name = "combination"

// CaveIterations is how far the right half is smoothed
const CaveIterations = 4

// Seam is the first column taken from the cave
const Seam = grid.Width / 2

// PrefabBase is where the maze prefab straddles the seam
var PrefabBase = grid.Pt(Seam-4, 0)

func yellow(int) grid.Color { return grid.Yellow }

// Generator builds both halves, merges them and stamps the seam
type Generator struct {
	src rng.Source
}

// New returns the generator
func New(src rng.Source) *Generator {
	return &Generator{src: src}
}

// Setup is a no-op
func (gen *Generator) Setup() {}

// Build records each half, the merge and the stamped result
func (gen *Generator) Build() (*mapgen.Result, error) {
	rec := frames.NewRecorder(4)

	rooms := grid.New()
	bsp.Place(gen.src, rooms, bsp.Options{
		Attempts:      bsp.DefaultAttempts,
		RoomColor:     yellow,
		CorridorColor: grid.Yellow,
	}, nil)
	rec.Record(rooms, "Make some sub-division rooms")

	cave := grid.New()
	cellular.Seed(gen.src, cave, grid.Yellow)
	for range CaveIterations {
		cellular.Step(cave)
	}
	rec.Record(cave, "Make a Cellular Automata Map")

	g := Merge(rooms, cave, Seam)
	rec.Record(g, "Why Not Both?")

	prefab.Stamp(g, prefab.Combination, PrefabBase, prefab.InvertMapping)
	rec.Record(g, "Just Add Prefab")

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

// Merge takes columns left of seam from left and the rest from right
func Merge(left, right *grid.Grid, seam int) *grid.Grid {
	g := grid.New()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			src := right
			if x < seam {
				src = left
			}
			idx := grid.Idx(x, y)
			g.SetTile(grid.Pt(x, y), src.Tile(idx))
		}
	}
	return g
}

func init() {
	mapgen.Register(Name, "BSP rooms on the left, a cave on the right, joined by a maze prefab",
		func(src rng.Source) mapgen.Generator {
			return New(src)
		})
}
