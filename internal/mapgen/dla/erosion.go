package dla

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/rooms"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// ErosionName is the registry key of the erosion variant
const ErosionName = "dla-erosion"

// ErosionIterations is how many walkers erode the rooms map
const ErosionIterations = 500

// ErosionGenerator starts from a rooms map and lets walkers leave open
// space, opening the first solid cell each one reaches
type ErosionGenerator struct {
	src        rng.Source
	iterations int
}

// NewErosion returns an erosion generator running iterations walkers
func NewErosion(src rng.Source, iterations int) *ErosionGenerator {
	return &ErosionGenerator{src: src, iterations: iterations}
}

// Setup is a no-op
func (gen *ErosionGenerator) Setup() {}

// Build places rooms quietly, then erodes them
func (gen *ErosionGenerator) Build() (*mapgen.Result, error) {
	g := grid.New()
	rec := frames.NewRecorder(gen.iterations + 1)

	rooms.Place(gen.src, g, rooms.Quiet(rooms.DefaultAttempts), nil)
	g.Recolor(grid.GlyphOpen, grid.Yellow)
	rec.Record(g, "Start with a traditional set of rooms")

	for i := 0; i < gen.iterations; i++ {
		g.Promote(grid.StateActive, grid.StateSettled, grid.Green)
		if idx, ok := rng.SliceEntry(gen.src, g.Indices(grid.GlyphOpen)); ok {
			if exit, ok := Escape(gen.src, g, grid.PointOf(idx)); ok {
				g.SetTile(exit, active)
			}
		}
		rec.Recordf(g, "Iteration %d", i)
	}

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

// Escape staggers from start while on open ground and returns the first
// non-open cell reached. It reports false when the walk hits MaxWalkSteps.
func Escape(src rng.Source, g *grid.Grid, start grid.Point) (grid.Point, bool) {
	digger := start
	for steps := 0; g.GlyphAt(digger) == grid.GlyphOpen; steps++ {
		if steps >= MaxWalkSteps {
			return digger, false
		}
		digger = Stagger(src, digger)
	}
	return digger, true
}

func init() {
	mapgen.Register(ErosionName, "Rooms and corridors eroded outward by aggregation walkers",
		func(src rng.Source) mapgen.Generator {
			return NewErosion(src, ErosionIterations)
		})
}
