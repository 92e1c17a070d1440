package dla

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Name is the registry key of the free-wandering variant
const Name = "dla"

// Generator drops walkers that wander until they hit the cluster
type Generator struct {
	src rng.Source
}

// New returns a free-wandering generator
func New(src rng.Source) *Generator {
	return &Generator{src: src}
}

// Setup is a no-op
func (gen *Generator) Setup() {}

// Build grows the cluster to TargetOpen cells, one frame per walker
func (gen *Generator) Build() (*mapgen.Result, error) {
	g := grid.New()
	rec := frames.NewRecorder(TargetOpen)

	SeedCluster(g)
	rec.Record(g, "Starting Seed")

	for g.Count(grid.GlyphOpen) < TargetOpen {
		g.Promote(grid.StateActive, grid.StateSettled, grid.Green)
		if stick, ok := Wander(gen.src, g, dropPoint(gen.src)); ok {
			g.SetTile(stick, active)
		}
		rec.Record(g, "Iteration")
	}

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

// Wander staggers from start while the walker stands on solid ground and
// returns the last solid cell before it touched open space. A walker that
// starts on open space returns start. It reports false when the walk hits
// MaxWalkSteps.
func Wander(src rng.Source, g *grid.Grid, start grid.Point) (grid.Point, bool) {
	digger, prev := start, start
	for steps := 0; g.GlyphAt(digger) == grid.GlyphSolid; steps++ {
		if steps >= MaxWalkSteps {
			return prev, false
		}
		prev = digger
		digger = Stagger(src, digger)
	}
	return prev, true
}

func init() {
	mapgen.Register(Name, "Diffusion-limited aggregation from a central seed",
		func(src rng.Source) mapgen.Generator {
			return New(src)
		})
}
