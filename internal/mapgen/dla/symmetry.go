package dla

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// SymmetryName is the registry key of the mirrored variant
const SymmetryName = "dla-symmetry"

// SymmetryGenerator walks each walker straight at the center and mirrors
// where it sticks across the vertical center line
type SymmetryGenerator struct {
	src rng.Source
}

// NewSymmetry returns a mirrored generator
func NewSymmetry(src rng.Source) *SymmetryGenerator {
	return &SymmetryGenerator{src: src}
}

// Setup is a no-op
func (gen *SymmetryGenerator) Setup() {}

// Build grows the cluster to TargetOpen cells
func (gen *SymmetryGenerator) Build() (*mapgen.Result, error) {
	g := grid.New()
	rec := frames.NewRecorder(TargetOpen / 2)

	SeedCluster(g)
	rec.Record(g, "Starting Seed")

	for g.Count(grid.GlyphOpen) < TargetOpen {
		g.Promote(grid.StateActive, grid.StateSettled, grid.Green)
		Mirror(g, Approach(g, dropPoint(gen.src)))
		rec.Record(g, "Iteration")
	}

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

// Approach follows the line from start to the center while on solid
// ground and returns the last solid cell
func Approach(g *grid.Grid, start grid.Point) grid.Point {
	path := Line(start, center())
	digger, prev := start, start
	for len(path) > 0 && g.GlyphAt(digger) == grid.GlyphSolid {
		prev = digger
		digger, path = path[0], path[1:]
	}
	return prev
}

// Mirror opens p and its reflection across the center column. A point on
// the center column opens once.
func Mirror(g *grid.Grid, p grid.Point) {
	cx := grid.Width / 2
	if p.X == cx {
		g.SetTile(p, active)
		return
	}
	d := abs(cx - p.X)
	g.SetTile(grid.Pt(cx-d, p.Y), active)
	g.SetTile(grid.Pt(cx+d, p.Y), active)
}

func init() {
	mapgen.Register(SymmetryName, "Aggregation along lines to the center, mirrored left to right",
		func(src rng.Source) mapgen.Generator {
			return NewSymmetry(src)
		})
}
