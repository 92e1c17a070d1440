// Package voronoi partitions the grid by nearest seed under three distance
// metrics and traces the walls between regions.
package voronoi

import (
	"math"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Name is the registry key
const Name = "voronoi"

// DefaultSeedCount is how many seeds are scattered
const DefaultSeedCount = 16

// Metric measures distance between two points
type Metric int

// Supported metrics
const (
	Pythagoras Metric = iota
	Manhattan
	Chebyshev
)

// Metrics lists every metric in frame order
var Metrics = []Metric{Pythagoras, Manhattan, Chebyshev}

// String returns the metric name
func (m Metric) String() string {
	switch m {
	case Manhattan:
		return "Manhattan"
	case Chebyshev:
		return "Chebyshev"
	default:
		return "Pythagoras"
	}
}

// Distance between a and b under m
func (m Metric) Distance(a, b grid.Point) float64 {
	ga, gb := gruid.Point{X: a.X, Y: a.Y}, gruid.Point{X: b.X, Y: b.Y}
	switch m {
	case Manhattan:
		return float64(paths.DistanceManhattan(ga, gb))
	case Chebyshev:
		return float64(paths.DistanceChebyshev(ga, gb))
	default:
		return a.DistanceTo(b)
	}
}

// Membership assigns every cell the index of its nearest seed. The lowest
// seed index wins ties.
func Membership(seeds []grid.Point, m Metric) []int {
	out := make([]int, grid.Size)
	for i := range out {
		p := grid.PointOf(i)
		best, bestDist := 0, math.Inf(1)
		for s, seed := range seeds {
			if d := m.Distance(p, seed); d < bestDist {
				best, bestDist = s, d
			}
		}
		out[i] = best
	}
	return out
}

// Paint draws every cell open in the color of its region
func Paint(membership []int) *grid.Grid {
	g := grid.New()
	for i, m := range membership {
		g.SetIdx(i, grid.GlyphOpen, grid.IterationColor(m))
	}
	return g
}

// Boundaries opens every interior cell whose region differs from the cell
// to its right or below. The border ring stays solid.
func Boundaries(membership []int) *grid.Grid {
	g := grid.New()
	for i := range membership {
		p := grid.PointOf(i)
		if p.X == 0 || p.X == grid.Width-1 || p.Y == 0 || p.Y == grid.Height-1 {
			continue
		}
		if membership[i] != membership[i+1] || membership[i] != membership[i+grid.Width] {
			g.SetIdx(i, grid.GlyphOpen, grid.Yellow)
		}
	}
	return g
}

// Options tunes the generator. Explicit Seeds override SeedCount.
type Options struct {
	SeedCount int
	Seeds     []grid.Point
}

// DefaultOptions scatters DefaultSeedCount random seeds
func DefaultOptions() Options {
	return Options{SeedCount: DefaultSeedCount}
}

// Validate requires a positive SeedCount when no seeds are given
func (o Options) Validate() error {
	if len(o.Seeds) > 0 {
		return nil
	}
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("SeedCount", o.SeedCount, vb)
	return vb.Build()
}

// Generator records the seeds, one membership map per metric and the walls
type Generator struct {
	src  rng.Source
	opts Options
}

// New returns a generator using opts
func New(src rng.Source, opts Options) *Generator {
	return &Generator{src: src, opts: opts}
}

// Setup scatters the seeds unless they were given
func (gen *Generator) Setup() {
	if len(gen.opts.Seeds) > 0 || gen.opts.SeedCount <= 0 {
		return
	}
	gen.opts.Seeds = make([]grid.Point, gen.opts.SeedCount)
	for i := range gen.opts.Seeds {
		gen.opts.Seeds[i] = grid.Pt(gen.src.Range(1, grid.Width-1), gen.src.Range(1, grid.Height-1))
	}
}

// Build partitions the grid once per metric
func (gen *Generator) Build() (*mapgen.Result, error) {
	if err := gen.opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid voronoi options")
	}

	rec := frames.NewRecorder(len(Metrics) + 2)

	g := grid.New()
	for i, s := range gen.opts.Seeds {
		g.Set(s, grid.GlyphMarker, grid.IterationColor(i))
	}
	rec.Record(g, "Initial Seeds")

	var euclidean []int
	for _, m := range Metrics {
		membership := Membership(gen.opts.Seeds, m)
		if m == Pythagoras {
			euclidean = membership
		}
		rec.Recordf(Paint(membership), "Closest Membership (%s)", m)
	}

	g = Boundaries(euclidean)
	rec.Record(g, "Voronoi Boundary Walls")

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(Name, "Nearest-seed regions under three metrics, then region walls",
		func(src rng.Source) mapgen.Generator {
			return New(src, DefaultOptions())
		})
}
