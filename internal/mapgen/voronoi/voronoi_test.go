package voronoi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/voronoi"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

func TestMetricDistance(t *testing.T) {
	a, b := grid.Pt(0, 0), grid.Pt(3, 4)
	assert.InDelta(t, 5.0, voronoi.Pythagoras.Distance(a, b), 1e-9)
	assert.Equal(t, 7.0, voronoi.Manhattan.Distance(a, b))
	assert.Equal(t, 4.0, voronoi.Chebyshev.Distance(a, b))
}

func TestMembershipTieGoesToFirstSeed(t *testing.T) {
	seeds := []grid.Point{grid.Pt(10, 10), grid.Pt(12, 10)}
	for _, m := range voronoi.Metrics {
		membership := voronoi.Membership(seeds, m)
		assert.Equal(t, 0, membership[grid.Idx(11, 10)], m.String())
		assert.Equal(t, 1, membership[grid.Idx(13, 10)], m.String())
	}
}

func TestOppositeCornersFrontier(t *testing.T) {
	seeds := []grid.Point{grid.Pt(0, 0), grid.Pt(grid.Width-1, grid.Height-1)}
	membership := voronoi.Membership(seeds, voronoi.Pythagoras)

	// Along every row membership switches from seed 0 to seed 1 at most once.
	for y := 0; y < grid.Height; y++ {
		switches := 0
		for x := 1; x < grid.Width; x++ {
			prev, cur := membership[grid.Idx(x-1, y)], membership[grid.Idx(x, y)]
			require.LessOrEqual(t, prev, cur, "row %d is not monotonic", y)
			if prev != cur {
				switches++
			}
		}
		require.LessOrEqual(t, switches, 1)
	}
	for x := 0; x < grid.Width; x++ {
		for y := 1; y < grid.Height; y++ {
			require.LessOrEqual(t, membership[grid.Idx(x, y-1)], membership[grid.Idx(x, y)], "column %d", x)
		}
	}

	walls := voronoi.Boundaries(membership)
	open := walls.Indices(grid.GlyphOpen)
	require.NotEmpty(t, open)
	for _, idx := range open {
		p := grid.PointOf(idx)
		a := voronoi.Pythagoras.Distance(p, seeds[0])
		b := voronoi.Pythagoras.Distance(p, seeds[1])
		assert.InDelta(t, a, b, 2.0, "frontier cell %v is roughly equidistant", p)
	}
}

func TestBoundariesKeepBorderSolid(t *testing.T) {
	seeds := []grid.Point{grid.Pt(5, 5), grid.Pt(70, 40), grid.Pt(40, 3)}
	walls := voronoi.Boundaries(voronoi.Membership(seeds, voronoi.Pythagoras))

	for x := 0; x < grid.Width; x++ {
		assert.Equal(t, grid.GlyphSolid, walls.GlyphAt(grid.Pt(x, 0)))
		assert.Equal(t, grid.GlyphSolid, walls.GlyphAt(grid.Pt(x, grid.Height-1)))
	}
	for y := 0; y < grid.Height; y++ {
		assert.Equal(t, grid.GlyphSolid, walls.GlyphAt(grid.Pt(0, y)))
		assert.Equal(t, grid.GlyphSolid, walls.GlyphAt(grid.Pt(grid.Width-1, y)))
	}
}

func TestBuild(t *testing.T) {
	gen := voronoi.New(rng.New(4), voronoi.DefaultOptions())
	result, err := mapgen.Run(gen)
	require.NoError(t, err)

	require.Len(t, result.Frames, 5)
	assert.Equal(t, []string{
		"Initial Seeds",
		"Closest Membership (Pythagoras)",
		"Closest Membership (Manhattan)",
		"Closest Membership (Chebyshev)",
		"Voronoi Boundary Walls",
	}, result.Frames.Labels())

	assert.LessOrEqual(t, result.Frames[0].Grid.Count(grid.GlyphMarker), voronoi.DefaultSeedCount)
	assert.Equal(t, grid.Size, result.Frames[1].Grid.Count(grid.GlyphOpen))
	assert.True(t, result.Frames[4].Grid.Equal(result.Grid))
}

func TestExplicitSeedsSkipRandomness(t *testing.T) {
	opts := voronoi.Options{Seeds: []grid.Point{grid.Pt(1, 1), grid.Pt(60, 30)}}
	a, err := mapgen.Run(voronoi.New(rng.New(1), opts))
	require.NoError(t, err)
	b, err := mapgen.Run(voronoi.New(rng.New(2), opts))
	require.NoError(t, err)

	assert.True(t, a.Grid.Equal(b.Grid))
	assert.Equal(t, 2, a.Frames[0].Grid.Count(grid.GlyphMarker))
}

func TestBuildRejectsNonPositiveSeedCount(t *testing.T) {
	gen := voronoi.New(rng.New(1), voronoi.Options{SeedCount: -2})
	gen.Setup()

	_, err := gen.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "SeedCount: must be positive")
}
