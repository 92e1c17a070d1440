package pathing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mapgen/internal/carve"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/pathing"
)

type PathingTestSuite struct {
	suite.Suite
	g *grid.Grid
}

func TestPathingSuite(t *testing.T) {
	suite.Run(t, new(PathingTestSuite))
}

func (s *PathingTestSuite) SetupTest() {
	s.g = grid.New()
}

func (s *PathingTestSuite) TestWalkable() {
	for _, glyph := range []rune{grid.GlyphOpen, grid.GlyphPlayer, grid.GlyphExit, grid.GlyphMarker} {
		s.True(pathing.Walkable(grid.Tile{Glyph: glyph}), string(glyph))
	}
	for _, glyph := range []rune{grid.GlyphSolid, grid.GlyphWater, grid.GlyphDanger, grid.GlyphTreasure} {
		s.False(pathing.Walkable(grid.Tile{Glyph: glyph}), string(glyph))
	}
}

func (s *PathingTestSuite) TestDistanceFieldKnownLength() {
	// An L-shaped corridor: 10 cells east then 5 cells south.
	carve.HorizontalTunnel(s.g, 5, 15, 5, grid.Purple)
	carve.VerticalTunnel(s.g, 5, 10, 15, grid.Purple)

	source := grid.Idx(5, 5)
	field := pathing.DistanceField(s.g, []int{source}, 1024)

	s.Equal(0.0, field[source])
	s.Equal(10.0, field[grid.Idx(15, 5)])
	s.Equal(15.0, field[grid.Idx(15, 10)])
	s.False(pathing.Reachable(field[grid.Idx(0, 0)]), "solid cells are unreachable")
}

func (s *PathingTestSuite) TestDistanceFieldWallRing() {
	carve.Rect(s.g, grid.WithSize(2, 2, 5, 5), grid.White)
	carve.Rect(s.g, grid.WithSize(30, 30, 10, 10), grid.White)
	// Solid ring around an island inside the second room.
	grid.WithSize(33, 33, 5, 5).Each(func(p grid.Point) { s.g.Set(p, grid.GlyphSolid, grid.DarkGray) })
	s.g.Set(grid.Pt(35, 35), grid.GlyphOpen, grid.White)

	field := pathing.DistanceField(s.g, []int{grid.Idx(31, 31)}, 1024)

	s.True(pathing.Reachable(field[grid.Idx(38, 38)]))
	s.False(pathing.Reachable(field[grid.Idx(35, 35)]))
	s.False(pathing.Reachable(field[grid.Idx(3, 3)]))
}

func (s *PathingTestSuite) TestDistanceFieldCutoff() {
	carve.HorizontalTunnel(s.g, 0, 20, 0, grid.Purple)
	field := pathing.DistanceField(s.g, []int{0}, 5)

	s.Equal(5.0, field[5])
	s.False(pathing.Reachable(field[6]))
}

func (s *PathingTestSuite) TestDistanceFieldDegenerate() {
	field := pathing.DistanceField(s.g, []int{grid.Idx(1, 1)}, 1024)
	s.Len(field, grid.Size)
	for _, d := range field {
		s.Require().False(pathing.Reachable(d))
	}

	carve.Rect(s.g, grid.WithSize(1, 1, 3, 3), grid.White)
	field = pathing.DistanceField(s.g, nil, 1024)
	for _, d := range field {
		s.Require().False(pathing.Reachable(d))
	}
}

func (s *PathingTestSuite) TestNearest() {
	_, ok := pathing.Nearest(s.g, grid.Pt(40, 25))
	s.False(ok)

	s.g.Set(grid.Pt(10, 10), grid.GlyphOpen, grid.White)
	s.g.Set(grid.Pt(12, 10), grid.GlyphOpen, grid.White)
	s.g.Set(grid.Pt(11, 11), grid.GlyphPlayer, grid.Gold)

	idx, ok := pathing.Nearest(s.g, grid.Pt(11, 10))
	s.Require().True(ok)
	s.Equal(grid.Idx(10, 10), idx, "first index wins a tie and only open cells count")
}

func (s *PathingTestSuite) TestAStarPathIsAdjacentAndShortest() {
	carve.Rect(s.g, grid.WithSize(1, 1, 20, 20), grid.White)
	// Wall with a gap at the bottom.
	for y := 1; y < 19; y++ {
		s.g.Set(grid.Pt(10, y), grid.GlyphSolid, grid.DarkGray)
	}

	start, goal := grid.Idx(5, 5), grid.Idx(15, 5)
	route := pathing.AStar(s.g, start, goal)
	s.Require().NotEmpty(route)

	s.Equal(goal, route[len(route)-1])
	s.NotContains(route, start)

	prev := grid.PointOf(start)
	for _, idx := range route {
		p := grid.PointOf(idx)
		d := abs(p.X-prev.X) + abs(p.Y-prev.Y)
		s.Require().Equal(1, d, "step %v -> %v", prev, p)
		s.Require().True(pathing.Walkable(s.g.Tile(idx)))
		prev = p
	}

	field := pathing.DistanceField(s.g, []int{start}, 1024)
	s.Equal(int(field[goal]), len(route))
}

func (s *PathingTestSuite) TestAStarEmptyCases() {
	carve.Rect(s.g, grid.WithSize(1, 1, 5, 5), grid.White)
	carve.Rect(s.g, grid.WithSize(20, 20, 5, 5), grid.White)

	s.Empty(pathing.AStar(s.g, grid.Idx(2, 2), grid.Idx(2, 2)))
	s.Empty(pathing.AStar(s.g, grid.Idx(2, 2), grid.Idx(21, 21)), "disconnected")
	s.Empty(pathing.AStar(s.g, grid.Idx(2, 2), grid.Idx(40, 40)), "goal blocked")
	s.Empty(pathing.AStar(s.g, -1, grid.Idx(2, 2)))
	s.Empty(pathing.AStar(s.g, grid.Idx(2, 2), grid.Size))
}

func TestAStarNeighbourStep(t *testing.T) {
	g := grid.New()
	g.Set(grid.Pt(3, 3), grid.GlyphOpen, grid.White)
	g.Set(grid.Pt(4, 3), grid.GlyphOpen, grid.White)

	route := pathing.AStar(g, grid.Idx(3, 3), grid.Idx(4, 3))
	require.Len(t, route, 1)
	assert.Equal(t, grid.Idx(4, 3), route[0])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
