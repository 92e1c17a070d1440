package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
)

type GridTestSuite struct {
	suite.Suite
	g *grid.Grid
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridTestSuite))
}

func (s *GridTestSuite) SetupTest() {
	s.g = grid.New()
}

func (s *GridTestSuite) TestNewIsDefaultFilled() {
	s.Equal(grid.Width*grid.Height, s.g.Len())
	s.Equal(grid.Size, s.g.Count(grid.GlyphSolid))
	s.Equal(grid.DefaultTile(), s.g.Tile(0))
	s.Equal(grid.DefaultTile(), s.g.Tile(grid.Size-1))
}

func (s *GridTestSuite) TestSetOutOfBoundsIsNoop() {
	before := s.g.Clone()

	for _, p := range []grid.Point{
		grid.Pt(-1, 0), grid.Pt(0, -1), grid.Pt(grid.Width, 0), grid.Pt(0, grid.Height),
		grid.Pt(grid.Width+5, grid.Height+5),
	} {
		s.False(s.g.Set(p, grid.GlyphOpen, grid.Red), "%v", p)
		_, ok := s.g.At(p)
		s.False(ok)
	}
	s.False(s.g.SetIdx(-1, grid.GlyphOpen, grid.Red))
	s.False(s.g.SetIdx(grid.Size, grid.GlyphOpen, grid.Red))

	s.True(s.g.Equal(before))
}

func (s *GridTestSuite) TestSetAndAt() {
	p := grid.Pt(10, 20)
	s.Require().True(s.g.Set(p, grid.GlyphOpen, grid.Green))

	t, ok := s.g.At(p)
	s.Require().True(ok)
	s.Equal(grid.GlyphOpen, t.Glyph)
	s.Equal(grid.Green, t.Color)
	s.Equal(grid.StateDefault, t.State)
	s.Equal(t, s.g.Tile(grid.Idx(10, 20)))
	s.Equal(grid.GlyphOpen, s.g.GlyphAt(p))
	s.Equal(rune(0), s.g.GlyphAt(grid.Pt(-3, 0)))
}

func (s *GridTestSuite) TestIndexRoundTrip() {
	for _, p := range []grid.Point{grid.Pt(0, 0), grid.Pt(79, 0), grid.Pt(0, 49), grid.Pt(79, 49), grid.Pt(33, 17)} {
		idx, ok := grid.TryIdx(p)
		s.Require().True(ok)
		s.Equal(p.Y*grid.Width+p.X, idx)
		s.Equal(p, grid.PointOf(idx))
	}
	_, ok := grid.TryIdx(grid.Pt(80, 0))
	s.False(ok)
}

func (s *GridTestSuite) TestCloneDoesNotAlias() {
	clone := s.g.Clone()
	s.g.Set(grid.Pt(1, 1), grid.GlyphOpen, grid.Red)

	s.Equal(grid.GlyphSolid, clone.GlyphAt(grid.Pt(1, 1)))
	s.False(clone.Equal(s.g))
}

func (s *GridTestSuite) TestCountIndicesRecolor() {
	s.g.Set(grid.Pt(2, 0), grid.GlyphOpen, grid.Red)
	s.g.Set(grid.Pt(1, 0), grid.GlyphOpen, grid.Red)

	s.Equal(2, s.g.Count(grid.GlyphOpen))
	s.Equal([]int{1, 2}, s.g.Indices(grid.GlyphOpen))

	s.g.Recolor(grid.GlyphOpen, grid.Yellow)
	s.Equal(grid.Yellow, s.g.Tile(1).Color)
	s.Equal(grid.DarkGray, s.g.Tile(0).Color)
}

func (s *GridTestSuite) TestPromote() {
	s.g.SetTile(grid.Pt(5, 5), grid.Tile{Glyph: grid.GlyphOpen, Color: grid.Red, State: grid.StateActive})
	s.g.SetTile(grid.Pt(6, 5), grid.Tile{Glyph: grid.GlyphOpen, Color: grid.Red, State: grid.StateActive})
	s.g.Set(grid.Pt(7, 5), grid.GlyphOpen, grid.Red)

	n := s.g.Promote(grid.StateActive, grid.StateSettled, grid.Green)
	s.Equal(2, n)

	t, _ := s.g.At(grid.Pt(5, 5))
	s.Equal(grid.StateSettled, t.State)
	s.Equal(grid.Green, t.Color)

	untouched, _ := s.g.At(grid.Pt(7, 5))
	s.Equal(grid.Red, untouched.Color)
}

func (s *GridTestSuite) TestClear() {
	s.g.SetTile(grid.Pt(1, 1), grid.Tile{Glyph: grid.GlyphOpen, State: grid.StateActive})
	s.g.Clear(grid.GlyphOpen, grid.Blue)
	s.Equal(grid.Size, s.g.Count(grid.GlyphOpen))
	s.Equal(grid.StateDefault, s.g.Tile(grid.Idx(1, 1)).State)

	s.g.ClearDefault()
	s.True(s.g.Equal(grid.New()))
}

func TestRect(t *testing.T) {
	r := grid.WithSize(2, 3, 4, 5)
	assert.Equal(t, grid.Rect{X1: 2, Y1: 3, X2: 6, Y2: 8}, r)
	assert.Equal(t, 4, r.Width())
	assert.Equal(t, 5, r.Height())
	assert.Equal(t, grid.Pt(4, 5), r.Center())

	assert.True(t, r.Contains(grid.Pt(2, 3)))
	assert.True(t, r.Contains(grid.Pt(5, 7)))
	assert.False(t, r.Contains(grid.Pt(6, 7)))
	assert.False(t, r.Contains(grid.Pt(5, 8)))

	count := 0
	r.Each(func(p grid.Point) {
		require.True(t, r.Contains(p))
		count++
	})
	assert.Equal(t, 20, count)

	assert.Equal(t, grid.Rect{X1: 1, Y1: 2, X2: 7, Y2: 9}, r.Grow(1))
}

func TestRectIntersectsCountsTouchingEdges(t *testing.T) {
	a := grid.WithSize(0, 0, 4, 4)

	assert.True(t, a.Intersects(grid.WithSize(2, 2, 4, 4)))
	assert.True(t, a.Intersects(grid.WithSize(4, 0, 2, 2)), "shared edge")
	assert.False(t, a.Intersects(grid.WithSize(5, 0, 2, 2)))
	assert.False(t, a.Intersects(grid.WithSize(0, 6, 2, 2)))
}

func TestIterationColor(t *testing.T) {
	assert.Equal(t, grid.White, grid.IterationColor(0))
	assert.Equal(t, grid.Green, grid.IterationColor(1))
	assert.Equal(t, grid.White, grid.IterationColor(6))
	assert.Equal(t, grid.DarkRed, grid.IterationColor(13))
	assert.Equal(t, grid.Red, grid.IterationColor(14))
	assert.Equal(t, grid.Red, grid.IterationColor(666))
	assert.Equal(t, grid.Red, grid.IterationColor(-1))
}

func TestRGBClamps(t *testing.T) {
	assert.Equal(t, grid.Color{R: 0, G: 255, B: 127}, grid.RGB(-0.5, 1.5, 0.5))
	assert.Equal(t, "#ff00ff", grid.Magenta.Hex())
}

func TestPointMath(t *testing.T) {
	p := grid.Pt(3, 4)
	assert.Equal(t, grid.Pt(4, 6), p.Add(grid.Pt(1, 2)))
	assert.Equal(t, grid.Pt(2, 2), p.Sub(grid.Pt(1, 2)))
	assert.InDelta(t, 5.0, p.DistanceTo(grid.Pt(0, 0)), 1e-9)
}
