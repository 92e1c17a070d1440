package prefab_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/prefab"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
	rngmock "github.com/KirkDiggler/rpg-mapgen/internal/rng/mock"
)

type PrefabTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	src  *rngmock.MockSource
}

func TestPrefabSuite(t *testing.T) {
	suite.Run(t, new(PrefabTestSuite))
}

func (s *PrefabTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.src = rngmock.NewMockSource(s.ctrl)
}

func (s *PrefabTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PrefabTestSuite) TestParse() {
	p, err := prefab.Parse("\r\nab\r\ncd\r\n")
	s.Require().NoError(err)
	s.Equal(2, p.Width)
	s.Equal(2, p.Height)
	s.Equal([]rune("abcd"), p.Cells)
	s.Equal('c', p.At(0, 1))
}

func (s *PrefabTestSuite) TestParseRejectsRagged() {
	_, err := prefab.Parse("abc\nab\n")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = prefab.Parse("\n\n")
	s.True(errors.IsInvalidArgument(err))
}

func (s *PrefabTestSuite) TestBuiltInPatterns() {
	s.Equal(6, prefab.NotATrap.Width)
	s.Equal(5, prefab.NotATrap.Height)
	s.Equal(11, prefab.Combination.Width)
	s.Equal(50, prefab.Combination.Height)
}

func (s *PrefabTestSuite) TestStampTrap() {
	g := grid.New()
	prefab.Stamp(g, prefab.NotATrap, grid.Pt(36, 20), prefab.TrapMapping)

	s.Equal(2, g.Count(grid.GlyphTreasure))
	s.Equal(10, g.Count(grid.GlyphDanger))
	gold, _ := g.At(grid.Pt(38, 22))
	s.Equal(grid.Tile{Glyph: grid.GlyphTreasure, Color: grid.Gold}, gold)
	corner, _ := g.At(grid.Pt(36, 20))
	s.Equal(grid.DefaultTile(), corner)
}

func (s *PrefabTestSuite) TestStampClipsAtEdge() {
	g := grid.New()
	prefab.Stamp(g, prefab.NotATrap, grid.Pt(grid.Width-3, grid.Height-2), prefab.TrapMapping)
	// Only the top-left 3x2 corner lands on the grid.
	s.Equal(2, g.Count(grid.GlyphDanger))
	s.Equal(0, g.Count(grid.GlyphTreasure))
}

func (s *PrefabTestSuite) TestInvertMapping() {
	open, ok := prefab.InvertMapping(grid.GlyphSolid)
	s.True(ok)
	s.Equal(grid.Tile{Glyph: grid.GlyphOpen, Color: grid.Yellow}, open)

	solid, ok := prefab.InvertMapping(grid.GlyphOpen)
	s.True(ok)
	s.Equal(grid.DefaultTile(), solid)

	_, ok = prefab.InvertMapping('x')
	s.False(ok)
}

func (s *PrefabTestSuite) TestFitInRoomSkipsSmallRooms() {
	small := grid.WithSize(1, 1, 3, 3)
	big := grid.WithSize(10, 10, 8, 6)
	rooms := []grid.Rect{small, big}

	gomock.InOrder(
		s.src.EXPECT().Intn(2).Return(0),
		s.src.EXPECT().Intn(2).Return(1),
	)

	base, err := prefab.FitInRoom(s.src, rooms, prefab.NotATrap, prefab.DefaultMaxAttempts)
	s.Require().NoError(err)
	s.Equal(grid.Pt(14-3, 13-2), base)
}

func (s *PrefabTestSuite) TestFitInRoomNeedsSixOnBothSides() {
	// NotATrap is 6x5; a room only 5 high is passed over
	short := grid.WithSize(10, 10, 8, 5)
	narrow := grid.WithSize(30, 10, 5, 8)
	square := grid.WithSize(40, 20, 6, 6)
	rooms := []grid.Rect{short, narrow, square}

	gomock.InOrder(
		s.src.EXPECT().Intn(3).Return(0),
		s.src.EXPECT().Intn(3).Return(1),
		s.src.EXPECT().Intn(3).Return(2),
	)

	base, err := prefab.FitInRoom(s.src, rooms, prefab.NotATrap, prefab.DefaultMaxAttempts)
	s.Require().NoError(err)
	s.Equal(grid.Pt(43-3, 23-2), base)
}

func (s *PrefabTestSuite) TestFitInRoomGivesUp() {
	rooms := []grid.Rect{grid.WithSize(1, 1, 3, 3)}
	s.src.EXPECT().Intn(1).Return(0).Times(5)

	_, err := prefab.FitInRoom(s.src, rooms, prefab.NotATrap, 5)
	s.Require().Error(err)
	s.True(errors.Is(err, errors.ErrPlacementNotFound))
	s.Equal(5, errors.GetMeta(err)["attempts"])
}

func (s *PrefabTestSuite) TestFitInRoomNoRooms() {
	_, err := prefab.FitInRoom(s.src, nil, prefab.NotATrap, 5)
	s.True(errors.Is(err, errors.ErrPlacementNotFound))
}

func (s *PrefabTestSuite) TestFitSolidBlock() {
	g := grid.New()
	g.Clear(grid.GlyphOpen, grid.Green)

	s.src.EXPECT().Range(1, grid.Width-10).Return(12)
	s.src.EXPECT().Range(1, grid.Height-10).Return(7)

	base, err := prefab.FitSolidBlock(s.src, g, prefab.NotATrap, prefab.DefaultMaxAttempts)
	s.Require().NoError(err)
	s.Equal(grid.Pt(12, 7), base)
}

func (s *PrefabTestSuite) TestFitSolidBlockGivesUpOnSolidGrid() {
	_, err := prefab.FitSolidBlock(rng.New(3), grid.New(), prefab.NotATrap, 50)
	s.Require().Error(err)
	s.True(errors.Is(err, errors.ErrPlacementNotFound))
}
