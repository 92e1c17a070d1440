package traps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/traps"
	"github.com/KirkDiggler/rpg-mapgen/internal/prefab"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

func TestInRoom(t *testing.T) {
	var result *mapgen.Result
	// Not every seed lays out a room big enough; find one that does.
	for seed := int64(1); seed < 50; seed++ {
		r, err := mapgen.Run(traps.NewInRoom(rng.New(seed), traps.DefaultOptions()))
		if err == nil {
			result = r
			break
		}
		require.True(t, errors.Is(err, errors.ErrPlacementNotFound))
	}
	require.NotNil(t, result)

	assert.Equal(t, []string{
		"Basic Rooms Map",
		"This Prefab is Definitely Not A Trap",
		"Place Prefab in Room that Fits",
	}, result.Frames.Labels())

	preview := result.Frames[1].Grid
	assert.Equal(t, 2, preview.Count(grid.GlyphTreasure))
	assert.Equal(t, grid.Tile{Glyph: grid.GlyphTreasure, Color: grid.Gold}, preview.Tile(grid.Idx(38, 22)))

	assert.Equal(t, 0, result.Frames[0].Grid.Count(grid.GlyphTreasure))
	assert.Equal(t, 2, result.Grid.Count(grid.GlyphTreasure))
	assert.Equal(t, 10, result.Grid.Count(grid.GlyphDanger))
}

func TestInRoomWithoutFit(t *testing.T) {
	huge, err := prefab.Parse("$$$$$$$$$$$$$$$$$$$$\n$$$$$$$$$$$$$$$$$$$$\n")
	require.NoError(t, err)

	opts := traps.Options{Pattern: huge, MaxAttempts: 20}
	_, err = mapgen.Run(traps.NewInRoom(rng.New(1), opts))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPlacementNotFound))
}

func TestInCave(t *testing.T) {
	var result *mapgen.Result
	for seed := int64(1); seed < 50; seed++ {
		r, err := mapgen.Run(traps.NewInCave(rng.New(seed), traps.DefaultOptions()))
		if err == nil {
			result = r
			break
		}
	}
	require.NotNil(t, result)

	assert.Equal(t, []string{"Cellular Automata Map", "Found a place for the prefab"}, result.Frames.Labels())

	// The prefab's open ring stays open cave floor around the markers.
	treasure := result.Grid.Indices(grid.GlyphTreasure)
	require.Len(t, treasure, 2)
	p := grid.PointOf(treasure[0])
	assert.Equal(t, grid.GlyphDanger, result.Grid.GlyphAt(grid.Pt(p.X-1, p.Y)))
	assert.Equal(t, grid.GlyphOpen, result.Grid.GlyphAt(grid.Pt(p.X-2, p.Y)))
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{traps.RoomName, traps.CaveName} {
		_, err := mapgen.Lookup(name)
		assert.NoError(t, err, name)
	}
}
