package grid_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
)

func TestGridJSONPreservesTiles(t *testing.T) {
	g := grid.New()
	g.Set(grid.Pt(3, 4), grid.GlyphOpen, grid.Purple)
	g.SetTile(grid.Pt(5, 6), grid.Tile{Glyph: grid.GlyphOpen, Color: grid.Red, State: grid.StateActive})
	g.Set(grid.Pt(79, 49), grid.GlyphExit, grid.Gold)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded grid.Grid
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, g.Equal(&decoded))
}

func TestGridJSONOmitsDefaultStates(t *testing.T) {
	data, err := json.Marshal(grid.New())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "states")
}

func TestGridJSONRejectsWrongSize(t *testing.T) {
	var g grid.Grid
	err := json.Unmarshal([]byte(`{"width":10,"height":10,"glyphs":"","colors":""}`), &g)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestFromTiles(t *testing.T) {
	_, err := grid.FromTiles(make([]grid.Tile, 3))
	assert.True(t, errors.IsInvalidArgument(err))

	src := grid.New()
	src.Set(grid.Pt(1, 1), grid.GlyphOpen, grid.Green)
	g, err := grid.FromTiles(src.Tiles())
	require.NoError(t, err)
	assert.True(t, src.Equal(g))
}
