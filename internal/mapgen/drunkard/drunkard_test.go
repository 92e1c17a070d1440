package drunkard_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/drunkard"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
	rngmock "github.com/KirkDiggler/rpg-mapgen/internal/rng/mock"
)

func TestWalkStopsAtStepCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := rngmock.NewMockSource(ctrl)

	// Alternate right and left so the walker never leaves the grid.
	calls := 0
	src.EXPECT().Range(0, 4).DoAndReturn(func(int, int) int {
		calls++
		return calls % 2
	}).Times(drunkard.MaxSteps + 1)

	g := grid.New()
	steps := drunkard.Walk(src, g, grid.Pt(40, 25))

	assert.Equal(t, drunkard.MaxSteps+1, steps)
	assert.Equal(t, 2, g.Count(grid.GlyphOpen), "the walker paces between two cells")
}

func TestWalkStopsLeavingGrid(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := rngmock.NewMockSource(ctrl)
	src.EXPECT().Range(0, 4).Return(0).Times(3)

	g := grid.New()
	steps := drunkard.Walk(src, g, grid.Pt(2, 5))

	assert.Equal(t, 2, steps)
	assert.Equal(t, grid.GlyphOpen, g.GlyphAt(grid.Pt(1, 5)))
	assert.Equal(t, grid.GlyphOpen, g.GlyphAt(grid.Pt(0, 5)))
	assert.Equal(t, grid.GlyphSolid, g.GlyphAt(grid.Pt(2, 5)), "start cell is not dug")

	tile, _ := g.At(grid.Pt(0, 5))
	assert.Equal(t, grid.StateActive, tile.State)
	assert.Equal(t, grid.Red, tile.Color)
}

func TestBuild(t *testing.T) {
	result, err := drunkard.New(rng.New(21)).Build()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Grid.Count(grid.GlyphOpen), drunkard.TargetOpen)
	require.GreaterOrEqual(t, len(result.Frames), 3)
	assert.Equal(t, "Start Solid", result.Frames[0].Label)
	assert.Equal(t, "First Drunken Digger", result.Frames[1].Label)
	for i := 2; i < len(result.Frames); i++ {
		assert.Equal(t, fmt.Sprintf("Drunken Digger %d", i), result.Frames[i].Label)
	}

	// Only the last walk is still active; every earlier cell settled.
	for i := 0; i < result.Grid.Len(); i++ {
		tile := result.Grid.Tile(i)
		switch tile.State {
		case grid.StateActive:
			require.Equal(t, grid.Red, tile.Color)
		case grid.StateSettled:
			require.Equal(t, grid.Green, tile.Color)
		}
	}

	second := result.Frames[2].Grid
	for i := 0; i < second.Len(); i++ {
		if second.Tile(i).State == grid.StateSettled {
			return
		}
	}
	t.Fatal("earlier walk was never settled")
}

func TestBuildDeterministic(t *testing.T) {
	a, err := drunkard.New(rng.New(3)).Build()
	require.NoError(t, err)
	b, err := drunkard.New(rng.New(3)).Build()
	require.NoError(t, err)

	require.Equal(t, len(a.Frames), len(b.Frames))
	assert.True(t, a.Grid.Equal(b.Grid))
}
