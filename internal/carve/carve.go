// Package carve holds the stamping helpers shared by the room-based
// generators.
package carve

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// CorridorColor is the default paint for tunnels
var CorridorColor = grid.Purple

// Rect stamps the footprint of r as open floor. Cells outside the grid are
// skipped.
func Rect(g *grid.Grid, r grid.Rect, color grid.Color) {
	r.Each(func(p grid.Point) {
		g.Set(p, grid.GlyphOpen, color)
	})
}

// HorizontalTunnel opens every in-bounds cell from x1 to x2 inclusive on row y
func HorizontalTunnel(g *grid.Grid, x1, x2, y int, color grid.Color) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.Set(grid.Pt(x, y), grid.GlyphOpen, color)
	}
}

// VerticalTunnel opens every in-bounds cell from y1 to y2 inclusive on column x
func VerticalTunnel(g *grid.Grid, y1, y2, x int, color grid.Color) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.Set(grid.Pt(x, y), grid.GlyphOpen, color)
	}
}

// Connect joins two points with one horizontal and one vertical run. A coin
// flip picks which leg comes first.
func Connect(src rng.Source, g *grid.Grid, from, to grid.Point, color grid.Color) {
	if src.Range(0, 2) == 1 {
		HorizontalTunnel(g, from.X, to.X, from.Y, color)
		VerticalTunnel(g, from.Y, to.Y, to.X, color)
		return
	}
	VerticalTunnel(g, from.Y, to.Y, from.X, color)
	HorizontalTunnel(g, from.X, to.X, to.Y, color)
}

// Corridors connects the centers of consecutive rects, recording
// "Corridor {i}" after each one when rec is not nil
func Corridors(src rng.Source, g *grid.Grid, rects []grid.Rect, color grid.Color, rec *frames.Recorder) {
	for i := 1; i < len(rects); i++ {
		Connect(src, g, rects[i-1].Center(), rects[i].Center(), color)
		rec.Recordf(g, "Corridor %d", i)
	}
}
