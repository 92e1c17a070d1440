// Package reachability anchors start and exit points on generated maps and
// uses distance fields and path search to judge which areas matter.
package reachability

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/pathing"
)

// MaxDistance is the distance field cutoff
const MaxDistance = 1024

// Anchors the generators search from
var (
	Center   = grid.Pt(grid.Width/2, grid.Height/2)
	WestEdge = grid.Pt(0, grid.Height/2)
	EastEdge = grid.Pt(grid.Width-1, grid.Height/2)
)

func nearest(g *grid.Grid, anchor grid.Point, name string) (int, error) {
	idx, ok := pathing.Nearest(g, anchor)
	if !ok {
		return 0, errors.NoWalkableCells(name)
	}
	return idx, nil
}

// Prune fills every open cell the distance field cannot reach
func Prune(g *grid.Grid, dist []float64) int {
	pruned := 0
	for _, idx := range g.Indices(grid.GlyphOpen) {
		if !pathing.Reachable(dist[idx]) {
			g.SetIdx(idx, grid.GlyphSolid, grid.DarkGray)
			pruned++
		}
	}
	return pruned
}

// Shade colors reachable open cells green, fading with distance, and
// unreachable ones red
func Shade(g *grid.Grid, dist []float64) {
	for _, idx := range g.Indices(grid.GlyphOpen) {
		if d := dist[idx]; pathing.Reachable(d) {
			g.SetColor(idx, grid.RGB(0, 1-d/100, 0))
		} else {
			g.SetColor(idx, grid.Red)
		}
	}
}
