// Package pathing answers connectivity questions over the walkable cells of
// a grid: breadth-first distance fields, nearest open cell to an anchor and
// A* routes. Searches are 4-connected with unit cost.
package pathing

import (
	"math"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
)

// Unreachable marks cells no source reaches within the cutoff
const Unreachable = math.MaxFloat64

// Walkable reports whether pathing may step onto t
func Walkable(t grid.Tile) bool {
	switch t.Glyph {
	case grid.GlyphOpen, grid.GlyphPlayer, grid.GlyphExit, grid.GlyphMarker:
		return true
	default:
		return false
	}
}

// Reachable reports whether a distance field value is a real distance
func Reachable(d float64) bool {
	return d < Unreachable
}

// walker adapts a grid to the gruid pathing interfaces
type walker struct {
	g  *grid.Grid
	nb paths.Neighbors
}

func newWalker(g *grid.Grid) *walker {
	return &walker{g: g}
}

func (w *walker) passable(p gruid.Point) bool {
	t, ok := w.g.At(toPoint(p))
	return ok && Walkable(t)
}

// Neighbors implements paths.Pather and paths.Astar
func (w *walker) Neighbors(p gruid.Point) []gruid.Point {
	return w.nb.Cardinal(p, w.passable)
}

// Cost implements paths.Astar
func (w *walker) Cost(_, _ gruid.Point) int {
	return 1
}

// Estimation implements paths.Astar
func (w *walker) Estimation(p, q gruid.Point) int {
	return paths.DistanceManhattan(p, q)
}

func newPathRange() *paths.PathRange {
	return paths.NewPathRange(gruid.NewRange(0, 0, grid.Width, grid.Height))
}

// DistanceField returns, for every walkable cell, the step count to the
// nearest source. Cells farther than maxDist, unreachable cells and
// non-walkable cells hold Unreachable.
func DistanceField(g *grid.Grid, sources []int, maxDist int) []float64 {
	field := make([]float64, grid.Size)
	for i := range field {
		field[i] = Unreachable
	}

	starts := make([]gruid.Point, 0, len(sources))
	for _, idx := range sources {
		if idx < 0 || idx >= grid.Size {
			continue
		}
		starts = append(starts, toGruid(grid.PointOf(idx)))
	}
	if len(starts) == 0 || maxDist < 0 {
		return field
	}

	pr := newPathRange()
	pr.BreadthFirstMap(newWalker(g), starts, maxDist)

	for i := range field {
		if !Walkable(g.Tile(i)) {
			continue
		}
		cost := pr.BreadthFirstMapAt(toGruid(grid.PointOf(i)))
		if cost <= maxDist {
			field[i] = float64(cost)
		}
	}
	return field
}

// Nearest scans open cells for the one closest to anchor by straight-line
// distance. The lowest index wins ties. It reports false when the grid has
// no open cell.
func Nearest(g *grid.Grid, anchor grid.Point) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i := 0; i < g.Len(); i++ {
		if g.Tile(i).Glyph != grid.GlyphOpen {
			continue
		}
		if d := anchor.DistanceTo(grid.PointOf(i)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// AStar returns the shortest route from start to goal. The route excludes
// start and ends at goal. It is empty when start equals goal, when either
// end is out of range or blocked, or when no route exists.
func AStar(g *grid.Grid, start, goal int) []int {
	if start == goal || !walkableIdx(g, start) || !walkableIdx(g, goal) {
		return nil
	}

	pr := newPathRange()
	route := pr.AstarPath(newWalker(g), toGruid(grid.PointOf(start)), toGruid(grid.PointOf(goal)))
	if len(route) < 2 {
		return nil
	}

	steps := make([]int, 0, len(route)-1)
	for _, p := range route[1:] {
		steps = append(steps, grid.Idx(p.X, p.Y))
	}
	return steps
}

func walkableIdx(g *grid.Grid, idx int) bool {
	return idx >= 0 && idx < grid.Size && Walkable(g.Tile(idx))
}

func toGruid(p grid.Point) gruid.Point {
	return gruid.Point{X: p.X, Y: p.Y}
}

func toPoint(p gruid.Point) grid.Point {
	return grid.Point{X: p.X, Y: p.Y}
}
