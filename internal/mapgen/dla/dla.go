// Package dla grows open space by diffusion-limited aggregation: walkers
// wander until they touch the open cluster and stick beside it. Three
// variants are registered: free wandering, a center-mirrored line walk and
// erosion of a rooms map.
package dla

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

const (
	// TargetOpen is the open cell count that ends the growth variants
	TargetOpen = grid.Size / 3
	// EdgeMargin keeps wandering walkers this far from the left and top
	// edges; the right and bottom limits are Width-2 and Height-2
	EdgeMargin = 2
	// MaxWalkSteps caps one wandering walk
	MaxWalkSteps = grid.Size * 4
)

var active = grid.Tile{Glyph: grid.GlyphOpen, Color: grid.Red, State: grid.StateActive}

func center() grid.Point {
	return grid.Pt(grid.Width/2, grid.Height/2)
}

// SeedCluster opens the center and its four neighbours
func SeedCluster(g *grid.Grid) {
	c := center()
	for _, d := range []grid.Point{{}, {X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
		g.SetTile(c.Add(d), active)
	}
}

// Stagger moves p one random cardinal step, refusing moves that would bring
// it within EdgeMargin of the left or top edge or past Width-2 / Height-2
func Stagger(src rng.Source, p grid.Point) grid.Point {
	switch src.RollDice(1, 4) {
	case 1:
		if p.X > EdgeMargin {
			p.X--
		}
	case 2:
		if p.X < grid.Width-2 {
			p.X++
		}
	case 3:
		if p.Y > EdgeMargin {
			p.Y--
		}
	default:
		if p.Y < grid.Height-2 {
			p.Y++
		}
	}
	return p
}

// dropPoint is a random start at least two cells from the left and top
// edges
func dropPoint(src rng.Source) grid.Point {
	return grid.Pt(src.RollDice(1, grid.Width-3)+1, src.RollDice(1, grid.Height-3)+1)
}

// Line returns the Bresenham line from a to b including both ends
func Line(a, b grid.Point) []grid.Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	e := dx + dy

	out := make([]grid.Point, 0, max(dx, -dy)+1)
	p := a
	for {
		out = append(out, p)
		if p == b {
			return out
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
