// Package prefab parses fixed ASCII patterns and stamps them onto grids,
// with bounded searches for a spot that fits.
package prefab

import (
	"strings"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// DefaultMaxAttempts caps every placement search
const DefaultMaxAttempts = 1000

// Pattern is a rectangular block of glyphs, row-major
type Pattern struct {
	Width  int
	Height int
	Cells  []rune
}

// Parse reads a pattern with one row per line. Blank lines and carriage
// returns are ignored; every remaining row must have the same width.
func Parse(rows string) (*Pattern, error) {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(rows, "\r", ""), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, errors.InvalidArgument("pattern is empty")
	}

	p := &Pattern{Width: len([]rune(lines[0])), Height: len(lines)}
	p.Cells = make([]rune, 0, p.Width*p.Height)
	for i, line := range lines {
		row := []rune(line)
		if len(row) != p.Width {
			return nil, errors.InvalidArgumentf("row %d has width %d, expected %d", i, len(row), p.Width)
		}
		p.Cells = append(p.Cells, row...)
	}
	return p, nil
}

// MustParse is Parse for package-level patterns
func MustParse(rows string) *Pattern {
	p, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return p
}

// At returns the glyph at pattern offset (x, y)
func (p *Pattern) At(x, y int) rune {
	return p.Cells[y*p.Width+x]
}

// Footprint is the rect the pattern covers when stamped at base
func (p *Pattern) Footprint(base grid.Point) grid.Rect {
	return grid.WithSize(base.X, base.Y, p.Width, p.Height)
}

// Mapping turns a pattern glyph into a tile. False leaves the cell alone.
type Mapping func(r rune) (grid.Tile, bool)

// TrapMapping writes treasure and danger markers and skips everything else
func TrapMapping(r rune) (grid.Tile, bool) {
	switch r {
	case grid.GlyphTreasure:
		return grid.Tile{Glyph: grid.GlyphTreasure, Color: grid.Gold}, true
	case grid.GlyphDanger:
		return grid.Tile{Glyph: grid.GlyphDanger, Color: grid.Red}, true
	default:
		return grid.Tile{}, false
	}
}

// InvertMapping carves the pattern's solid cells and fills its open ones
func InvertMapping(r rune) (grid.Tile, bool) {
	switch r {
	case grid.GlyphSolid:
		return grid.Tile{Glyph: grid.GlyphOpen, Color: grid.Yellow}, true
	case grid.GlyphOpen:
		return grid.DefaultTile(), true
	default:
		return grid.Tile{}, false
	}
}

// Stamp writes the pattern with its top-left corner at base. Cells falling
// outside the grid are skipped.
func Stamp(g *grid.Grid, p *Pattern, base grid.Point, mapping Mapping) {
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if tile, ok := mapping(p.At(x, y)); ok {
				g.SetTile(base.Add(grid.Pt(x, y)), tile)
			}
		}
	}
}

// FitInRoom picks random rooms until one has both sides at least as long as
// the pattern's longer side, and returns the base that centres the pattern
// in it.
func FitInRoom(src rng.Source, rooms []grid.Rect, p *Pattern, maxAttempts int) (grid.Point, error) {
	side := max(p.Width, p.Height)
	for range maxAttempts {
		r, ok := rng.SliceEntry(src, rooms)
		if !ok {
			break
		}
		if r.Width() >= side && r.Height() >= side {
			return r.Center().Sub(grid.Pt(p.Width/2, p.Height/2)), nil
		}
	}
	return grid.Point{}, errors.PlacementNotFound(maxAttempts)
}

// FitSolidBlock picks random bases until the whole footprint lands on open
// cells.
func FitSolidBlock(src rng.Source, g *grid.Grid, p *Pattern, maxAttempts int) (grid.Point, error) {
	for range maxAttempts {
		base := grid.Pt(src.Range(1, grid.Width-10), src.Range(1, grid.Height-10))
		if allOpen(g, p.Footprint(base)) {
			return base, nil
		}
	}
	return grid.Point{}, errors.PlacementNotFound(maxAttempts)
}

func allOpen(g *grid.Grid, r grid.Rect) bool {
	open := true
	r.Each(func(pt grid.Point) {
		if g.GlyphAt(pt) != grid.GlyphOpen {
			open = false
		}
	})
	return open
}
