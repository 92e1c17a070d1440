// Package grid is the fixed-size tile buffer every generator draws into.
//
// Tiles are stored row-major (index = y*Width + x). All writes addressed by
// a computed coordinate are bounds-checked and silently skipped when the
// coordinate falls outside the grid.
package grid

// Dimensions of every grid
const (
	Width  = 80
	Height = 50
	Size   = Width * Height
)

// Grid is a Width x Height tile buffer
type Grid struct {
	tiles []Tile
}

// New returns a grid filled with DefaultTile
func New() *Grid {
	g := &Grid{tiles: make([]Tile, Size)}
	g.ClearDefault()
	return g
}

// InBounds reports whether p addresses a cell
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Idx converts coordinates to an index without checking bounds
func Idx(x, y int) int {
	return y*Width + x
}

// TryIdx converts p to an index when it is in bounds
func TryIdx(p Point) (int, bool) {
	if !InBounds(p) {
		return 0, false
	}
	return Idx(p.X, p.Y), true
}

// PointOf converts an index back to coordinates
func PointOf(idx int) Point {
	return Point{X: idx % Width, Y: idx / Width}
}

// Len is always Size
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Clear fills every cell and resets its state
func (g *Grid) Clear(glyph rune, color Color) {
	for i := range g.tiles {
		g.tiles[i] = Tile{Glyph: glyph, Color: color}
	}
}

// ClearDefault fills the grid with DefaultTile
func (g *Grid) ClearDefault() {
	g.Clear(GlyphSolid, DarkGray)
}

// Set writes glyph and color at p, resetting its state. It reports false
// and changes nothing when p is out of bounds.
func (g *Grid) Set(p Point, glyph rune, color Color) bool {
	return g.SetTile(p, Tile{Glyph: glyph, Color: color})
}

// SetTile writes t at p when p is in bounds
func (g *Grid) SetTile(p Point, t Tile) bool {
	idx, ok := TryIdx(p)
	if !ok {
		return false
	}
	g.tiles[idx] = t
	return true
}

// SetIdx writes glyph and color at idx when idx is in range
func (g *Grid) SetIdx(idx int, glyph rune, color Color) bool {
	if idx < 0 || idx >= len(g.tiles) {
		return false
	}
	g.tiles[idx] = Tile{Glyph: glyph, Color: color}
	return true
}

// SetColor recolors the cell at idx, keeping glyph and state
func (g *Grid) SetColor(idx int, color Color) bool {
	if idx < 0 || idx >= len(g.tiles) {
		return false
	}
	g.tiles[idx].Color = color
	return true
}

// At returns the tile at p
func (g *Grid) At(p Point) (Tile, bool) {
	idx, ok := TryIdx(p)
	if !ok {
		return Tile{}, false
	}
	return g.tiles[idx], true
}

// Tile returns the tile at idx. Out of range indices read as DefaultTile.
func (g *Grid) Tile(idx int) Tile {
	if idx < 0 || idx >= len(g.tiles) {
		return DefaultTile()
	}
	return g.tiles[idx]
}

// GlyphAt returns the glyph at p, or 0 when p is out of bounds
func (g *Grid) GlyphAt(p Point) rune {
	t, ok := g.At(p)
	if !ok {
		return 0
	}
	return t.Glyph
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{tiles: tiles}
}

// CopyFrom overwrites every cell with the cells of other
func (g *Grid) CopyFrom(other *Grid) {
	copy(g.tiles, other.tiles)
}

// Count returns how many cells carry glyph
func (g *Grid) Count(glyph rune) int {
	n := 0
	for _, t := range g.tiles {
		if t.Glyph == glyph {
			n++
		}
	}
	return n
}

// Indices lists the indices of cells carrying glyph in ascending order
func (g *Grid) Indices(glyph rune) []int {
	var out []int
	for i, t := range g.tiles {
		if t.Glyph == glyph {
			out = append(out, i)
		}
	}
	return out
}

// Recolor paints every cell carrying glyph
func (g *Grid) Recolor(glyph rune, color Color) {
	for i := range g.tiles {
		if g.tiles[i].Glyph == glyph {
			g.tiles[i].Color = color
		}
	}
}

// Promote moves every cell in state from to state to and paints it
func (g *Grid) Promote(from, to State, color Color) int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].State == from {
			g.tiles[i].State = to
			g.tiles[i].Color = color
			n++
		}
	}
	return n
}

// Equal reports whether both grids hold identical tiles
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || len(g.tiles) != len(other.tiles) {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}
