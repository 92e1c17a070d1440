package grid

// Glyphs shared by the generators. Solid is the untouched background every
// grid starts as; Open is carved space and is what pathing walks on.
const (
	GlyphSolid    = '.'
	GlyphOpen     = '#'
	GlyphWater    = '~'
	GlyphGrass    = ';'
	GlyphMountain = '^'
	GlyphDanger   = '^'
	GlyphMarker   = '*'
	GlyphDiscard  = '!'
	GlyphPlayer   = '@'
	GlyphExit     = '>'
	GlyphTreasure = '$'
)

// State is per-cell algorithm bookkeeping kept apart from Color
type State uint8

const (
	// StateDefault is the state of every untouched or plainly stamped cell
	StateDefault State = iota
	// StateActive marks cells dug during the current growth pass
	StateActive
	// StateSettled marks cells dug during an earlier pass
	StateSettled
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateSettled:
		return "settled"
	default:
		return "default"
	}
}

// Tile is one cell of a grid
type Tile struct {
	Glyph rune  `json:"glyph"`
	Color Color `json:"color"`
	State State `json:"state,omitempty"`
}

// DefaultTile is the background every grid starts with
func DefaultTile() Tile {
	return Tile{Glyph: GlyphSolid, Color: DarkGray}
}
