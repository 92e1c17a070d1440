package grid

import (
	"encoding/hex"
	"encoding/json"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

// wireGrid is the compact JSON form of a grid: one string of glyphs, the
// colors as one hex string, and the states as one digit per cell
type wireGrid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Glyphs string `json:"glyphs"`
	Colors string `json:"colors"`
	States string `json:"states,omitempty"`
}

// Tiles returns a copy of the tiles in row-major order
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// FromTiles builds a grid from exactly Size row-major tiles
func FromTiles(tiles []Tile) (*Grid, error) {
	if len(tiles) != Size {
		return nil, errors.InvalidArgumentf("expected %d tiles, got %d", Size, len(tiles))
	}
	g := &Grid{tiles: make([]Tile, Size)}
	copy(g.tiles, tiles)
	return g, nil
}

// MarshalJSON implements json.Marshaler
func (g *Grid) MarshalJSON() ([]byte, error) {
	glyphs := make([]rune, len(g.tiles))
	colors := make([]byte, 0, len(g.tiles)*3)
	states := make([]byte, len(g.tiles))
	anyState := false
	for i, t := range g.tiles {
		glyphs[i] = t.Glyph
		colors = append(colors, t.Color.R, t.Color.G, t.Color.B)
		states[i] = '0' + byte(t.State)
		anyState = anyState || t.State != StateDefault
	}

	w := wireGrid{
		Width:  Width,
		Height: Height,
		Glyphs: string(glyphs),
		Colors: hex.EncodeToString(colors),
	}
	if anyState {
		w.States = string(states)
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler
func (g *Grid) UnmarshalJSON(data []byte) error {
	var w wireGrid
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Wrap(err, "failed to decode grid")
	}
	if w.Width != Width || w.Height != Height {
		return errors.InvalidArgumentf("grid is %dx%d, expected %dx%d", w.Width, w.Height, Width, Height)
	}

	glyphs := []rune(w.Glyphs)
	colors, err := hex.DecodeString(w.Colors)
	if err != nil {
		return errors.Wrap(err, "failed to decode grid colors")
	}
	if len(glyphs) != Size || len(colors) != Size*3 {
		return errors.InvalidArgument("grid payload does not match its dimensions")
	}
	if w.States != "" && len(w.States) != Size {
		return errors.InvalidArgument("grid states do not match its dimensions")
	}

	tiles := make([]Tile, Size)
	for i := range tiles {
		tiles[i] = Tile{
			Glyph: glyphs[i],
			Color: Color{R: colors[i*3], G: colors[i*3+1], B: colors[i*3+2]},
		}
		if w.States != "" {
			tiles[i].State = State(w.States[i] - '0')
		}
	}
	g.tiles = tiles
	return nil
}
