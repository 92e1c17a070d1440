// Package viewer plays frame sequences in a window. The ebiten game lives
// behind the ebiten build tag; the cursor and pixel conversion here build
// without it.
package viewer

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
)

// Player is a cursor over a frame sequence
type Player struct {
	seq   frames.Sequence
	index int
}

// NewPlayer starts at the first frame
func NewPlayer(seq frames.Sequence) *Player {
	return &Player{seq: seq}
}

// Current returns the frame under the cursor
func (p *Player) Current() (frames.Frame, bool) {
	if p.index >= len(p.seq) {
		return frames.Frame{}, false
	}
	return p.seq[p.index], true
}

// Index is the cursor position
func (p *Player) Index() int {
	return p.index
}

// Len is the number of frames
func (p *Player) Len() int {
	return len(p.seq)
}

// Next advances the cursor. It reports false once the last frame has
// already been shown.
func (p *Player) Next() bool {
	if p.index+1 >= len(p.seq) {
		p.index = len(p.seq)
		return false
	}
	p.index++
	return true
}

// Done reports whether the sequence has been played out
func (p *Player) Done() bool {
	return p.index >= len(p.seq)
}

// FillRGBA writes one RGBA pixel per cell into buf, which must hold
// grid.Size*4 bytes. Solid cells are drawn at a quarter of their color.
func FillRGBA(buf []byte, g *grid.Grid) {
	for i := 0; i < grid.Size; i++ {
		t := g.Tile(i)
		c := t.Color
		if t.Glyph == grid.GlyphSolid {
			c = grid.Color{R: c.R / 4, G: c.G / 4, B: c.B / 4}
		}
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 0xff
	}
}
