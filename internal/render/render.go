// Package render turns grids and frame sequences into terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
)

const (
	ansiReset = "\x1b[0m"
	// ansiClear moves the cursor home and clears the screen
	ansiClear = "\x1b[H\x1b[2J"
)

// Mode selects which frames of a sequence get written
type Mode string

const (
	ModeAll  Mode = "all"
	ModeLast Mode = "last"
)

// Modes lists the accepted mode names
func Modes() []string {
	return []string{string(ModeAll), string(ModeLast)}
}

// Text renders the glyphs only, one line per row
func Text(g *grid.Grid) string {
	var b strings.Builder
	b.Grow(grid.Size + grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			b.WriteRune(g.Tile(grid.Idx(x, y)).Glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ANSI renders glyphs with 24-bit foreground colors. An escape is emitted
// only when the color changes, and every row ends with a reset.
func ANSI(g *grid.Grid) string {
	var b strings.Builder
	for y := 0; y < grid.Height; y++ {
		var current grid.Color
		started := false
		for x := 0; x < grid.Width; x++ {
			t := g.Tile(grid.Idx(x, y))
			if !started || t.Color != current {
				b.WriteString(Foreground(t.Color))
				current = t.Color
				started = true
			}
			b.WriteRune(t.Glyph)
		}
		b.WriteString(ansiReset)
		b.WriteByte('\n')
	}
	return b.String()
}

// Foreground is the escape sequence selecting c as the text color
func Foreground(c grid.Color) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Header is the line printed above a frame
func Header(index, total int, label string) string {
	return fmt.Sprintf("[%d/%d] %s", index+1, total, label)
}

// Config controls a Writer
type Config struct {
	Out io.Writer
	// Color switches between ANSI and plain text output
	Color bool
	// ClearScreen emits a clear before every frame
	ClearScreen bool
}

// Validate ensures the writer has somewhere to write
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Out == nil {
		vb.RequiredField("Out")
	}
	return vb.Build()
}

// Writer prints frames to a terminal or file
type Writer struct {
	out   io.Writer
	color bool
	clear bool
}

// NewWriter creates a writer from cfg
func NewWriter(cfg *Config) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Writer{out: cfg.Out, color: cfg.Color, clear: cfg.ClearScreen}, nil
}

// Frame writes a header line followed by the grid
func (w *Writer) Frame(f frames.Frame, index, total int) error {
	var b strings.Builder
	if w.clear {
		b.WriteString(ansiClear)
	}
	b.WriteString(Header(index, total, f.Label))
	b.WriteByte('\n')
	if w.color {
		b.WriteString(ANSI(f.Grid))
	} else {
		b.WriteString(Text(f.Grid))
	}

	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return errors.Wrap(err, "failed to write frame")
	}
	return nil
}

// Sequence writes the frames selected by mode
func (w *Writer) Sequence(seq frames.Sequence, mode Mode) error {
	switch mode {
	case ModeAll:
		for i, f := range seq {
			if err := w.Frame(f, i, len(seq)); err != nil {
				return err
			}
		}
		return nil
	case ModeLast:
		if len(seq) == 0 {
			return nil
		}
		return w.Frame(seq[len(seq)-1], len(seq)-1, len(seq))
	default:
		return errors.InvalidArgumentf("unknown frame mode %q", mode)
	}
}
