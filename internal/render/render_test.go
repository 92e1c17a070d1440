package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/render"
)

func TestText(t *testing.T) {
	g := grid.New()
	g.Set(grid.Pt(0, 0), grid.GlyphOpen, grid.Red)
	g.Set(grid.Pt(grid.Width-1, grid.Height-1), grid.GlyphExit, grid.Gold)

	out := render.Text(g)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, grid.Height)
	for _, line := range lines {
		assert.Len(t, line, grid.Width)
	}
	assert.Equal(t, "#"+strings.Repeat(".", grid.Width-1), lines[0])
	assert.Equal(t, strings.Repeat(".", grid.Width-1)+">", lines[grid.Height-1])
}

func TestANSIEmitsEscapeOnColorChange(t *testing.T) {
	g := grid.New()
	g.Set(grid.Pt(1, 0), grid.GlyphOpen, grid.Red)

	out := render.ANSI(g)
	first := strings.SplitN(out, "\n", 2)[0]

	gray := render.Foreground(grid.DarkGray)
	red := render.Foreground(grid.Red)
	assert.Equal(t, "\x1b[38;2;169;169;169m", gray)
	assert.True(t, strings.HasPrefix(first, gray+"."+red+"#"+gray+"."))
	assert.True(t, strings.HasSuffix(first, "\x1b[0m"))
	// one escape per row for a uniform row
	second := strings.Split(out, "\n")[1]
	assert.Equal(t, 1, strings.Count(second, "\x1b[38;2;"))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "[1/3] Basic Rooms Map", render.Header(0, 3, "Basic Rooms Map"))
}

func TestWriterSequence(t *testing.T) {
	seq := frames.Sequence{
		{Grid: grid.New(), Label: "first"},
		{Grid: grid.New(), Label: "second"},
	}

	t.Run("all", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := render.NewWriter(&render.Config{Out: &buf})
		require.NoError(t, err)

		require.NoError(t, w.Sequence(seq, render.ModeAll))
		assert.Contains(t, buf.String(), "[1/2] first\n")
		assert.Contains(t, buf.String(), "[2/2] second\n")
		assert.NotContains(t, buf.String(), "\x1b[")
	})

	t.Run("last", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := render.NewWriter(&render.Config{Out: &buf, Color: true, ClearScreen: true})
		require.NoError(t, err)

		require.NoError(t, w.Sequence(seq, render.ModeLast))
		assert.NotContains(t, buf.String(), "first")
		assert.True(t, strings.HasPrefix(buf.String(), "\x1b[H\x1b[2J[2/2] second\n"))
	})

	t.Run("empty last", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := render.NewWriter(&render.Config{Out: &buf})
		require.NoError(t, err)
		require.NoError(t, w.Sequence(nil, render.ModeLast))
		assert.Empty(t, buf.String())
	})

	t.Run("unknown mode", func(t *testing.T) {
		w, err := render.NewWriter(&render.Config{Out: &bytes.Buffer{}})
		require.NoError(t, err)
		err = w.Sequence(seq, render.Mode("some"))
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestNewWriterValidation(t *testing.T) {
	_, err := render.NewWriter(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = render.NewWriter(&render.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
}
