// Package bsp places rooms inside a pool of recursively quartered
// rectangles. Each accepted room quarters its source rectangle again, so
// the pool grows where rooms land.
package bsp

import (
	"cmp"
	"slices"

	"github.com/KirkDiggler/rpg-mapgen/internal/carve"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Name is the registry key
const Name = "bsp"

// DefaultAttempts is the number of candidate draws. Yield varies per seed.
const DefaultAttempts = 240

// Margin is how far around a candidate must stay untouched and in bounds
const Margin = 2

// Options tunes Place
type Options struct {
	Attempts      int
	RecordSteps   bool
	RoomColor     func(i int) grid.Color
	CorridorColor grid.Color
}

// DefaultOptions records every step with iteration colors
func DefaultOptions() Options {
	return Options{
		Attempts:      DefaultAttempts,
		RecordSteps:   true,
		RoomColor:     grid.IterationColor,
		CorridorColor: carve.CorridorColor,
	}
}

// Validate checks that at least one candidate is drawn
func (o Options) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("Attempts", o.Attempts, vb)
	return vb.Build()
}

// Bounds is the starting rectangle of the pool
func Bounds() grid.Rect {
	return grid.WithSize(2, 2, grid.Width-5, grid.Height-5)
}

// Subdivide splits r into four quadrants of half its size, never smaller
// than one cell
func Subdivide(r grid.Rect) [4]grid.Rect {
	halfW := max(r.Width()/2, 1)
	halfH := max(r.Height()/2, 1)

	return [4]grid.Rect{
		grid.WithSize(r.X1, r.Y1, halfW, halfH),
		grid.WithSize(r.X1, r.Y1+halfH, halfW, halfH),
		grid.WithSize(r.X1+halfW, r.Y1, halfW, halfH),
		grid.WithSize(r.X1+halfW, r.Y1+halfH, halfW, halfH),
	}
}

// IsPossible reports whether candidate grown by Margin stays inside
// 1..Width-2 x 1..Height-2 and covers only untouched cells. The grown edges
// are scanned inclusively.
func IsPossible(g *grid.Grid, candidate grid.Rect) bool {
	expanded := candidate.Grow(Margin)
	for y := expanded.Y1; y <= expanded.Y2; y++ {
		for x := expanded.X1; x <= expanded.X2; x++ {
			if x > grid.Width-2 || y > grid.Height-2 || x < 1 || y < 1 {
				return false
			}
			if t, ok := g.At(grid.Pt(x, y)); !ok || t.Glyph != grid.GlyphSolid {
				return false
			}
		}
	}
	return true
}

type pool struct {
	src   rng.Source
	rects []grid.Rect
}

func (p *pool) subdivide(r grid.Rect) {
	quads := Subdivide(r)
	p.rects = append(p.rects, quads[:]...)
}

func (p *pool) random() grid.Rect {
	if len(p.rects) == 1 {
		return p.rects[0]
	}
	return p.rects[p.src.RollDice(1, len(p.rects))-1]
}

func (p *pool) randomSubRect(r grid.Rect) grid.Rect {
	w := max(3, p.src.RollDice(1, min(r.Width(), 10))-1) + 1
	h := max(3, p.src.RollDice(1, min(r.Height(), 10))-1) + 1

	out := r
	out.X1 += p.src.RollDice(1, 6) - 1
	out.Y1 += p.src.RollDice(1, 6) - 1
	out.X2 = out.X1 + w
	out.Y2 = out.Y1 + h
	return out
}

// Place runs the partitioned placement on g and corridor-connects the
// result. It returns the accepted rooms sorted by X1.
func Place(src rng.Source, g *grid.Grid, opts Options, rec *frames.Recorder) []grid.Rect {
	if opts.RoomColor == nil {
		opts.RoomColor = grid.IterationColor
	}
	if !opts.RecordSteps {
		rec = nil
	}

	p := &pool{src: src, rects: []grid.Rect{Bounds()}}
	p.subdivide(p.rects[0])

	if rec != nil {
		preview := grid.New()
		for i, r := range p.rects {
			carve.Rect(preview, r, opts.RoomColor(i))
			rec.Record(preview, "Subdivide Starting Room")
		}
	}

	var placed []grid.Rect
	for n := 0; n < opts.Attempts; n++ {
		source := p.random()
		candidate := p.randomSubRect(source)
		if !IsPossible(g, candidate) {
			continue
		}
		carve.Rect(g, candidate, opts.RoomColor(n%12))
		placed = append(placed, candidate)
		p.subdivide(source)
		rec.Record(g, "Add Room")
	}

	slices.SortStableFunc(placed, func(a, b grid.Rect) int {
		return cmp.Compare(a.X1, b.X1)
	})
	g.ClearDefault()
	for i, r := range placed {
		carve.Rect(g, r, opts.RoomColor(i))
	}
	rec.Record(g, "Sort Rooms")

	carve.Corridors(src, g, placed, opts.CorridorColor, rec)
	return placed
}

// Generator is the standalone BSP generator
type Generator struct {
	src  rng.Source
	opts Options
}

// New returns a generator using opts
func New(src rng.Source, opts Options) *Generator {
	return &Generator{src: src, opts: opts}
}

// Setup is a no-op
func (gen *Generator) Setup() {}

// Build runs Place on a fresh grid
func (gen *Generator) Build() (*mapgen.Result, error) {
	if err := gen.opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bsp options")
	}

	g := grid.New()
	rec := frames.NewRecorder(64)
	Place(gen.src, g, gen.opts, rec)

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(Name, "Rooms carved inside a recursively quartered rectangle pool",
		func(src rng.Source) mapgen.Generator {
			return New(src, DefaultOptions())
		})
}
