// Package rooms places non-overlapping rectangular rooms and joins them
// with L-shaped corridors. Other generators reuse Place to start from a
// rooms-and-corridors map.
package rooms

import (
	"cmp"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-mapgen/internal/carve"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Name is the registry key
const Name = "rooms"

// DefaultAttempts is how many candidates are drawn
const DefaultAttempts = 20

// EntityType is what Room.GetType reports
const EntityType = "room"

// Room is an accepted rectangle. Iteration is its acceptance order, which
// picks its color and survives sorting.
type Room struct {
	ID        string    `json:"id"`
	Rect      grid.Rect `json:"rect"`
	Iteration int       `json:"iteration"`
}

var _ core.Entity = (*Room)(nil)

// GetID implements core.Entity
func (r *Room) GetID() string {
	return r.ID
}

// GetType implements core.Entity
func (r *Room) GetType() string {
	return EntityType
}

// Options tunes Place
type Options struct {
	Attempts       int
	RecordDiscards bool
	RecordSteps    bool
	CorridorColor  grid.Color
	// RoomColor paints a room by its acceptance order
	RoomColor   func(iteration int) grid.Color
	IDGenerator idgen.Generator
}

// DefaultOptions records every step
func DefaultOptions() Options {
	return Options{
		Attempts:       DefaultAttempts,
		RecordDiscards: true,
		RecordSteps:    true,
		CorridorColor:  carve.CorridorColor,
		RoomColor:      grid.IterationColor,
	}
}

// Validate checks that at least one candidate is drawn
func (o Options) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("Attempts", o.Attempts, vb)
	return vb.Build()
}

// Quiet is DefaultOptions with recording switched off
func Quiet(attempts int) Options {
	opts := DefaultOptions()
	opts.Attempts = attempts
	opts.RecordDiscards = false
	opts.RecordSteps = false
	return opts
}

// Place draws opts.Attempts candidates, stamps the accepted ones, sorts them
// by X1 and carves corridors between neighbours. It returns the rooms in
// sorted order.
func Place(src rng.Source, g *grid.Grid, opts Options, rec *frames.Recorder) []Room {
	if opts.RoomColor == nil {
		opts.RoomColor = grid.IterationColor
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = idgen.NewSequential(EntityType)
	}

	var steps, discards *frames.Recorder
	if opts.RecordSteps {
		steps = rec
	}
	if opts.RecordDiscards {
		discards = rec
	}

	var placed []Room
	for i := 0; i < opts.Attempts; i++ {
		candidate := grid.WithSize(
			src.Range(1, grid.Width-10),
			src.Range(1, grid.Height-10),
			src.Range(2, 10),
			src.Range(2, 10),
		)

		if Overlaps(placed, candidate) {
			if discards != nil {
				discard := g.Clone()
				candidate.Each(func(p grid.Point) {
					discard.Set(p, grid.GlyphDiscard, grid.IterationColor(-1))
				})
				discards.Record(discard, "Discard Frame")
			}
			continue
		}

		iteration := len(placed)
		carve.Rect(g, candidate, opts.RoomColor(iteration))
		placed = append(placed, Room{
			ID:        opts.IDGenerator.Generate(),
			Rect:      candidate,
			Iteration: iteration,
		})
		steps.Recordf(g, "Add room %d", len(placed))
	}

	Sort(placed)
	g.ClearDefault()
	for _, r := range placed {
		carve.Rect(g, r.Rect, opts.RoomColor(r.Iteration))
	}
	steps.Record(g, "Sort Rooms")

	carve.Corridors(src, g, Rects(placed), opts.CorridorColor, steps)
	return placed
}

// Overlaps reports whether candidate touches any placed room grown by one
func Overlaps(placed []Room, candidate grid.Rect) bool {
	for _, r := range placed {
		if r.Rect.Grow(1).Intersects(candidate) {
			return true
		}
	}
	return false
}

// Sort orders rooms by X1, keeping the original order for ties
func Sort(rooms []Room) {
	slices.SortStableFunc(rooms, func(a, b Room) int {
		return cmp.Compare(a.Rect.X1, b.Rect.X1)
	})
}

// Rects extracts the rectangles
func Rects(rooms []Room) []grid.Rect {
	out := make([]grid.Rect, len(rooms))
	for i, r := range rooms {
		out[i] = r.Rect
	}
	return out
}

// Generator is the standalone rooms-and-corridors generator
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
		return nil, errors.Wrap(err, "invalid rooms options")
	}

	g := grid.New()
	rec := frames.NewRecorder(2*gen.opts.Attempts + 1)
	Place(gen.src, g, gen.opts, rec)

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(Name, "Random rooms with overlap rejection, sorted and joined by corridors",
		func(src rng.Source) mapgen.Generator {
			return New(src, DefaultOptions())
		})
}
