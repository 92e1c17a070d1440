// Package traps places the treasure prefab into rooms and caves
package traps

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/cellular"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/rooms"
	"github.com/KirkDiggler/rpg-mapgen/internal/prefab"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Registry keys
const (
	RoomName = "not-a-trap"
	CaveName = "still-not-a-trap"
)

// PreviewBase is where the bare prefab is shown
var PreviewBase = grid.Pt(36, 20)

// Options tunes both generators
type Options struct {
	Pattern     *prefab.Pattern
	MaxAttempts int
}

// DefaultOptions places NotATrap with the default search cap
func DefaultOptions() Options {
	return Options{Pattern: prefab.NotATrap, MaxAttempts: prefab.DefaultMaxAttempts}
}

// InRoom stamps the prefab centred in a room large enough to hold it
type InRoom struct {
	src  rng.Source
	opts Options
}

// NewInRoom returns the room variant
func NewInRoom(src rng.Source, opts Options) *InRoom {
	return &InRoom{src: src, opts: opts}
}

// Setup is a no-op
func (gen *InRoom) Setup() {}

// Build lays out rooms, previews the prefab, then places it
func (gen *InRoom) Build() (*mapgen.Result, error) {
	rec := frames.NewRecorder(3)

	g := grid.New()
	placed := rooms.Place(gen.src, g, rooms.Quiet(rooms.DefaultAttempts), nil)
	rec.Record(g, "Basic Rooms Map")

	preview := grid.New()
	prefab.Stamp(preview, gen.opts.Pattern, PreviewBase, prefab.TrapMapping)
	rec.Record(preview, "This Prefab is Definitely Not A Trap")

	base, err := prefab.FitInRoom(gen.src, rooms.Rects(placed), gen.opts.Pattern, gen.opts.MaxAttempts)
	if err != nil {
		return nil, errors.Wrap(err, "no room fits the prefab")
	}
	prefab.Stamp(g, gen.opts.Pattern, base, prefab.TrapMapping)
	rec.Record(g, "Place Prefab in Room that Fits")

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

// InCave stamps the prefab where a cave is open across its whole footprint
type InCave struct {
	src  rng.Source
	opts Options
}

// NewInCave returns the cave variant
func NewInCave(src rng.Source, opts Options) *InCave {
	return &InCave{src: src, opts: opts}
}

// Setup is a no-op
func (gen *InCave) Setup() {}

// Build grows a cave, then places the prefab on solid open ground
func (gen *InCave) Build() (*mapgen.Result, error) {
	rec := frames.NewRecorder(2)

	g := cellular.Cave(gen.src, cellular.DefaultIterations)
	rec.Record(g, "Cellular Automata Map")

	base, err := prefab.FitSolidBlock(gen.src, g, gen.opts.Pattern, gen.opts.MaxAttempts)
	if err != nil {
		return nil, errors.Wrap(err, "no open area fits the prefab")
	}
	prefab.Stamp(g, gen.opts.Pattern, base, prefab.TrapMapping)
	rec.Record(g, "Found a place for the prefab")

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(RoomName, "Rooms with a treasure prefab placed in one that fits",
		func(src rng.Source) mapgen.Generator {
			return NewInRoom(src, DefaultOptions())
		})
	mapgen.Register(CaveName, "A cave with a treasure prefab placed on open ground",
		func(src rng.Source) mapgen.Generator {
			return NewInCave(src, DefaultOptions())
		})
}
