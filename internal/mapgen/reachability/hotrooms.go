package reachability

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/rooms"
	"github.com/KirkDiggler/rpg-mapgen/internal/pathing"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// HotRoomsName is the registry key
const HotRoomsName = "hot-rooms"

// HotRoomsAttempts is how many rooms are tried
const HotRoomsAttempts = 50

// HotRooms highlights the rooms the start-to-exit path passes through
type HotRooms struct {
	src rng.Source
}

// NewHotRooms returns the generator
func NewHotRooms(src rng.Source) *HotRooms {
	return &HotRooms{src: src}
}

// Setup is a no-op
func (gen *HotRooms) Setup() {}

// Build lays out rooms, anchors start and exit, then colors each room by
// whether the path touches it
func (gen *HotRooms) Build() (*mapgen.Result, error) {
	rec := frames.NewRecorder(2)

	g := grid.New()
	placed := rooms.Place(gen.src, g, rooms.Quiet(HotRoomsAttempts), nil)

	start, err := nearest(g, WestEdge, "west edge")
	if err != nil {
		return nil, err
	}
	end, err := nearest(g, EastEdge, "east edge")
	if err != nil {
		return nil, err
	}
	g.SetIdx(start, grid.GlyphPlayer, grid.Gold)
	g.SetIdx(end, grid.GlyphExit, grid.Gold)
	g.Recolor(grid.GlyphOpen, grid.Green)
	rec.Record(g, "Rooms with Start/End")

	onPath := mapset.New[int]()
	onPath.Put(start)
	for _, step := range pathing.AStar(g, start, end) {
		onPath.Put(step)
	}

	for _, r := range placed {
		color := grid.Gray
		if Touches(r.Rect, onPath) {
			color = grid.Yellow
		}
		r.Rect.Each(func(p grid.Point) {
			switch g.GlyphAt(p) {
			case grid.GlyphPlayer, grid.GlyphExit:
				return
			}
			g.Set(p, grid.GlyphOpen, color)
		})
	}
	rec.Record(g, "Important Rooms Highlighted")

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

// Touches reports whether any cell in steps lies in r or the row just below it
func Touches(r grid.Rect, steps mapset.Set[int]) bool {
	r.Y2++
	hit := false
	steps.Each(func(idx int) {
		if !hit && r.Contains(grid.PointOf(idx)) {
			hit = true
		}
	})
	return hit
}

func init() {
	mapgen.Register(HotRoomsName, "Rooms highlighted when the start-to-exit path passes through them",
		func(src rng.Source) mapgen.Generator {
			return NewHotRooms(src)
		})
}
