package reachability

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/cellular"
	"github.com/KirkDiggler/rpg-mapgen/internal/pathing"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// EndingRightName is the registry key
const EndingRightName = "ending-right"

// EndingRight places a start on the west side of a cave and the exit as far
// east as the cave allows, then draws the path between them
type EndingRight struct {
	src rng.Source
}

// NewEndingRight returns the generator
func NewEndingRight(src rng.Source) *EndingRight {
	return &EndingRight{src: src}
}

// Setup is a no-op
func (gen *EndingRight) Setup() {}

// Build prunes the cave to the region around its centre and routes west to
// east through it
func (gen *EndingRight) Build() (*mapgen.Result, error) {
	rec := frames.NewRecorder(1)

	g := cellular.Cave(gen.src, cellular.DefaultIterations)

	center, err := nearest(g, Center, "center")
	if err != nil {
		return nil, err
	}
	Prune(g, pathing.DistanceField(g, []int{center}, MaxDistance))

	start, err := nearest(g, WestEdge, "west edge")
	if err != nil {
		return nil, err
	}
	g.SetIdx(start, grid.GlyphPlayer, grid.Gold)

	end, err := nearest(g, EastEdge, "east edge")
	if err != nil {
		return nil, err
	}

	for _, step := range pathing.AStar(g, start, end) {
		g.SetIdx(step, grid.GlyphMarker, grid.Purple)
	}
	g.SetIdx(start, grid.GlyphPlayer, grid.Gold)
	g.Set(EastEdge, grid.GlyphDiscard, grid.Red)
	g.SetIdx(end, grid.GlyphExit, grid.Gold)
	rec.Record(g, " Exit by direction ")

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(EndingRightName, "A cave with a start in the west and the exit as far east as it goes",
		func(src rng.Source) mapgen.Generator {
			return NewEndingRight(src)
		})
}
