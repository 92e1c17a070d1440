package reachability

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen/cellular"
	"github.com/KirkDiggler/rpg-mapgen/internal/pathing"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// UnreachableName is the registry key
const UnreachableName = "unreachable"

// Unreachable marks the parts of a cave that cannot be walked to from its
// centre
type Unreachable struct {
	src rng.Source
}

// NewUnreachable returns the generator
func NewUnreachable(src rng.Source) *Unreachable {
	return &Unreachable{src: src}
}

// Setup is a no-op
func (gen *Unreachable) Setup() {}

// Build grows a cave, anchors the centre and shades by distance
func (gen *Unreachable) Build() (*mapgen.Result, error) {
	rec := frames.NewRecorder(3)

	g := cellular.Cave(gen.src, cellular.DefaultIterations)
	rec.Record(g, "Cellular Automata Map")

	start, err := nearest(g, Center, "center")
	if err != nil {
		return nil, err
	}
	g.SetIdx(start, grid.GlyphPlayer, grid.Gold)
	rec.Record(g, "Central Open Point")

	Shade(g, pathing.DistanceField(g, []int{start}, MaxDistance))
	rec.Record(g, "Mark Reachable/Unreachable")

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(UnreachableName, "A cave shaded by walking distance from its centre",
		func(src rng.Source) mapgen.Generator {
			return NewUnreachable(src)
		})
}
