package terrain

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// OverworldName is the registry key
const OverworldName = "overworld"

// OverworldSeeds is how many seeds are rendered, starting at zero
const OverworldSeeds = 50

// OverworldParams are the fractal settings shared by every seed
var OverworldParams = noise.Params{Octaves: 10, Gain: 0.1, Lacunarity: 5, Frequency: 2}

// Overworld renders one classified terrain map per seed
type Overworld struct {
	opts Options
}

// NewOverworld returns the overworld generator
func NewOverworld(opts Options) *Overworld {
	return &Overworld{opts: opts}
}

// UseBasis switches the base noise
func (gen *Overworld) UseBasis(b noise.Basis) {
	gen.opts.Basis = b
}

// Setup is a no-op
func (gen *Overworld) Setup() {}

// Build renders seeds 0 through OverworldSeeds-1
func (gen *Overworld) Build() (*mapgen.Result, error) {
	rec := frames.NewRecorder(OverworldSeeds)
	var g *grid.Grid
	for seed := range OverworldSeeds {
		p := OverworldParams
		p.Seed = int64(seed)
		p.Basis = gen.opts.Basis
		field := Scaled(noise.NewFractal(p), 1.0/100, 1.0/50)
		g = Paint(field, waterRampTile)
		rec.Recordf(g, "Seed: %d", seed)
	}

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(OverworldName, "Water, grass and mountains classified from noise, one map per seed",
		func(_ rng.Source) mapgen.Generator {
			return NewOverworld(DefaultOptions())
		})
}
