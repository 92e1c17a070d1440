package terrain

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// PerlinName is the registry key of the parameter showcase
const PerlinName = "perlin"

const perlinSeed = 2

// PerlinParams are the showcased fractal settings, in frame order
var PerlinParams = []noise.Params{
	{Octaves: 1, Gain: 0.2, Lacunarity: 1, Frequency: 1},
	{Octaves: 10, Gain: 0.2, Lacunarity: 1, Frequency: 1},
	{Octaves: 10, Gain: 0.5, Lacunarity: 1, Frequency: 1},
	{Octaves: 10, Gain: 0.2, Lacunarity: 5, Frequency: 1},
	{Octaves: 10, Gain: 0.2, Lacunarity: 5, Frequency: 5},
}

// Perlin renders one grayscale field per parameter set
type Perlin struct {
	opts Options
}

// NewPerlin returns the showcase generator
func NewPerlin(opts Options) *Perlin {
	return &Perlin{opts: opts}
}

// UseBasis switches the base noise
func (gen *Perlin) UseBasis(b noise.Basis) {
	gen.opts.Basis = b
}

// Setup is a no-op
func (gen *Perlin) Setup() {}

// Build renders every parameter set
func (gen *Perlin) Build() (*mapgen.Result, error) {
	rec := frames.NewRecorder(len(PerlinParams))
	var g *grid.Grid
	for _, p := range PerlinParams {
		p.Seed = perlinSeed
		p.Basis = gen.opts.Basis
		field := Scaled(noise.NewFractal(p), 1.0/50, 1.0/25)
		g = Paint(field, Grayscale)
		rec.Recordf(g, "Octaves: %d, Gain: %v, Lacunarity: %v, Frequency: %v",
			p.Octaves, p.Gain, p.Lacunarity, p.Frequency)
	}

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(PerlinName, "Grayscale fractal noise under five parameter sets",
		func(_ rng.Source) mapgen.Generator {
			return NewPerlin(DefaultOptions())
		})
}
