package terrain

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
	"github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

// Registry keys
const (
	ZoomName        = "noise-zoom"
	DoubleNoiseName = "double-noise"
)

// ZoomParams drive both zoom generators
var ZoomParams = noise.Params{Seed: 4, Octaves: 3, Gain: 0.005, Lacunarity: 4, Frequency: 0.08}

// Zoom sweeps the scale of a single field. With Layered set, a detail field
// is blended in as the view zooms.
type Zoom struct {
	opts    Options
	layered bool
}

// NewZoom returns the single-field sweep
func NewZoom(opts Options) *Zoom {
	return &Zoom{opts: opts}
}

// NewDoubleNoise returns the layered sweep
func NewDoubleNoise(opts Options) *Zoom {
	return &Zoom{opts: opts, layered: true}
}

// UseBasis switches the base noise of both layers
func (gen *Zoom) UseBasis(b noise.Basis) {
	gen.opts.Basis = b
}

// Setup is a no-op
func (gen *Zoom) Setup() {}

// Build renders the zoomed-out map and then one map per scale
func (gen *Zoom) Build() (*mapgen.Result, error) {
	primaryParams := ZoomParams
	primaryParams.Basis = gen.opts.Basis
	primary := noise.NewFractal(primaryParams)
	secondary := noise.NewFractal(noise.SecondaryParams(primaryParams))

	sweep := ScaleSweep()
	rec := frames.NewRecorder(len(sweep) + 3)

	at := func(scale float64) noise.Field {
		if gen.layered {
			return noise.Layered{Primary: primary, Secondary: secondary, Scale: scale}
		}
		return Scaled(primary, scale*0.5, scale*0.5)
	}

	if gen.layered {
		rec.Record(Paint(Scaled(primary, 0.5, 0.5), flatWaterTile), "First Noise Map")
		rec.Record(Paint(Scaled(secondary, 0.5, 0.5), flatWaterTile), "Second Noise Map")
	}
	g := Paint(at(1), flatWaterTile)
	rec.Record(g, "Zoomed Out")

	for _, s := range sweep {
		g = Paint(at(float64(s)), flatWaterTile)
		rec.Record(g, ScaleLabel(s))
	}

	return &mapgen.Result{Grid: g, Frames: rec.Frames()}, nil
}

func init() {
	mapgen.Register(ZoomName, "Classified noise viewed at shrinking scales",
		func(_ rng.Source) mapgen.Generator {
			return NewZoom(DefaultOptions())
		})
	mapgen.Register(DoubleNoiseName, "Zoom sweep blending a coarse and a detail noise layer",
		func(_ rng.Source) mapgen.Generator {
			return NewDoubleNoise(DefaultOptions())
		})
}
