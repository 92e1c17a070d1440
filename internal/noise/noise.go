// Package noise provides fractal (fBm) coherent-noise fields over a simplex
// or perlin base, plus the two-layer blend used for zoomable terrain.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

// Basis selects the base noise function
type Basis int

const (
	// BasisSimplex uses OpenSimplex noise
	BasisSimplex Basis = iota
	// BasisPerlin uses classic Perlin noise
	BasisPerlin
)

// String returns the basis name
func (b Basis) String() string {
	if b == BasisPerlin {
		return "perlin"
	}
	return "simplex"
}

// BasisNames lists the accepted basis names
func BasisNames() []string {
	return []string{BasisSimplex.String(), BasisPerlin.String()}
}

// ParseBasis maps a name to a Basis. An empty name is simplex.
func ParseBasis(name string) (Basis, error) {
	switch name {
	case "", "simplex":
		return BasisSimplex, nil
	case "perlin":
		return BasisPerlin, nil
	default:
		return BasisSimplex, errors.InvalidArgumentf("unknown noise basis %q", name).
			WithMeta("allowed", BasisNames())
	}
}

// Perlin base tuning
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// Params configures a fractal field
type Params struct {
	Seed       int64
	Octaves    int
	Gain       float64
	Lacunarity float64
	Frequency  float64
	Basis      Basis
}

// SecondaryParams derives the detail layer used by the layered blend
func SecondaryParams(p Params) Params {
	return Params{
		Seed:       p.Seed * 12,
		Octaves:    p.Octaves / 2,
		Gain:       p.Gain / 2,
		Lacunarity: p.Lacunarity + 1,
		Frequency:  p.Frequency * 4,
		Basis:      p.Basis,
	}
}

// Field is a deterministic 2D scalar field
type Field interface {
	Eval(x, y float64) float64
}

// FieldFunc adapts a function to Field
type FieldFunc func(x, y float64) float64

// Eval calls f
func (f FieldFunc) Eval(x, y float64) float64 {
	return f(x, y)
}

// Fractal sums octaves of a base noise
type Fractal struct {
	params Params
	base   FieldFunc
}

// NewFractal builds a field for p. Fewer than one octave is treated as one.
func NewFractal(p Params) *Fractal {
	if p.Octaves < 1 {
		p.Octaves = 1
	}

	var base FieldFunc
	switch p.Basis {
	case BasisPerlin:
		gen := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, p.Seed)
		base = gen.Noise2D
	default:
		base = opensimplex.New(p.Seed).Eval2
	}

	return &Fractal{params: p, base: base}
}

// Params returns the configuration after defaults were applied
func (f *Fractal) Params() Params {
	return f.params
}

// Eval samples the field at (x, y). The octave sum is normalised by the total
// amplitude and clamped so the result stays in [-1, 1].
func (f *Fractal) Eval(x, y float64) float64 {
	freq := f.params.Frequency
	amp := 1.0
	sum, total := 0.0, 0.0
	for range f.params.Octaves {
		sum += amp * f.base(x*freq, y*freq)
		total += amp
		freq *= f.params.Lacunarity
		amp *= f.params.Gain
	}
	if total == 0 {
		return 0
	}
	return clamp(sum / total)
}

// Layered blends a coarse primary field with a detail field. Scale 1 is
// zoomed out; smaller scales zoom in and let more detail through.
type Layered struct {
	Primary   Field
	Secondary Field
	Scale     float64
}

// Eval samples the blend at cell (x, y)
func (l Layered) Eval(x, y float64) float64 {
	s := l.Scale
	n := l.Primary.Eval(x*s*0.5, y*s*0.5) * math.Max(0.5, s)
	return n + math.Min(0.25, 0.75-s)*l.Secondary.Eval(x*s, y*s)
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
