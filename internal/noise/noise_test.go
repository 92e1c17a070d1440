package noise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
)

type NoiseTestSuite struct {
	suite.Suite
	params noise.Params
}

func TestNoiseSuite(t *testing.T) {
	suite.Run(t, new(NoiseTestSuite))
}

func (s *NoiseTestSuite) SetupTest() {
	s.params = noise.Params{Seed: 4, Octaves: 3, Gain: 0.5, Lacunarity: 2, Frequency: 0.08}
}

func (s *NoiseTestSuite) TestDeterministic() {
	for _, basis := range []noise.Basis{noise.BasisSimplex, noise.BasisPerlin} {
		s.Run(basis.String(), func() {
			p := s.params
			p.Basis = basis
			a, b := noise.NewFractal(p), noise.NewFractal(p)
			for x := 0.0; x < 20; x += 1.3 {
				s.Equal(a.Eval(x, x*0.7), b.Eval(x, x*0.7))
			}
		})
	}
}

func (s *NoiseTestSuite) TestRange() {
	for _, basis := range []noise.Basis{noise.BasisSimplex, noise.BasisPerlin} {
		p := s.params
		p.Basis = basis
		p.Octaves = 10
		f := noise.NewFractal(p)
		for y := 0; y < 50; y++ {
			for x := 0; x < 80; x++ {
				n := f.Eval(float64(x), float64(y))
				s.GreaterOrEqual(n, -1.0)
				s.LessOrEqual(n, 1.0)
			}
		}
	}
}

func (s *NoiseTestSuite) TestSeedsDiffer() {
	a := noise.NewFractal(s.params)
	p := s.params
	p.Seed = 5
	b := noise.NewFractal(p)

	differs := false
	for x := 0.5; x < 40; x += 1.7 {
		if a.Eval(x, x) != b.Eval(x, x) {
			differs = true
			break
		}
	}
	s.True(differs)
}

func (s *NoiseTestSuite) TestZeroOctavesBecomeOne() {
	p := s.params
	p.Octaves = 0
	s.Equal(1, noise.NewFractal(p).Params().Octaves)
}

func (s *NoiseTestSuite) TestSecondaryParams() {
	p := noise.Params{Seed: 4, Octaves: 3, Gain: 0.005, Lacunarity: 4, Frequency: 0.08, Basis: noise.BasisPerlin}
	got := noise.SecondaryParams(p)

	s.Equal(int64(48), got.Seed)
	s.Equal(1, got.Octaves)
	s.InDelta(0.0025, got.Gain, 1e-12)
	s.Equal(5.0, got.Lacunarity)
	s.InDelta(0.32, got.Frequency, 1e-12)
	s.Equal(noise.BasisPerlin, got.Basis)
}

func TestLayeredBlend(t *testing.T) {
	var primaryAt, secondaryAt [2]float64
	primary := noise.FieldFunc(func(x, y float64) float64 {
		primaryAt = [2]float64{x, y}
		return 0.4
	})
	secondary := noise.FieldFunc(func(x, y float64) float64 {
		secondaryAt = [2]float64{x, y}
		return 1
	})

	zoomedOut := noise.Layered{Primary: primary, Secondary: secondary, Scale: 1}
	// Scale 1: primary at half resolution, the detail layer weighted negatively.
	assert.InDelta(t, 0.4-0.25, zoomedOut.Eval(10, 20), 1e-12)
	assert.Equal(t, [2]float64{5, 10}, primaryAt)
	assert.Equal(t, [2]float64{10, 20}, secondaryAt)

	zoomedIn := noise.Layered{Primary: primary, Secondary: secondary, Scale: 0.2}
	assert.InDelta(t, 0.4*0.5+0.25, zoomedIn.Eval(10, 20), 1e-12)
	assert.InDelta(t, 1.0, primaryAt[0], 1e-12)
	assert.InDelta(t, 2.0, secondaryAt[0], 1e-12)
}

func TestParseBasis(t *testing.T) {
	testCases := []struct {
		name string
		want noise.Basis
	}{
		{"perlin", noise.BasisPerlin},
		{"simplex", noise.BasisSimplex},
		{"", noise.BasisSimplex},
	}
	for _, tc := range testCases {
		got, err := noise.ParseBasis(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	_, err := noise.ParseBasis("worley")
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, []string{"simplex", "perlin"}, noise.BasisNames())
}
