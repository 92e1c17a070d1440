// Package rng is the seedable random stream every generator is built with.
// Nothing in the module draws randomness from a global source.
package rng

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

//go:generate mockgen -destination=mock/mock_source.go -package=rngmock github.com/KirkDiggler/rpg-mapgen/internal/rng Source

// Source is a uniform integer and float stream. It doubles as a dice.Roller
// so toolkit code can roll against the same stream.
type Source interface {
	dice.Roller

	// Range returns a value in [lo, hi). It returns lo when the range is empty.
	Range(lo, hi int) int
	// RollDice returns the sum of n rolls of a sides-faced die.
	RollDice(n, sides int) int
	// Intn returns a value in [0, n). It returns 0 when n <= 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Seed restarts the stream.
	Seed(seed int64)
}

// PCG is the default Source, backed by math/rand/v2's PCG generator
type PCG struct {
	pcg  *rand.PCG
	rand *rand.Rand
	seed int64
}

// New returns a PCG source seeded with seed
func New(seed int64) *PCG {
	pcg := rand.NewPCG(uint64(seed), 0)
	return &PCG{
		pcg:  pcg,
		rand: rand.New(pcg),
		seed: seed,
	}
}

// Seed restarts the stream so the same seed replays the same values
func (s *PCG) Seed(seed int64) {
	s.pcg.Seed(uint64(seed), 0)
	s.seed = seed
}

// CurrentSeed returns the seed the stream was last started with
func (s *PCG) CurrentSeed() int64 {
	return s.seed
}

// Range returns a value in [lo, hi)
func (s *PCG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rand.IntN(hi-lo)
}

// RollDice sums n rolls of 1..sides
func (s *PCG) RollDice(n, sides int) int {
	if sides < 1 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += 1 + s.rand.IntN(sides)
	}
	return total
}

// Intn returns a value in [0, n)
func (s *PCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rand.IntN(n)
}

// Float64 returns a value in [0, 1)
func (s *PCG) Float64() float64 {
	return s.rand.Float64()
}

// Roll implements dice.Roller
func (s *PCG) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	return 1 + s.rand.IntN(size), nil
}

// RollN implements dice.Roller
func (s *PCG) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("roll count must not be negative: %d", count)
	}
	if size < 1 {
		return nil, errors.InvalidArgumentf("die size must be positive: %d", size)
	}

	results := make([]int, count)
	for i := range results {
		results[i] = 1 + s.rand.IntN(size)
	}
	return results, nil
}

// SliceEntry picks one element of s uniformly. It reports false for an
// empty slice.
func SliceEntry[T any](src Source, s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[src.Intn(len(s))], true
}
