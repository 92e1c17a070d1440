package mapgen

import (
	"time"

	generators "github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/runs"
)

// GenerateInput defines the request for running one generator
type GenerateInput struct {
	Generator string
	// Seed is used when HasSeed is set; otherwise one is rolled
	Seed    int64
	HasSeed bool
	// Noise is the basis for generators that sample noise
	Noise noise.Basis
	// Store persists the run in the run repository
	Store bool
	TTL   time.Duration
}

// GenerateOutput defines the response for running one generator
type GenerateOutput struct {
	Run *runs.Run
}

// GenerateBatchInput defines the request for running a generator once per seed
type GenerateBatchInput struct {
	Generator string
	Seeds     []int64
	Noise     noise.Basis
	Store     bool
	TTL       time.Duration
}

// GenerateBatchOutput holds one run per seed, in seed order
type GenerateBatchOutput struct {
	Runs []*runs.Run
}

// GetRunInput defines the request for loading a stored run
type GetRunInput struct {
	RunID string
}

// GetRunOutput defines the response for loading a stored run
type GetRunOutput struct {
	Run *runs.Run
}

// DeleteRunInput defines the request for deleting a stored run
type DeleteRunInput struct {
	RunID string
}

// DeleteRunOutput defines the response for deleting a stored run
type DeleteRunOutput struct {
	FramesDeleted int
}

// ListRunsInput defines the request for listing stored runs of a generator
type ListRunsInput struct {
	Generator string
}

// ListRunsOutput defines the response for listing stored runs
type ListRunsOutput struct {
	RunIDs []string
}

// ListGeneratorsInput defines the request for listing generators
type ListGeneratorsInput struct{}

// ListGeneratorsOutput defines the response for listing generators
type ListGeneratorsOutput struct {
	Generators []generators.Descriptor
}
