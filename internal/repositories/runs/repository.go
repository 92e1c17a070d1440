// Package runs stores finished frame sequences keyed by run ID so they can
// be replayed or streamed later. Generators never read from it.
package runs

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=runsmock github.com/KirkDiggler/rpg-mapgen/internal/repositories/runs Repository

// DefaultTTL is how long a run is kept when no TTL is given
const DefaultTTL = 24 * time.Hour

// Run is one stored generator run
type Run struct {
	// ID is unique per run (e.g., "run_0b6f...")
	ID string `json:"id"`

	// Generator is the registry name that produced the frames
	Generator string `json:"generator"`

	// Seed the random source was created with
	Seed int64 `json:"seed"`

	// Frames in recording order; the last frame is the final grid
	Frames frames.Sequence `json:"frames"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SaveInput contains parameters for storing a run
type SaveInput struct {
	Run *Run
	TTL time.Duration
}

// SaveOutput contains the stored run with its timestamps filled in
type SaveOutput struct {
	Run *Run
}

// GetInput contains parameters for retrieving a run
type GetInput struct {
	RunID string
}

// GetOutput contains the retrieved run
type GetOutput struct {
	Run *Run
}

// DeleteInput contains parameters for deleting a run
type DeleteInput struct {
	RunID string
}

// DeleteOutput reports how many frames were dropped with the run
type DeleteOutput struct {
	FramesDeleted int
}

// ListInput filters runs by generator name
type ListInput struct {
	Generator string
}

// ListOutput contains the matching run IDs, sorted
type ListOutput struct {
	RunIDs []string
}

// Repository defines the interface for run storage operations
type Repository interface {
	// Save stores a new run; saving an existing ID fails
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a run that has not expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a run
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the IDs of live runs produced by a generator
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// Error messages
const (
	errRunNil     = "run cannot be nil"
	errRunIDEmpty = "run ID cannot be empty"
)

func validateRun(run *Run) error {
	if run == nil {
		return errors.InvalidArgument(errRunNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", run.ID, vb)
	errors.ValidateRequired("generator", run.Generator, vb)
	return vb.Build()
}
