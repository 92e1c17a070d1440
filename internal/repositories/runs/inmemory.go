package runs

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Run
}

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Run),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a run
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateRun(input.Run); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.store[input.Run.ID]; ok && !r.expired(existing) {
		return nil, errors.AlreadyExistsf("run with ID %s already exists", input.Run.ID)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	run := *input.Run
	run.CreatedAt = r.clock.Now()
	run.ExpiresAt = run.CreatedAt.Add(ttl)
	r.store[run.ID] = &run

	out := run
	return &SaveOutput{Run: &out}, nil
}

// Get retrieves a run by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.store[input.RunID]
	if !ok {
		return nil, errors.NotFoundf("run with ID %s not found", input.RunID)
	}
	if r.expired(run) {
		delete(r.store, input.RunID)
		return nil, errors.NotFoundf("run with ID %s has expired", input.RunID)
	}

	// Return a copy to prevent external modification
	out := *run
	return &GetOutput{Run: &out}, nil
}

// Delete removes a run
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	got, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, input.RunID)

	return &DeleteOutput{FramesDeleted: len(got.Run.Frames)}, nil
}

// List returns live run IDs for a generator
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.Generator == "" {
		return nil, errors.InvalidArgument("generator cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0)
	for id, run := range r.store {
		if run.Generator == input.Generator && !r.expired(run) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return &ListOutput{RunIDs: ids}, nil
}

func (r *InMemoryRepository) expired(run *Run) bool {
	return r.clock.Now().After(run.ExpiresAt)
}
