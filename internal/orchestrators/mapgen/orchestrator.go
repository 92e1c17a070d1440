// Package mapgen implements the run orchestrator: it resolves generators by
// name, seeds them, and optionally stores the finished frame sequences.
package mapgen

//go:generate mockgen -destination=mock/mock_service.go -package=mapgenmock github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/mapgen Service

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	generators "github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/runs"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

const (
	// MaxBatchSize caps the number of seeds in one batch
	MaxBatchSize = 64
	// batchWorkers bounds concurrent builds within a batch
	batchWorkers = 8
)

// Service defines the interface for map generation runs
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchOutput, error)

	// Stored runs
	GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error)
	DeleteRun(ctx context.Context, input *DeleteRunInput) (*DeleteRunOutput, error)
	ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error)

	ListGenerators(ctx context.Context, input *ListGeneratorsInput) (*ListGeneratorsOutput, error)
}

// Config holds the dependencies for the orchestrator
type Config struct {
	Registry *generators.Registry
	// RunRepo is optional; without it runs cannot be stored or loaded
	RunRepo     runs.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	SeedRoller  dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SeedRoller == nil {
		vb.RequiredField("SeedRoller")
	}
	return vb.Build()
}

type orchestrator struct {
	registry *generators.Registry
	runRepo  runs.Repository
	idGen    idgen.Generator
	clock    clock.Clock

	// seedMu guards seedRoller, which is not safe for concurrent use
	seedMu     sync.Mutex
	seedRoller dice.Roller
}

// NewOrchestrator creates a new orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		registry:   cfg.Registry,
		runRepo:    cfg.RunRepo,
		idGen:      cfg.IDGenerator,
		clock:      c,
		seedRoller: cfg.SeedRoller,
	}, nil
}

// Generate builds one run
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Generator == "" {
		return nil, errors.InvalidArgument("generator is required")
	}
	if input.Store && o.runRepo == nil {
		return nil, errors.FailedPrecondition("run store is not configured")
	}

	if input.HasSeed {
		if err := checkSeed(input.Seed); err != nil {
			return nil, err
		}
	}

	seed := input.Seed
	if !input.HasSeed {
		rolled, err := o.rollSeed()
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll seed")
		}
		seed = int64(rolled)
	}

	run, err := o.build(input.Generator, seed, input.Noise)
	if err != nil {
		return nil, err
	}

	if input.Store {
		if run, err = o.store(ctx, run, input.TTL); err != nil {
			return nil, err
		}
	}

	slog.Info("Map generated",
		"generator", run.Generator,
		"seed", run.Seed,
		"noise", input.Noise,
		"run_id", run.ID,
		"frames", len(run.Frames),
		"stored", input.Store,
	)

	return &GenerateOutput{Run: run}, nil
}

// GenerateBatch builds one run per seed concurrently. Each build owns its
// random source; results come back in seed order.
func (o *orchestrator) GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("generator", input.Generator, vb)
	errors.ValidateRange("seeds", len(input.Seeds), 1, MaxBatchSize, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	for _, seed := range input.Seeds {
		if err := checkSeed(seed); err != nil {
			return nil, err
		}
	}
	if input.Store && o.runRepo == nil {
		return nil, errors.FailedPrecondition("run store is not configured")
	}
	if _, err := o.registry.Lookup(input.Generator); err != nil {
		return nil, err
	}

	built := make([]*runs.Run, len(input.Seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, seed := range input.Seeds {
		g.Go(func() error {
			if gctx.Err() != nil {
				return errors.Canceled("batch canceled").WithMeta("seed", seed)
			}
			run, err := o.build(input.Generator, seed, input.Noise)
			if err != nil {
				return errors.Wrapf(err, "batch failed at seed %d", seed)
			}
			built[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.IsCanceled(err) {
			slog.Info("Map batch canceled", "generator", input.Generator, "seeds", len(input.Seeds))
		}
		return nil, err
	}

	if input.Store {
		for i, run := range built {
			stored, err := o.store(ctx, run, input.TTL)
			if err != nil {
				return nil, err
			}
			built[i] = stored
		}
	}

	slog.Info("Map batch generated",
		"generator", input.Generator,
		"runs", len(built),
		"stored", input.Store,
	)

	return &GenerateBatchOutput{Runs: built}, nil
}

// GetRun loads a stored run
func (o *orchestrator) GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}
	if o.runRepo == nil {
		return nil, errors.FailedPrecondition("run store is not configured")
	}

	out, err := o.runRepo.Get(ctx, runs.GetInput{RunID: input.RunID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get run")
	}

	return &GetRunOutput{Run: out.Run}, nil
}

// DeleteRun removes a stored run
func (o *orchestrator) DeleteRun(ctx context.Context, input *DeleteRunInput) (*DeleteRunOutput, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}
	if o.runRepo == nil {
		return nil, errors.FailedPrecondition("run store is not configured")
	}

	out, err := o.runRepo.Delete(ctx, runs.DeleteInput{RunID: input.RunID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete run")
	}

	slog.Info("Run deleted",
		"run_id", input.RunID,
		"frames_deleted", out.FramesDeleted,
	)

	return &DeleteRunOutput{FramesDeleted: out.FramesDeleted}, nil
}

// ListRuns lists stored runs for a generator
func (o *orchestrator) ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error) {
	if input == nil || input.Generator == "" {
		return nil, errors.InvalidArgument("generator is required")
	}
	if o.runRepo == nil {
		return nil, errors.FailedPrecondition("run store is not configured")
	}

	out, err := o.runRepo.List(ctx, runs.ListInput{Generator: input.Generator})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}

	return &ListRunsOutput{RunIDs: out.RunIDs}, nil
}

// ListGenerators lists every registered generator
func (o *orchestrator) ListGenerators(_ context.Context, _ *ListGeneratorsInput) (*ListGeneratorsOutput, error) {
	return &ListGeneratorsOutput{Generators: o.registry.Descriptors()}, nil
}

// checkSeed rejects negative seeds; rolled seeds and stored runs stay in
// the non-negative range.
func checkSeed(seed int64) error {
	if seed < 0 {
		return errors.OutOfRangef("seed %d is negative", seed).WithMeta("seed", seed)
	}
	return nil
}

func (o *orchestrator) rollSeed() (int, error) {
	o.seedMu.Lock()
	defer o.seedMu.Unlock()
	return o.seedRoller.Roll(math.MaxInt32)
}

func (o *orchestrator) build(name string, seed int64, basis noise.Basis) (*runs.Run, error) {
	result, err := o.registry.Build(name, rng.New(seed), generators.WithNoise(basis))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s with seed %d", name, seed)
	}

	return &runs.Run{
		ID:        o.idGen.Generate(),
		Generator: name,
		Seed:      seed,
		Frames:    result.Frames,
		CreatedAt: o.clock.Now(),
	}, nil
}

func (o *orchestrator) store(ctx context.Context, run *runs.Run, ttl time.Duration) (*runs.Run, error) {
	out, err := o.runRepo.Save(ctx, runs.SaveInput{Run: run, TTL: ttl})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store run")
	}
	return out.Run, nil
}
