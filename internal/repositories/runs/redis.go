package runs

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-mapgen/internal/redis"
)

const (
	// Key pattern: mapgen_run:{id}
	runKeyPrefix = "mapgen_run:"
	// Index pattern: mapgen_run:generator:{name} -> set of run IDs
	generatorIndexPrefix = "mapgen_run:generator:"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed run repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateRun(input.Run); err != nil {
		return nil, err
	}

	key := runKeyPrefix + input.Run.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("run with ID %s already exists", input.Run.ID)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	run := *input.Run
	run.CreatedAt = r.clock.Now()
	run.ExpiresAt = run.CreatedAt.Add(ttl)

	data, err := json.Marshal(&run)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal run")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, ttl)
	pipe.SAdd(ctx, generatorIndexPrefix+run.Generator, run.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store run")
	}

	slog.DebugContext(ctx, "stored run",
		"run_id", run.ID,
		"generator", run.Generator,
		"frames", len(run.Frames),
		"bytes", len(data))

	return &SaveOutput{Run: &run}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	key := runKeyPrefix + input.RunID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("run with ID %s not found", input.RunID)
		}
		return nil, errors.Wrapf(err, "failed to get run")
	}

	var run Run
	if err := json.Unmarshal([]byte(result), &run); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal run")
	}

	if r.clock.Now().After(run.ExpiresAt) {
		r.client.Del(ctx, key)
		r.client.SRem(ctx, generatorIndexPrefix+run.Generator, run.ID)
		return nil, errors.NotFoundf("run with ID %s has expired", input.RunID)
	}

	return &GetOutput{Run: &run}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	got, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, runKeyPrefix+input.RunID)
	pipe.SRem(ctx, generatorIndexPrefix+got.Run.Generator, input.RunID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete run")
	}

	return &DeleteOutput{FramesDeleted: len(got.Run.Frames)}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Generator == "" {
		return nil, errors.InvalidArgument("generator cannot be empty")
	}

	indexKey := generatorIndexPrefix + input.Generator
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get runs from index %s", indexKey)
	}

	live := make([]string, 0, len(ids))
	for _, id := range ids {
		exists, err := r.client.Exists(ctx, runKeyPrefix+id).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check run %s", id)
		}
		if exists == 0 {
			slog.WarnContext(ctx, "run expired, cleaning up index",
				"run_id", id,
				"index_key", indexKey)
			r.client.SRem(ctx, indexKey, id)
			continue
		}
		live = append(live, id)
	}
	sort.Strings(live)

	return &ListOutput{RunIDs: live}, nil
}
