package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	generators "github.com/KirkDiggler/rpg-mapgen/internal/mapgen"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/all"
	"github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/mapgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-mapgen/internal/redis"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/runs"
	"github.com/KirkDiggler/rpg-mapgen/internal/rng"
)

const pingTimeout = 5 * time.Second

// storeMode picks the run store when no redis address is given
type storeMode int

const (
	storeNone storeMode = iota
	storeInMemory
)

// newService wires the orchestrator. With --redis set, runs go to redis;
// otherwise the fallback decides between no store and a process-local one.
func newService(ctx context.Context, fallback storeMode) (mapgen.Service, func(), error) {
	c := clock.New()
	cleanup := func() {}

	var repo runs.Repository
	switch {
	case redisAddr != "":
		client, err := redisclient.NewClient(redisAddr, nil)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := redisclient.Ping(ctx, client, pingTimeout); err != nil {
			_ = client.Close()
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unavailable")
		}
		repo, err = runs.NewRedis(&runs.RedisConfig{Client: client, Clock: c})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		cleanup = func() { _ = client.Close() }
		slog.Debug("Using redis run store", "addr", redisAddr)
	case fallback == storeInMemory:
		repo = runs.NewInMemory(c)
		slog.Debug("Using in-memory run store")
	}

	svc, err := mapgen.NewOrchestrator(&mapgen.Config{
		Registry:    generators.Default(),
		RunRepo:     repo,
		IDGenerator: idgen.NewUUID("run"),
		Clock:       c,
		SeedRoller:  rng.New(time.Now().UnixNano()),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
