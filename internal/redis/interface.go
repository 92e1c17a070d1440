package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the run store needs, kept as the full
// UniversalClient so miniredis-backed clients satisfy it in tests.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by the client when a key does not exist
const Nil = redis.Nil
