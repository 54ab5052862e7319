package kvstore

import (
	"context"
	"errors"
	"tatkal/config"
	"tatkal/infras/otel"
	"tatkal/infras/redis"
	"tatkal/shared/constant"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("key not found")

// Store is the single persistence substrate of the whole system: a flat
// namespace of string keys holding JSON-serializable values. There are no
// transactions and no atomic multi-key writes; a Put replaces the whole value
// under one key and that per-key replacement is the only atomicity anyone
// gets. Higher layers must treat get-modify-put sequences as racy.
type Store interface {
	Get(ctx context.Context, key string, value any) error
	Put(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}

// New picks the configured backend. Memory is the default and the test
// substrate; Redis makes the store survive restarts.
func New(cfg *config.Config, ot otel.Otel) Store {
	if cfg.Store.Backend == constant.StoreBackendRedis {
		return NewRedis(redis.New(cfg), ot)
	}

	return NewMemory(ot)
}
