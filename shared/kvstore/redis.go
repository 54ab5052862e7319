package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"tatkal/infras/otel"
	"tatkal/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisStore struct {
	client *goRedis.Client
	otel   otel.Otel
}

// NewRedis adapts a Redis client into the Store contract. Keys are persisted
// without TTL: this is the system of record, not a cache.
func NewRedis(client *goRedis.Client, ot otel.Otel) Store {
	return &redisStore{
		client: client,
		otel:   ot,
	}
}

func (s *redisStore) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttribute, key)

	raw, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goRedis.Nil) {
		return ErrNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get value from redis")

		return fmt.Errorf("failed to get value: %w", err)
	}

	if err = json.Unmarshal([]byte(raw), value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal stored value")

		return fmt.Errorf("failed to unmarshal stored value: %w", err)
	}

	return nil
}

func (s *redisStore) Put(ctx context.Context, key string, value any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttribute, key)

	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value")

		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err = s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set value in redis")

		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

func (s *redisStore) Remove(ctx context.Context, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttribute, key)

	if err = s.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to del value in redis")

		return fmt.Errorf("failed to remove value: %w", err)
	}

	return nil
}
