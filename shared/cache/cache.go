package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"homestay/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	otelCacheHitAttribute = "cache.hit"

	clearBatchSize = 100
)

// ErrMiss is returned by Get when nothing is stored under the key. A miss is the normal path for
// a cold read model and is not traced as a failure.
var ErrMiss = errors.New("cache miss")

// RedisCache keeps JSON snapshots of homestay, room, lead and booking read models. Durations are
// in seconds and a duration of zero or less means the value is not cached at all.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
	Increment(ctx context.Context, key string, window int) (int64, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear unlinks every key matching pattern, such as "booking:gets*" after a booking changes.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	batch := make([]string, 0, clearBatchSize)
	removed := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		if err := cache.client.Unlink(ctx, batch...).Err(); err != nil {
			log.Error().Err(err).Str("pattern", pattern).Str("RedisCache", "Clear").Msg("failed to unlink cache keys")

			return fmt.Errorf("failed to delete cache values: %w", err)
		}

		removed += len(batch)
		batch = batch[:0]

		return nil
	}

	iter := cache.client.Scan(ctx, 0, pattern, clearBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())

		if len(batch) == clearBatchSize {
			if err = flush(); err != nil {
				return err
			}
		}
	}

	if err = iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if err = flush(); err != nil {
		return err
	}

	scope.SetAttribute("cache.removed", removed)

	return nil
}

func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = cache.client.Unlink(ctx, key).Err(); err != nil {
		log.Error().Str("key", key).Err(err).Str("RedisCache", "Delete").Msg("failed to del cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get decodes the JSON stored under key into value. It returns ErrMiss when the key is absent.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cached, err := cache.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		scope.SetAttribute(otelCacheHitAttribute, false)

		return fmt.Errorf("%w: %s", ErrMiss, key)
	}

	defer func() { scope.TraceIfError(err) }()

	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if err = json.Unmarshal(cached, value); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Get").Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	scope.SetAttribute(otelCacheHitAttribute, true)

	return nil
}

func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	if duration <= 0 {
		return nil
	}

	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	encoded, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to marshal cache")

		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err = cache.client.Set(ctx, key, encoded, time.Duration(duration)*time.Second).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("RedisCache", "Save").Str("key", key).Msg("cached")

	return nil
}

// Increment bumps the counter under key and returns the new value. The first increment of a
// window starts its expiry, so the counter resets window seconds after the first hit.
func (cache *redisCache) Increment(ctx context.Context, key string, window int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var incr *redis.IntCmd

	_, err = cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, time.Duration(window)*time.Second)
		incr = pipe.Incr(ctx, key)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	return incr.Val(), nil
}
