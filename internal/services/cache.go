package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-articles/internal/logger"
)

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=services

// Cache stores JSON-serializable values under string keys.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// getOrCompute returns the cached value for key, or computes, stores and returns it.
// Cache failures are logged and never fail the call.
func getOrCompute[T any](ctx context.Context, cache Cache, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Log.Warnw("cache read failed", "key", key, "error", err)
	}
	if hit && err == nil {
		return cached, nil
	}

	value, err := compute(ctx)
	if err != nil {
		return value, err
	}

	if err := cache.Set(ctx, key, value, ttl); err != nil {
		logger.Log.Warnw("cache write failed", "key", key, "error", err)
	}
	return value, nil
}
