package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-articles/internal/logger"
)

// CacheRepository stores JSON encoded values in Redis
type CacheRepository struct {
	client *redis.Client
}

func NewCacheRepository(client *redis.Client) *CacheRepository {
	return &CacheRepository{client: client}
}

// Get decodes the value stored under key into dest.
// It reports false without an error when the key is missing.
func (r *CacheRepository) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value under key for ttl.
func (r *CacheRepository) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, ttl).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}
