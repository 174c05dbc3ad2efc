package services

import (
	"context"
	"time"
)

const helloCacheKey = "app_key_cache"

// HelloService serves the demo greeting through the cache.
type HelloService struct {
	cache Cache
	ttl   time.Duration
}

func NewHelloService(cache Cache, ttl time.Duration) *HelloService {
	return &HelloService{cache: cache, ttl: ttl}
}

// GetHello returns the demo name list.
func (s *HelloService) GetHello(ctx context.Context) ([]string, error) {
	return getOrCompute(ctx, s.cache, helloCacheKey, s.ttl, func(context.Context) ([]string, error) {
		return []string{"Alice", "Bob", "Charlie"}, nil
	})
}
