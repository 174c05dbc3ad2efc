package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-articles/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCache is an in-process Cache with the same JSON round trip as Redis.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.sets++
	return nil
}

func TestHelloService_GetHello(t *testing.T) {
	cache := newMemCache()
	svc := services.NewHelloService(cache, time.Minute)

	for i := 0; i < 3; i++ {
		names, err := svc.GetHello(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
	}

	assert.Equal(t, 1, cache.sets)
	assert.Contains(t, cache.data, "app_key_cache")
}

func TestHelloService_ServesCachedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := services.NewMockCache(ctrl)
	mockCache.EXPECT().
		Get(gomock.Any(), "app_key_cache", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			*dest.(*[]string) = []string{"cached"}
			return true, nil
		})

	svc := services.NewHelloService(mockCache, time.Minute)
	names, err := svc.GetHello(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cached"}, names)
}

func TestHelloService_CacheFailuresFallThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := services.NewMockCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), "app_key_cache", gomock.Any()).Return(false, errors.New("redis down"))
	mockCache.EXPECT().Set(gomock.Any(), "app_key_cache", []string{"Alice", "Bob", "Charlie"}, 30*time.Second).
		Return(errors.New("redis down"))

	svc := services.NewHelloService(mockCache, 30*time.Second)
	names, err := svc.GetHello(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
}
