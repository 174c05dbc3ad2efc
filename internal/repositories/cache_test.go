package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	opts, err := redis.ParseURL(fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	defer rdb.Close()

	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewCacheRepository(rdb)

	type payload struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}

	t.Run("Set and Get", func(t *testing.T) {
		want := payload{Name: "greeting", Items: []string{"Alice", "Bob"}}
		require.NoError(t, repo.Set(ctx, "k1", want, time.Minute))

		var got payload
		hit, err := repo.Get(ctx, "k1", &got)
		assert.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, want, got)
	})

	t.Run("Missing key is a miss", func(t *testing.T) {
		var got payload
		hit, err := repo.Get(ctx, "absent", &got)
		assert.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("Undecodable value", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "garbage", "not-json", time.Minute).Err())

		var got payload
		hit, err := repo.Get(ctx, "garbage", &got)
		assert.Error(t, err)
		assert.False(t, hit)
	})

	t.Run("Value expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short", payload{Name: "x"}, 2*time.Second))

		time.Sleep(3 * time.Second)

		var got payload
		hit, err := repo.Get(ctx, "short", &got)
		assert.NoError(t, err)
		assert.False(t, hit)
	})
}

func TestCacheRepository_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer rdb.Close()

	repo := NewCacheRepository(rdb)

	var got string
	hit, err := repo.Get(context.Background(), "k", &got)
	assert.Error(t, err)
	assert.False(t, hit)

	assert.Error(t, repo.Set(context.Background(), "k", "v", time.Minute))
}
