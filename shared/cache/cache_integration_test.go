//go:build integration

package cache_test

import (
	"context"
	otelMocks "livecity/infras/otel/mocks"
	"livecity/shared/cache"
	"testing"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	redisContainer "github.com/testcontainers/testcontainers-go/modules/redis"
)

func startRedis(t *testing.T) *goRedis.Client {
	t.Helper()

	ctx := context.Background()

	container, err := redisContainer.RunContainer(ctx, testcontainers.WithImage("docker.io/redis:7-alpine"))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, container.Terminate(context.Background()))
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := goRedis.ParseURL(uri)
	require.NoError(t, err)

	client := goRedis.NewClient(opts)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestRedisCache_Lock(t *testing.T) {
	client := startRedis(t)
	c := cache.NewRedisCache(client, otelMocks.NewOtel())

	ctx := context.Background()

	acquired, err := c.Lock(ctx, "livecity:reminder:lock", "run-a", 60)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = c.Lock(ctx, "livecity:reminder:lock", "run-b", 60)
	require.NoError(t, err)
	assert.False(t, acquired)

	// a foreign token must not release the lock
	require.NoError(t, c.Unlock(ctx, "livecity:reminder:lock", "run-b"))

	acquired, err = c.Lock(ctx, "livecity:reminder:lock", "run-b", 60)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, c.Unlock(ctx, "livecity:reminder:lock", "run-a"))

	acquired, err = c.Lock(ctx, "livecity:reminder:lock", "run-b", 60)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRedisCache_Extend(t *testing.T) {
	client := startRedis(t)
	c := cache.NewRedisCache(client, otelMocks.NewOtel())

	ctx := context.Background()

	acquired, err := c.Lock(ctx, "livecity:reminder:lock", "run-a", 5)
	require.NoError(t, err)
	require.True(t, acquired)

	extended, err := c.Extend(ctx, "livecity:reminder:lock", "run-b", 600)
	require.NoError(t, err)
	assert.False(t, extended)

	extended, err = c.Extend(ctx, "livecity:reminder:lock", "run-a", 600)
	require.NoError(t, err)
	assert.True(t, extended)

	ttl, err := client.TTL(ctx, "livecity:reminder:lock").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 5*time.Second)

	require.NoError(t, c.Unlock(ctx, "livecity:reminder:lock", "run-a"))

	extended, err = c.Extend(ctx, "livecity:reminder:lock", "run-a", 600)
	require.NoError(t, err)
	assert.False(t, extended)
}

func TestRedisCache_SaveGet(t *testing.T) {
	client := startRedis(t)
	c := cache.NewRedisCache(client, otelMocks.NewOtel())

	ctx := context.Background()

	type entry struct {
		Total int `json:"total"`
	}

	require.NoError(t, c.Save(ctx, "bookings:count", entry{Total: 3}, 60))

	var got entry
	require.NoError(t, c.Get(ctx, "bookings:count", &got))
	assert.Equal(t, 3, got.Total)

	require.NoError(t, c.Clear(ctx, "bookings:"))

	err := c.Get(ctx, "bookings:count", &got)
	require.ErrorIs(t, err, cache.Nil)
}
