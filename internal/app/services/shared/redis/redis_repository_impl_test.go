package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, &redisRepository{client: client}
}

func TestRedisRepository_SetGetDelete(t *testing.T) {
	_, repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", map[string]string{"a": "b"}, time.Minute))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"b"}`, got)

	require.NoError(t, repo.Delete(ctx, "k"))
	got, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisRepository_TrySetNX(t *testing.T) {
	_, repo := setupRepository(t)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "lock", "one", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "lock", "two", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestRedisRepository_Fields(t *testing.T) {
	server, repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetField(ctx, "h", "user", map[string]string{"id": "u1"}, time.Hour))
	require.NoError(t, repo.SetField(ctx, "h", "bookingForm", map[string]string{"planSlug": "weight-loss"}, time.Hour))
	assert.Equal(t, time.Hour, server.TTL("h"))

	got, err := repo.GetField(ctx, "h", "user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1"}`, got)

	missing, err := repo.GetField(ctx, "h", "nope")
	require.NoError(t, err)
	assert.Empty(t, missing)

	require.NoError(t, repo.DeleteFields(ctx, "h", "user", "bookingForm"))
	got, err = repo.GetField(ctx, "h", "user")
	require.NoError(t, err)
	assert.Empty(t, got)
}
