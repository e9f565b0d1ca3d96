package data

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCacheRepo, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCacheRepo(client), srv
}

func TestRedisCacheRepo_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "bidstats:1", []byte(`{"count":2}`), time.Minute))

	got, err := cache.Get(ctx, "bidstats:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"count":2}`), got)
}

func TestRedisCacheRepo_GetMissingKeyReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), "bidstats:999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheRepo_TTLExpiry(t *testing.T) {
	cache, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "bidstats:5", []byte("x"), time.Second))

	srv.FastForward(2 * time.Second)

	got, err := cache.Get(ctx, "bidstats:5")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheRepo_Delete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "bidstats:7", []byte("x"), time.Minute))

	existed, err := cache.Delete(ctx, "bidstats:7")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = cache.Delete(ctx, "bidstats:7")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestRedisCacheRepo_EmptyKeyRejected(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	assert.Error(t, cache.Set(ctx, "", []byte("x"), time.Minute))

	_, err := cache.Get(ctx, "")
	assert.Error(t, err)

	_, err = cache.Delete(ctx, "")
	assert.Error(t, err)
}
