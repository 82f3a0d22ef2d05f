package kv

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Needs a live server: POSTVIEW_TEST_REDIS_ADDR=127.0.0.1:6379 go test ./...
func TestRedis_Roundtrip(t *testing.T) {
	addr := os.Getenv("POSTVIEW_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("POSTVIEW_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, RedisConfig{Addr: addr})
	require.NoError(t, err)
	r := NewRedisRepository(client)
	t.Cleanup(func() { _ = r.Close() })

	prefix := "postview-test-" + uuid.NewString() + ":"
	a, b := prefix+"a", prefix+"b"
	t.Cleanup(func() { _ = r.RemoveMany(context.Background(), a, b) })

	_, ok, err := r.Get(ctx, a)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Set(ctx, a, "1"))
	v, ok, err := r.Get(ctx, a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, r.SetMany(ctx, map[string]string{a: "x", b: "y"}))
	v, _, _ = r.Get(ctx, b)
	assert.Equal(t, "y", v)

	require.NoError(t, r.Remove(ctx, a))
	require.NoError(t, r.RemoveMany(ctx, b))
	_, ok, _ = r.Get(ctx, b)
	assert.False(t, ok)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRedisClient(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	require.ErrorContains(t, err, "failed to connect to Redis")
}
