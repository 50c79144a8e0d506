package cache_test

import (
	"context"
	"testing"
	"time"

	"event-partners-api/internal/cache"
	"event-partners-api/internal/testutil"
	apperrors "event-partners-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisIdempotencyStore(t *testing.T) {
	rdb := testutil.NewTestRedis(t)
	ctx := context.Background()
	store := cache.NewRedisIdempotencyStore(rdb, "partner-test", time.Minute, 30*time.Second)

	t.Run("Acquire then in progress", func(t *testing.T) {
		cached, err := store.Acquire(ctx, "key-1")
		require.NoError(t, err)
		assert.Nil(t, cached)

		_, err = store.Acquire(ctx, "key-1")
		assert.ErrorIs(t, err, apperrors.ErrRequestInProgress)
	})

	t.Run("Complete then replay", func(t *testing.T) {
		_, err := store.Acquire(ctx, "key-2")
		require.NoError(t, err)
		require.NoError(t, store.Complete(ctx, "key-2", []byte(`[{"spot_name":"A1"}]`)))

		cached, err := store.Acquire(ctx, "key-2")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"spot_name":"A1"}]`, string(cached))
	})

	t.Run("Release allows retry", func(t *testing.T) {
		_, err := store.Acquire(ctx, "key-3")
		require.NoError(t, err)
		require.NoError(t, store.Release(ctx, "key-3"))

		cached, err := store.Acquire(ctx, "key-3")
		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("Release keeps completed result", func(t *testing.T) {
		_, err := store.Acquire(ctx, "key-4")
		require.NoError(t, err)
		require.NoError(t, store.Complete(ctx, "key-4", []byte("done")))
		require.NoError(t, store.Release(ctx, "key-4"))

		cached, err := store.Acquire(ctx, "key-4")
		require.NoError(t, err)
		assert.Equal(t, []byte("done"), cached)
	})

	t.Run("Namespaces are isolated", func(t *testing.T) {
		other := cache.NewRedisIdempotencyStore(rdb, "partner-other", time.Minute, 30*time.Second)

		_, err := store.Acquire(ctx, "shared")
		require.NoError(t, err)

		cached, err := other.Acquire(ctx, "shared")
		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("Pending key expires before the result TTL", func(t *testing.T) {
		short := cache.NewRedisIdempotencyStore(rdb, "partner-test", time.Minute, 100*time.Millisecond)

		// 取得後不 Complete 也不 Release，模擬 process 中途掛掉
		_, err := short.Acquire(ctx, "key-ttl")
		require.NoError(t, err)
		_, err = short.Acquire(ctx, "key-ttl")
		require.ErrorIs(t, err, apperrors.ErrRequestInProgress)

		time.Sleep(200 * time.Millisecond)

		cached, err := short.Acquire(ctx, "key-ttl")
		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("Completed result outlives the pending TTL", func(t *testing.T) {
		short := cache.NewRedisIdempotencyStore(rdb, "partner-test", time.Minute, 100*time.Millisecond)

		_, err := short.Acquire(ctx, "key-done")
		require.NoError(t, err)
		require.NoError(t, short.Complete(ctx, "key-done", []byte("done")))

		time.Sleep(200 * time.Millisecond)

		cached, err := short.Acquire(ctx, "key-done")
		require.NoError(t, err)
		assert.Equal(t, []byte("done"), cached)
	})
}
