package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisLocker(rdb), mr
}

func TestRedisLocker_RejectsSecondHolder(t *testing.T) {
	l, mr := newRedisLocker(t)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "checkout:lock:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists("checkout:lock:1"))

	_, err = l.Acquire(ctx, "checkout:lock:1", time.Minute)
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	other, err := l.Acquire(ctx, "checkout:lock:2", time.Minute)
	require.NoError(t, err)
	other()

	release()
	assert.False(t, mr.Exists("checkout:lock:1"))

	again, err := l.Acquire(ctx, "checkout:lock:1", time.Minute)
	require.NoError(t, err)
	again()
}

func TestRedisLocker_StaleReleaseKeepsNewHolder(t *testing.T) {
	l, mr := newRedisLocker(t)
	ctx := context.Background()

	stale, err := l.Acquire(ctx, "checkout:lock:1", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists("checkout:lock:1"))

	current, err := l.Acquire(ctx, "checkout:lock:1", time.Minute)
	require.NoError(t, err)

	stale()
	assert.True(t, mr.Exists("checkout:lock:1"), "expired holder released the new lock")

	_, err = l.Acquire(ctx, "checkout:lock:1", time.Minute)
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	current()
	assert.False(t, mr.Exists("checkout:lock:1"))
}

func TestRedisLocker_SetsTTL(t *testing.T) {
	l, mr := newRedisLocker(t)

	release, err := l.Acquire(context.Background(), "checkout:lock:1", 30*time.Second)
	require.NoError(t, err)
	defer release()

	assert.Equal(t, 30*time.Second, mr.TTL("checkout:lock:1"))
}

func TestRedisLocker_ServerDown(t *testing.T) {
	l, mr := newRedisLocker(t)
	mr.Close()

	_, err := l.Acquire(context.Background(), "checkout:lock:1", time.Minute)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCheckoutInProgress)
}
