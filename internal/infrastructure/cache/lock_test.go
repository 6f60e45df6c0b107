package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLocker(t *testing.T) {
	release, err := NoopLocker{}.Acquire(context.Background(), "rating:r1:a@b.com")
	require.NoError(t, err)
	require.NotNil(t, release)
	release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	release, err = NoopLocker{}.Acquire(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	release()
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "lock:rating:r1:a@b.com", LockKey("rating:r1:a@b.com"))
}

func TestRedisLocker_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	locker := NewRedisLocker(client, time.Second, 0)
	release, err := locker.Acquire(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLockBusy)
	release()
}

// =====================================================
// REDIS LOCKER
// =====================================================

func newTestLocker(t *testing.T, ttl, wait time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, ttl, wait), mr
}

func TestRedisLocker_AcquireSetsKeyWithTTL(t *testing.T) {
	locker, mr := newTestLocker(t, 5*time.Second, 0)

	release, err := locker.Acquire(context.Background(), "rating:r1:a@b.com")
	require.NoError(t, err)

	key := LockKey("rating:r1:a@b.com")
	require.True(t, mr.Exists(key))
	token, err := mr.Get(key)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 5*time.Second, mr.TTL(key))

	release()
	assert.False(t, mr.Exists(key))
}

func TestRedisLocker_BusyAfterWait(t *testing.T) {
	locker, _ := newTestLocker(t, 5*time.Second, 80*time.Millisecond)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "k")
	require.NoError(t, err)
	defer release()

	start := time.Now()
	second, err := locker.Acquire(ctx, "k")
	assert.ErrorIs(t, err, ErrLockBusy)
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	second()

	// other keys are independent
	other, err := locker.Acquire(ctx, "other")
	require.NoError(t, err)
	other()
}

func TestRedisLocker_WaitsForRelease(t *testing.T) {
	locker, _ := newTestLocker(t, 5*time.Second, 2*time.Second)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "k")
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		release()
	}()

	second, err := locker.Acquire(ctx, "k")
	require.NoError(t, err)
	second()
}

func TestRedisLocker_ContextCancelledWhileWaiting(t *testing.T) {
	locker, _ := newTestLocker(t, 5*time.Second, 2*time.Second)

	release, err := locker.Acquire(context.Background(), "k")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	second, err := locker.Acquire(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	second()
}

func TestRedisLocker_ReleaseKeepsOtherHoldersKey(t *testing.T) {
	locker, mr := newTestLocker(t, time.Second, 0)
	ctx := context.Background()
	key := LockKey("k")

	releaseA, err := locker.Acquire(ctx, "k")
	require.NoError(t, err)

	// A's lease runs out and B takes the key.
	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists(key))

	releaseB, err := locker.Acquire(ctx, "k")
	require.NoError(t, err)
	tokenB, err := mr.Get(key)
	require.NoError(t, err)

	releaseA()
	require.True(t, mr.Exists(key))
	current, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, tokenB, current)

	releaseB()
	assert.False(t, mr.Exists(key))
}
