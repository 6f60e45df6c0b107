package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"recipe-site-backend/pkg/logger"
)

// ErrLockBusy is returned when the lock is still held after the wait budget.
var ErrLockBusy = errors.New("lock is held by another request")

const (
	lockKeyPrefix     = "lock:"
	lockRetryInterval = 25 * time.Millisecond
	releaseTimeout    = 2 * time.Second
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Locker serialises work on a key across processes.
type Locker interface {
	// Acquire blocks until the lock on key is held, the wait budget is
	// spent (ErrLockBusy) or ctx is done. release is always safe to call.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// =====================================================
// REDIS LOCKER
// =====================================================

// RedisLocker is a single-instance SET NX PX lock with token checked release.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

// NewRedisLocker creates a locker whose keys expire after ttl. Acquire waits
// at most wait for a busy key.
func NewRedisLocker(client *redis.Client, ttl, wait time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	if wait < 0 {
		wait = 0
	}
	return &RedisLocker{client: client, ttl: ttl, wait: wait}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := LockKey(key)
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return noop, fmt.Errorf("failed to acquire lock %s: %w", lockKey, err)
		}
		if ok {
			return l.releaseFunc(lockKey, token), nil
		}

		if !time.Now().Before(deadline) {
			return noop, ErrLockBusy
		}

		select {
		case <-time.After(lockRetryInterval):
		case <-ctx.Done():
			return noop, ctx.Err()
		}
	}
}

// releaseFunc uses its own context so a cancelled request still frees the key.
func (l *RedisLocker) releaseFunc(lockKey, token string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		if err := releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err(); err != nil {
			logger.Warn("Failed to release lock", map[string]interface{}{
				"key":   lockKey,
				"error": err.Error(),
			})
		}
	}
}

// LockKey namespaces a caller key.
func LockKey(key string) string {
	return lockKeyPrefix + key
}

// =====================================================
// NOOP LOCKER
// =====================================================

// NoopLocker never blocks. Used when Redis is not configured.
type NoopLocker struct{}

func (NoopLocker) Acquire(ctx context.Context, key string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return noop, err
	}
	return noop, nil
}

func noop() {}
