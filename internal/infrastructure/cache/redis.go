package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"recipe-site-backend/pkg/logger"
)

// Redis only carries short lock commands, so its timeouts stay well under
// the lock wait budget.
const (
	redisDialTimeout = 2 * time.Second
	redisOpTimeout   = 500 * time.Millisecond
	redisPingTimeout = 2 * time.Second
)

// RedisClient owns the connection used by the rating upsert lock.
type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(addr, password string, db int) *RedisClient {
	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			DialTimeout:  redisDialTimeout,
			ReadTimeout:  redisOpTimeout,
			WriteTimeout: redisOpTimeout,
		}),
	}
}

// Connect pings the server once. Callers treat a failure as "run without
// the lock".
func (r *RedisClient) Connect(ctx context.Context) error {
	if err := r.ping(ctx); err != nil {
		return err
	}
	logger.Info("Redis connected", map[string]interface{}{"addr": r.Client.Options().Addr})
	return nil
}

func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.ping(ctx)
}

// Locker returns a RedisLocker on this connection.
func (r *RedisClient) Locker(ttl, wait time.Duration) *RedisLocker {
	return NewRedisLocker(r.Client, ttl, wait)
}

func (r *RedisClient) Close() error {
	if r.Client == nil {
		return nil
	}
	return r.Client.Close()
}

func (r *RedisClient) ping(ctx context.Context) error {
	if r.Client == nil {
		return errors.New("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
