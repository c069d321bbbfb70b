package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sharebite/internal/observability"

	"github.com/redis/go-redis/v9"
)

// redisBlobs implements Blobs on a Redis connection. Unlike a cache, the
// blob store is the source of truth, so connection failures are fatal at
// open time rather than degraded.
type redisBlobs struct {
	client *redis.Client
}

// OpenRedis connects to Redis at addr and verifies the connection.
func OpenRedis(ctx context.Context, addr string) (Blobs, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis storage unreachable: %w", err)
	}

	observability.Logger().Info("Redis storage connected")
	return &redisBlobs{client: client}, nil
}

// NewRedisBlobs wraps an existing client; used by tests that bring their own
// Redis (miniredis).
func NewRedisBlobs(client *redis.Client) Blobs {
	return &redisBlobs{client: client}
}

// Get returns the blob stored under key, if any.
func (r *redisBlobs) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		observability.StorageErrors.WithLabelValues("get").Inc()
		return "", false, err
	}
	return v, true, nil
}

// Set stores value under key, replacing any previous blob. Blobs never
// expire; the store owns their lifecycle.
func (r *redisBlobs) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		observability.StorageErrors.WithLabelValues("set").Inc()
		return err
	}
	return nil
}
