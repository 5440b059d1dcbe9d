package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gotp/internal/pkg/goerror"
)

// Redis is a Store backed by a Redis server; TTLs map to native key expiry.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an already-connected client. The caller owns connection
// setup and ping; the store owns nothing but command execution.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get returns the value for key.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("kvstore: %w: %s", goerror.ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("kvstore: redis get %s: %w", key, err)
	}

	return val, nil
}

// Set stores value under key with the given ttl (0 means no expiry).
func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("kvstore: redis set %s: %w", key, err)
	}

	return nil
}

// Delete removes the key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("kvstore: redis del %s: %w", key, err)
	}

	return nil
}

// Incr implements the optional Incrementer extension using INCR + EXPIRE.
func (r *Redis) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("kvstore: redis incr %s: %w", key, err)
	}

	if count == 1 && ttl > 0 {
		if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, fmt.Errorf("kvstore: redis expire %s: %w", key, err)
		}
	}

	return count, nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
