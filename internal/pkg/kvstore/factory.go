package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/gotp/internal/pkg/clock"
)

const (
	// DriverMemory selects the in-process backend.
	DriverMemory = "memory"
	// DriverRedis selects the Redis backend.
	DriverRedis = "redis"
)

// ErrUnknownDriver indicates an unsupported store driver.
var ErrUnknownDriver = errors.New("kvstore: unknown driver")

// FactoryOptions groups configuration for store drivers.
type FactoryOptions struct {
	// Clock is used by the memory backend for lazy expiry checks.
	Clock clock.Clocker
	// Redis configures the Redis backend.
	Redis RedisOptions
}

// RedisOptions configures the Redis backend.
type RedisOptions struct {
	// URL is a redis:// connection URL.
	URL string
	// PingTimeout bounds each connectivity probe (default 5s).
	PingTimeout time.Duration
	// PingAttempts is how many times to probe before giving up (default 3).
	PingAttempts uint64
}

// NewFromDriver constructs a Store implementation by driver name.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverMemory, "":
		return NewMemory(opts.Clock), nil
	case DriverRedis:
		return newRedisFromOptions(ctx, opts.Redis)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}

func newRedisFromOptions(ctx context.Context, opts RedisOptions) (*Redis, error) {
	ropt, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("kvstore: parse redis url: %w", err)
	}

	client := redis.NewClient(ropt)

	pingTimeout := opts.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	attempts := opts.PingAttempts
	if attempts == 0 {
		attempts = 3
	}

	backoff := retry.WithMaxRetries(attempts-1, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := client.Ping(pingCtx).Err(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("kvstore: redis ping: %w", err)
	}

	return NewRedis(client), nil
}
