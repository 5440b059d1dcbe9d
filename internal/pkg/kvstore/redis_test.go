package kvstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gotp/internal/pkg/goerror"
)

func newRedisStore(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	store := NewRedis(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	t.Cleanup(func() { store.Close() })

	return store, srv
}

func TestRedisSetGet(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	if err := store.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "v" {
		t.Fatalf("Get() = %q, want %q", got, "v")
	}
}

func TestRedisGetMissing(t *testing.T) {
	store, _ := newRedisStore(t)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestRedisTTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, srv := newRedisStore(t)

	if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	srv.FastForward(61 * time.Second)

	if _, err := store.Get(ctx, "k"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("Get() after expiry error = %v, want ErrNotFound", err)
	}
}

func TestRedisDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	if err := store.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() on missing key error = %v", err)
	}
}

func TestRedisIncrSetsTTLOnce(t *testing.T) {
	ctx := context.Background()
	store, srv := newRedisStore(t)

	n, err := store.Incr(ctx, "counter", time.Minute)
	if err != nil {
		t.Fatalf("Incr() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("Incr() = %d, want 1", n)
	}

	if n, _ = store.Incr(ctx, "counter", time.Minute); n != 2 {
		t.Fatalf("Incr() = %d, want 2", n)
	}

	if ttl := srv.TTL("counter"); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("TTL = %v, want within (0, 1m]", ttl)
	}
}

func TestFactoryUnknownDriver(t *testing.T) {
	_, err := NewFromDriver(context.Background(), "cassandra", FactoryOptions{})
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("NewFromDriver() error = %v, want ErrUnknownDriver", err)
	}
}

func TestFactoryMemoryDefault(t *testing.T) {
	store, err := NewFromDriver(context.Background(), "", FactoryOptions{})
	if err != nil {
		t.Fatalf("NewFromDriver() error = %v", err)
	}
	defer store.Close()

	if _, ok := store.(*Memory); !ok {
		t.Fatalf("NewFromDriver() = %T, want *Memory", store)
	}
}

func TestFactoryRedis(t *testing.T) {
	srv := miniredis.RunT(t)

	store, err := NewFromDriver(context.Background(), DriverRedis, FactoryOptions{
		Redis: RedisOptions{URL: "redis://" + srv.Addr()},
	})
	if err != nil {
		t.Fatalf("NewFromDriver() error = %v", err)
	}
	defer store.Close()

	if _, ok := store.(*Redis); !ok {
		t.Fatalf("NewFromDriver() = %T, want *Redis", store)
	}
}
