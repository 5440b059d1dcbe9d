package kvstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/gotp/internal/pkg/clock"
	"github.com/shandysiswandi/gotp/internal/pkg/goerror"
)

func TestMemorySetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(clock.New())
	defer store.Close()

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

func TestMemoryGetMissing(t *testing.T) {
	store := NewMemory(clock.New())
	defer store.Close()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewStatic(time.Unix(1_700_000_000, 0))
	store := NewMemory(clk)
	defer store.Close()

	if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, err := store.Get(ctx, "k"); err != nil {
		t.Fatalf("Get() before expiry error = %v", err)
	}

	clk.Advance(61 * time.Second)
	if _, err := store.Get(ctx, "k"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("Get() after expiry error = %v, want ErrNotFound", err)
	}
}

func TestMemorySetReplacesValueAndTTL(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewStatic(time.Unix(1_700_000_000, 0))
	store := NewMemory(clk)
	defer store.Close()

	if err := store.Set(ctx, "k", "first", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, "k", "second", 2*time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	clk.Advance(90 * time.Second)
	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "second" {
		t.Fatalf("Get() = %q, want %q", got, "second")
	}
}

func TestMemoryStaleTimerDoesNotEvictReplacement(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(clock.New())
	defer store.Close()

	// The replacement lands while the first entry's timer is firing; the
	// stale callback must leave the fresh entry alone.
	for i := 0; i < 50; i++ {
		if err := store.Set(ctx, "k", "old", time.Microsecond); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := store.Set(ctx, "k", "fresh", time.Hour); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		time.Sleep(2 * time.Millisecond)

		got, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("iteration %d: Get() error = %v", i, err)
		}
		if got != "fresh" {
			t.Fatalf("iteration %d: Get() = %q, want %q", i, got, "fresh")
		}
	}
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(clock.New())
	defer store.Close()

	if err := store.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting twice is not an error.
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() on missing key error = %v", err)
	}
}

func TestMemoryIncr(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(clock.New())
	defer store.Close()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Incr(ctx, "counter", time.Minute)
		if err != nil {
			t.Fatalf("Incr() error = %v", err)
		}
		if got != want {
			t.Fatalf("Incr() = %d, want %d", got, want)
		}
	}
}
