package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/gotp/internal/pkg/clock"
	"github.com/shandysiswandi/gotp/internal/pkg/kvstore"
)

func newLimiter(t *testing.T, clk clock.Clocker, window time.Duration, max int) (*Limiter, kvstore.Store) {
	t.Helper()

	store := kvstore.NewMemory(clk)
	t.Cleanup(func() { store.Close() })

	return New(store, clk, Config{Window: window, MaxRequests: max}), store
}

func TestLimiterSlidingWindow(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewStatic(time.Unix(1_700_000_000, 0))
	limiter, _ := newLimiter(t, clk, time.Minute, 2)

	dec, err := limiter.CheckLimit(ctx, "user@example.com", "generate_otp")
	if err != nil {
		t.Fatalf("CheckLimit() error = %v", err)
	}
	if !dec.Allowed || dec.Remaining != 1 {
		t.Fatalf("first request = %+v, want allowed with 1 remaining", dec)
	}

	clk.Advance(30 * time.Second)
	dec, err = limiter.CheckLimit(ctx, "user@example.com", "generate_otp")
	if err != nil {
		t.Fatalf("CheckLimit() error = %v", err)
	}
	if !dec.Allowed || dec.Remaining != 0 {
		t.Fatalf("second request = %+v, want allowed with 0 remaining", dec)
	}

	clk.Advance(15 * time.Second)
	dec, err = limiter.CheckLimit(ctx, "user@example.com", "generate_otp")
	if err != nil {
		t.Fatalf("CheckLimit() error = %v", err)
	}
	if dec.Allowed {
		t.Fatalf("third request inside window = %+v, want rejected", dec)
	}

	// 61s after the first request it has slid out of the window.
	clk.Advance(16 * time.Second)
	dec, err = limiter.CheckLimit(ctx, "user@example.com", "generate_otp")
	if err != nil {
		t.Fatalf("CheckLimit() error = %v", err)
	}
	if !dec.Allowed || dec.Remaining != 0 {
		t.Fatalf("request after expiry = %+v, want allowed with 0 remaining", dec)
	}
}

func TestLimiterIsolatesActionsAndIdentifiers(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewStatic(time.Unix(1_700_000_000, 0))
	limiter, _ := newLimiter(t, clk, time.Minute, 1)

	if dec, _ := limiter.CheckLimit(ctx, "a@example.com", "generate_otp"); !dec.Allowed {
		t.Fatal("first request for a@example.com should be allowed")
	}
	if dec, _ := limiter.CheckLimit(ctx, "a@example.com", "generate_otp"); dec.Allowed {
		t.Fatal("second request for same identifier and action should be rejected")
	}
	if dec, _ := limiter.CheckLimit(ctx, "a@example.com", "validate_otp"); !dec.Allowed {
		t.Fatal("different action should have its own window")
	}
	if dec, _ := limiter.CheckLimit(ctx, "b@example.com", "generate_otp"); !dec.Allowed {
		t.Fatal("different identifier should have its own window")
	}
}

func TestLimiterRejectDoesNotRefreshWindow(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewStatic(time.Unix(1_700_000_000, 0))
	limiter, _ := newLimiter(t, clk, time.Minute, 1)

	if dec, _ := limiter.CheckLimit(ctx, "c@example.com", "generate_otp"); !dec.Allowed {
		t.Fatal("first request should be allowed")
	}

	// Hammering while blocked must not extend the block.
	for i := 0; i < 5; i++ {
		clk.Advance(10 * time.Second)
		if dec, _ := limiter.CheckLimit(ctx, "c@example.com", "generate_otp"); dec.Allowed {
			t.Fatalf("request at +%ds should be rejected", (i+1)*10)
		}
	}

	clk.Advance(11 * time.Second)
	if dec, _ := limiter.CheckLimit(ctx, "c@example.com", "generate_otp"); !dec.Allowed {
		t.Fatal("request after the original window passed should be allowed")
	}
}

func TestLimiterCount(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewStatic(time.Unix(1_700_000_000, 0))
	limiter, _ := newLimiter(t, clk, time.Minute, 5)

	n, err := limiter.Count(ctx, "d@example.com", "generate_otp")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Fatalf("Count() = %d, want 0", n)
	}

	limiter.CheckLimit(ctx, "d@example.com", "generate_otp")
	clk.Advance(30 * time.Second)
	limiter.CheckLimit(ctx, "d@example.com", "generate_otp")

	if n, _ = limiter.Count(ctx, "d@example.com", "generate_otp"); n != 2 {
		t.Fatalf("Count() = %d, want 2", n)
	}

	// Counting is read-only and ages entries out.
	clk.Advance(45 * time.Second)
	if n, _ = limiter.Count(ctx, "d@example.com", "generate_otp"); n != 1 {
		t.Fatalf("Count() after partial expiry = %d, want 1", n)
	}
}
