package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shandysiswandi/gotp/internal/pkg/clock"
	"github.com/shandysiswandi/gotp/internal/pkg/goerror"
	"github.com/shandysiswandi/gotp/internal/pkg/kvstore"
)

// Decision is the outcome of a limit check.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool
	// Remaining is how many requests are left in the current window
	// (0 when rejected).
	Remaining int
}

// Limiter admits at most MaxRequests events per (identifier, action) pair in
// any trailing window of WindowDuration, using a timestamp list in the store.
type Limiter struct {
	store  kvstore.Store
	clock  clock.Clocker
	window time.Duration
	max    int
}

// Config holds the limiter tunables.
type Config struct {
	// Window is the sliding window duration.
	Window time.Duration
	// MaxRequests is the number of requests admitted per window.
	MaxRequests int
}

// New constructs a Limiter on the given store. Non-positive values fall back
// to a 15-minute window and 5 requests.
func New(store kvstore.Store, clk clock.Clocker, cfg Config) *Limiter {
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = 5
	}
	if clk == nil {
		clk = clock.New()
	}

	return &Limiter{
		store:  store,
		clock:  clk,
		window: cfg.Window,
		max:    cfg.MaxRequests,
	}
}

// CheckLimit admits or rejects one request for (identifier, action).
//
// The stored timestamp list is read, filtered to the trailing window, and
// only re-persisted when the request is admitted. A rejection therefore does
// not refresh the record's TTL; the store reaps an idle window on its own.
func (l *Limiter) CheckLimit(ctx context.Context, identifier, action string) (Decision, error) {
	key := l.key(identifier, action)
	now := l.clock.Now().UnixMilli()
	windowStart := now - l.window.Milliseconds()

	timestamps, err := l.load(ctx, key)
	if err != nil {
		return Decision{}, err
	}

	inWindow := timestamps[:0]
	for _, ts := range timestamps {
		if ts > windowStart {
			inWindow = append(inWindow, ts)
		}
	}

	if len(inWindow) >= l.max {
		return Decision{Allowed: false, Remaining: 0}, nil
	}

	inWindow = append(inWindow, now)

	encoded, err := json.Marshal(inWindow)
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: encode window: %w", err)
	}
	if err := l.store.Set(ctx, key, string(encoded), l.window); err != nil {
		return Decision{}, err
	}

	return Decision{Allowed: true, Remaining: l.max - len(inWindow)}, nil
}

// Count returns how many requests are currently inside the window for
// (identifier, action) without mutating the record.
func (l *Limiter) Count(ctx context.Context, identifier, action string) (int, error) {
	timestamps, err := l.load(ctx, l.key(identifier, action))
	if err != nil {
		return 0, err
	}

	windowStart := l.clock.Now().UnixMilli() - l.window.Milliseconds()
	count := 0
	for _, ts := range timestamps {
		if ts > windowStart {
			count++
		}
	}

	return count, nil
}

func (l *Limiter) key(identifier, action string) string {
	return "ratelimit:" + action + ":" + identifier
}

func (l *Limiter) load(ctx context.Context, key string) ([]int64, error) {
	raw, err := l.store.Get(ctx, key)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var timestamps []int64
	if err := json.Unmarshal([]byte(raw), &timestamps); err != nil {
		return nil, fmt.Errorf("ratelimit: decode window at %s: %w", key, err)
	}

	return timestamps, nil
}
