package kvstore

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/shandysiswandi/gotp/internal/pkg/clock"
	"github.com/shandysiswandi/gotp/internal/pkg/goerror"
)

type memoryEntry struct {
	value     string
	timer     *time.Timer
	expiresAt time.Time // zero when the entry has no TTL
}

// Memory is an in-process Store backed by a map with per-key eviction timers.
// It is intended for development and tests; all operations are safe for
// concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	clock   clock.Clocker
}

// NewMemory returns an empty in-process store.
func NewMemory(clk clock.Clocker) *Memory {
	if clk == nil {
		clk = clock.New()
	}

	return &Memory{
		entries: make(map[string]*memoryEntry),
		clock:   clk,
	}
}

// Get returns the value for key.
//
// Besides the eviction timer, expiry is also checked lazily here so that a
// Get racing a timer fire (or using a test clock) still observes the entry
// as absent.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", fmt.Errorf("kvstore: %w: %s", goerror.ErrNotFound, key)
	}

	if !entry.expiresAt.IsZero() && m.clock.Now().After(entry.expiresAt) {
		m.evictLocked(key)
		return "", fmt.Errorf("kvstore: %w: %s", goerror.ErrNotFound, key)
	}

	return entry.value, nil
}

// Set stores value under key, replacing any pending eviction timer.
func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.entries[key]; ok && old.timer != nil {
		old.timer.Stop()
	}

	entry := &memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.clock.Now().Add(ttl)
		entry.timer = m.evictAfter(key, entry, ttl)
	}

	m.entries[key] = entry

	return nil
}

// Delete removes the key and stops its timer.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictLocked(key)

	return nil
}

// Incr implements the optional Incrementer extension.
func (m *Memory) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var current int64
	if entry, ok := m.entries[key]; ok {
		if entry.expiresAt.IsZero() || m.clock.Now().Before(entry.expiresAt) {
			n, err := strconv.ParseInt(entry.value, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("kvstore: value at %s is not an integer: %w", key, err)
			}
			current = n
			entry.value = strconv.FormatInt(current+1, 10)
			return current + 1, nil
		}
		m.evictLocked(key)
	}

	entry := &memoryEntry{value: "1"}
	if ttl > 0 {
		entry.expiresAt = m.clock.Now().Add(ttl)
		entry.timer = m.evictAfter(key, entry, ttl)
	}
	m.entries[key] = entry

	return 1, nil
}

// Close stops all timers and drops all entries.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.entries {
		m.evictLocked(key)
	}

	return nil
}

// evictAfter arms an eviction timer bound to entry, not just to key. A timer
// that already fired and is waiting on the lock while Set replaces the entry
// must not delete the replacement, so the callback re-checks that the entry
// under key is still the one it was armed for.
func (m *Memory) evictAfter(key string, entry *memoryEntry, ttl time.Duration) *time.Timer {
	return time.AfterFunc(ttl, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if current, ok := m.entries[key]; ok && current == entry {
			delete(m.entries, key)
		}
	})
}

func (m *Memory) evictLocked(key string) {
	if entry, ok := m.entries[key]; ok {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		delete(m.entries, key)
	}
}
