package cache

import (
	"context"
	"sync"
	"time"

	"github.com/go-kit/log"
)

type entry struct {
	value   string
	expires time.Time // zero never expires
}

// Memory an in-process Store. Memory is concurrency safe. Expired entries are never returned and are
// removed periodically by a go-routine started in NewMemory.
type Memory struct {
	// entries the cached values
	entries map[string]entry

	// lock synchronizes access to entries
	lock sync.RWMutex

	// now for testing
	now func() time.Time

	logger log.Logger
}

// NewMemory returns an empty Memory store. Expired entries are swept every sweepFrequency
// until ctx is done.
func NewMemory(ctx context.Context, sweepFrequency time.Duration, logger log.Logger) *Memory {
	m := &Memory{
		entries: map[string]entry{},
		now:     time.Now,
		logger:  logger,
	}
	go m.sweepPeriodically(ctx, sweepFrequency)
	return m
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.lock.RLock()
	e, ok := m.entries[key]
	m.lock.RUnlock()

	if !ok || m.expired(e) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.entries[key] = e
	return nil
}

// Len number of entries held, including expired entries not yet swept
func (m *Memory) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.entries)
}

func (m *Memory) expired(e entry) bool {
	return !e.expires.IsZero() && !m.now().Before(e.expires)
}

// sweepPeriodically removes expired entries on a given schedule.
// This is expected to be called from a go-routine.
func (m *Memory) sweepPeriodically(ctx context.Context, frequency time.Duration) {
	for {
		select {
		case <-time.After(frequency):
			if n := m.sweep(); n > 0 {
				m.logger.Log("msg", "swept expired entries", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}

// sweep safely removes expired entries and reports how many were removed
func (m *Memory) sweep() int {
	m.lock.Lock()
	defer m.lock.Unlock()

	n := 0
	for key, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, key)
			n++
		}
	}
	return n
}
