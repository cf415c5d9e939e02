package chartstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/soulmatch/internal/domain/astrology"
)

type chartEntry struct {
	payload   astrology.HoroscopeData
	expiresAt time.Time
}

// MemoryStore is an in-memory horoscope cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]chartEntry
	now     func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]chartEntry),
		now:     time.Now,
	}
}

// Get implements astrology.Store. Expired entries are dropped on read.
func (s *MemoryStore) Get(_ context.Context, key string) (astrology.HoroscopeData, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return astrology.HoroscopeData{}, false, nil
	}
	if s.expired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return astrology.HoroscopeData{}, false, nil
	}
	return entry.payload, true, nil
}

// Set caches the chart with optional TTL.
func (s *MemoryStore) Set(_ context.Context, key string, data astrology.HoroscopeData, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.entries[key] = chartEntry{payload: data, expiresAt: exp}
	return nil
}

// Delete removes a cached chart.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Evict drops every expired entry and reports how many were removed.
func (s *MemoryStore) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, entry := range s.entries {
		if s.expired(entry.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// StartEviction sweeps expired entries every interval until the returned
// stop function is called. stop blocks until the sweeper has exited.
func (s *MemoryStore) StartEviction(interval time.Duration, onEvict func(removed int)) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if removed := s.Evict(); removed > 0 && onEvict != nil {
					onEvict(removed)
				}
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

// Len reports the number of cached entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) expired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ astrology.Store = (*MemoryStore)(nil)
