package metrics

import "sync/atomic"

// CacheStats captures lookups served by a cache.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// IsZero reports whether no lookup has been recorded.
func (s CacheStats) IsZero() bool {
	return s.Hits == 0 && s.Misses == 0
}

// HitRatio is hits over lookups, or 0 before the first lookup.
func (s CacheStats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// CacheCounter accumulates CacheStats from concurrent callers.
type CacheCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// Hit records a served lookup.
func (c *CacheCounter) Hit() { c.hits.Add(1) }

// Miss records a lookup that fell through.
func (c *CacheCounter) Miss() { c.misses.Add(1) }

// Snapshot returns the current totals.
func (c *CacheCounter) Snapshot() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
