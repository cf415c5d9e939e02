package chartrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/soulmatch/internal/domain/astrology"
)

// MemoryRepository provides an in-memory chart store for tests/dev.
type MemoryRepository struct {
	mu     sync.RWMutex
	charts map[string]astrology.ChartRecord
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{charts: make(map[string]astrology.ChartRecord)}
}

// Create stores the chart record.
func (r *MemoryRepository) Create(_ context.Context, record astrology.ChartRecord) (astrology.ChartRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.CreatedAt = record.CreatedAt.UTC()
	record.UpdatedAt = record.UpdatedAt.UTC()
	r.charts[record.ID] = record
	return record, nil
}

// Get returns a chart owned by ownerID.
func (r *MemoryRepository) Get(_ context.Context, ownerID int64, id string) (astrology.ChartRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.charts[id]
	if !ok || record.OwnerID != ownerID {
		return astrology.ChartRecord{}, false, nil
	}
	return record, true, nil
}

// ListByOwner returns the owner's charts, newest first.
func (r *MemoryRepository) ListByOwner(_ context.Context, ownerID int64) ([]astrology.ChartRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]astrology.ChartRecord, 0)
	for _, record := range r.charts {
		if record.OwnerID == ownerID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces the stored horoscope of an existing chart.
func (r *MemoryRepository) Update(_ context.Context, record astrology.ChartRecord) (astrology.ChartRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.charts[record.ID]
	if !ok || existing.OwnerID != record.OwnerID {
		return astrology.ChartRecord{}, astrology.ErrChartNotFound
	}
	existing.Label = record.Label
	existing.Horoscope = record.Horoscope
	existing.EngineVersion = record.EngineVersion
	existing.UpdatedAt = record.UpdatedAt.UTC()
	r.charts[record.ID] = existing
	return existing, nil
}

// Delete removes a chart owned by ownerID.
func (r *MemoryRepository) Delete(_ context.Context, ownerID int64, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.charts[id]
	if !ok || record.OwnerID != ownerID {
		return astrology.ErrChartNotFound
	}
	delete(r.charts, id)
	return nil
}

var _ astrology.ChartRepository = (*MemoryRepository)(nil)
