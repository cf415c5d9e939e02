package astrology

import (
	"context"
	"errors"
)

// ErrChartNotFound is returned by repositories when an update or delete
// targets a missing chart.
var ErrChartNotFound = errors.New("chart not found")

// ChartRepository persists charts owned by users.
type ChartRepository interface {
	Create(ctx context.Context, record ChartRecord) (ChartRecord, error)
	Get(ctx context.Context, ownerID int64, id string) (ChartRecord, bool, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]ChartRecord, error)
	Update(ctx context.Context, record ChartRecord) (ChartRecord, error)
	Delete(ctx context.Context, ownerID int64, id string) error
}

// Archive keeps an immutable JSON snapshot of each saved chart.
type Archive interface {
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
