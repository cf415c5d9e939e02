package astrology

import (
	"context"
	"time"
)

// Store caches computed charts keyed by their birth details.
type Store interface {
	Get(ctx context.Context, key string) (HoroscopeData, bool, error)
	Set(ctx context.Context, key string, data HoroscopeData, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
