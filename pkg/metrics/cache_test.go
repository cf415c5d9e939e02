package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheCounter_Concurrent(t *testing.T) {
	var counter CacheCounter
	require.True(t, counter.Snapshot().IsZero())
	require.Zero(t, counter.Snapshot().HitRatio())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				counter.Miss()
				return
			}
			counter.Hit()
		}(i)
	}
	wg.Wait()

	stats := counter.Snapshot()
	require.Equal(t, CacheStats{Hits: 40, Misses: 10}, stats)
	require.InDelta(t, 0.8, stats.HitRatio(), 1e-9)
}
