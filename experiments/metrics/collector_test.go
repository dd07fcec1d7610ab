package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting one batch", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddCacheHit()
		c.AddComputation()
		c.AddComputation()

		got := c.Complete()

		require.Equal(t, 3, got.Paths, "Should keep the path count from Start")
		require.Equal(t, 1, got.CacheHits, "Should count cache hits")
		require.Equal(t, 2, got.Computations, "Should count computations")
		require.GreaterOrEqual(t, got.Duration, time.Duration(0), "Duration should be measured from Start")
	})

	t.Run("resetting between batches", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		c.AddComputation()
		c.AddComputation()
		c.Complete()

		c.Start(1)
		c.AddCacheHit()
		got := c.Complete()

		require.Equal(t, 1, got.Paths, "Start should replace the path count")
		require.Equal(t, 1, got.CacheHits, "Start should reset the counters")
		require.Equal(t, 0, got.Computations, "Start should reset the counters")
	})

	t.Run("recording nothing in the dummy", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(5)
		c.AddCacheHit()
		c.AddComputation()

		require.Equal(t, BatchMetric{}, c.Complete(), "The dummy should never record")
	})
}
