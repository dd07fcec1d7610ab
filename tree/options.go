package tree

import "rewardtree/experiments/metrics"

type Option func(*config)

type config struct {
	metrics  metrics.Collector
	capacity int
}

// WithMetrics enables per-batch metrics collection, retrievable through
// Tree.LastBatch.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

// WithCapacity preallocates the rewards table.
func WithCapacity(capacity int) Option {
	return func(c *config) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}
