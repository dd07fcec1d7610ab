package metrics

import (
	"sync/atomic"
	"time"
)

// BatchMetric describes one completed batch insertion.
type BatchMetric struct {
	Paths        int // Input paths, duplicates included
	CacheHits    int // Paths answered from the rewards table
	Computations int // Rewards dispatched to the worker pool
	Duration     time.Duration
}

type Collector interface {
	Start(paths int)
	AddCacheHit()
	AddComputation()
	Complete() BatchMetric
}

type collector struct {
	startTime    time.Time
	paths        int
	cacheHits    atomic.Int32
	computations atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(paths int) {
	c.startTime = time.Now()
	c.paths = paths
	c.cacheHits.Store(0)
	c.computations.Store(0)
}

func (c *collector) AddCacheHit() {
	c.cacheHits.Add(1)
}

func (c *collector) AddComputation() {
	c.computations.Add(1)
}

func (c *collector) Complete() BatchMetric {
	return BatchMetric{
		Paths:        c.paths,
		CacheHits:    int(c.cacheHits.Load()),
		Computations: int(c.computations.Load()),
		Duration:     time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(paths int) {}

func (c *dummyCollector) AddCacheHit() {}

func (c *dummyCollector) AddComputation() {}

func (c *dummyCollector) Complete() BatchMetric { return BatchMetric{} }
