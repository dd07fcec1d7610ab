package pool

import (
	"rewardtree/tree"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many reward computations run at once. A Pool holds no
// goroutines between calls; each Map fans out its own and work queues behind
// the available slots.
type Pool struct {
	workers int
}

// New returns a pool with the given number of worker slots. Non-positive
// sizes fall back to runtime.NumCPU().
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Size returns the number of worker slots.
func (p *Pool) Size() int {
	return p.workers
}

// Map invokes fn once per path, at most Size() invocations at a time, and
// returns the values in the same order as paths. The first failure fails the
// whole map; items already running are not interrupted.
func (p *Pool) Map(fn tree.RewardFunc, paths []tree.Path) ([]float64, error) {
	values := make([]float64, len(paths))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, path := range paths {
		i, path := i, path // Capture for goroutine
		g.Go(func() error {
			value, err := fn(path)
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
