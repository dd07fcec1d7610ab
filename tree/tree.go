package tree

import (
	"fmt"
	"rewardtree/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RewardFunc computes the reward of a path. Implementations must be pure and
// safe to invoke concurrently: they may not read or write tree state. A tree
// never recomputes a reward it has cached; only a path whose computation
// failed is retried, on the next insertion that reaches it.
type RewardFunc func(Path) (float64, error)

// Mapper is the parallel-map service a batch insertion dispatches new reward
// computations through: one invocation of fn per path, one value per path,
// in the same order as paths. Whether failures are retried is the mapper's
// own policy; the tree only sees success or a single error.
type Mapper interface {
	Map(fn RewardFunc, paths []Path) ([]float64, error)
}

// Tree owns a lazily grown decision tree and its rewards table. The table is
// append-only: rewards[s-1] holds the reward computed for the path whose
// terminal node carries slot s, and entries are never overwritten or
// removed.
//
// Trees are not safe for concurrent mutation. Insertions are sequential;
// only the reward computations of a single batch run in parallel, and those
// touch no tree state.
type Tree[P any] struct {
	root      *Node[P]
	rewardFn  RewardFunc
	rewards   []float64
	metrics   metrics.Collector
	lastBatch metrics.BatchMetric
}

// New creates a tree whose root carries payload and no reward. The dynamic
// type of payload fixes the payload schema for every node of this tree.
func New[P any](payload P, rewardFn RewardFunc, options ...Option) *Tree[P] {
	if rewardFn == nil {
		panic("Must specify a reward function")
	}

	cfg := config{metrics: metrics.NewDummyCollector()}
	for _, option := range options {
		option(&cfg)
	}

	return &Tree[P]{
		root:     NewNode(0, payload),
		rewardFn: rewardFn,
		rewards:  make([]float64, 0, cfg.capacity),
		metrics:  cfg.metrics,
	}
}

// Root returns the root node.
func (t *Tree[P]) Root() *Node[P] {
	return t.root
}

// RewardCount returns the number of rewards computed so far.
func (t *Tree[P]) RewardCount() int {
	return len(t.rewards)
}

// LastBatch returns the metrics of the last completed batch insertion, if
// collection was enabled with WithMetrics.
func (t *Tree[P]) LastBatch() metrics.BatchMetric {
	return t.lastBatch
}

// Contains reports whether path is present in the tree.
func (t *Tree[P]) Contains(path Path) bool {
	return t.root.Contains(path)
}

// Resolve returns the node identified by path.
func (t *Tree[P]) Resolve(path Path) (*Node[P], bool) {
	return t.root.Resolve(path)
}

// RewardOf returns the cached reward of path without inserting anything.
func (t *Tree[P]) RewardOf(path Path) (float64, error) {
	node, ok := t.root.Resolve(path)
	if !ok {
		return 0, fmt.Errorf("reward of path %v: %w", path, ErrPathNotFound)
	}
	if node.slot == 0 {
		return 0, fmt.Errorf("reward of path %v: %w", path, ErrRewardNotComputed)
	}
	return t.rewards[node.slot-1], nil
}

// GetOrCreate returns the reward of path, creating missing nodes and
// computing the reward synchronously on first insertion. A path already
// carrying a reward is answered from the table without invoking the reward
// function; a path present without one (an intermediate node, or one left by
// a failed batch) has its reward computed now. Only the terminal node is
// stamped with a slot: intermediate nodes created along the way stay
// rewardless until requested themselves.
func (t *Tree[P]) GetOrCreate(path Path, factory func() P) (float64, error) {
	node, _ := t.root.ensurePath(path, factory)
	if node.slot != 0 {
		return t.rewards[node.slot-1], nil
	}

	node.slot = len(t.rewards) + 1
	value, err := t.rewardFn(path)
	if err != nil {
		node.slot = 0
		return 0, fmt.Errorf("computing reward for path %v: %w", path, err)
	}
	t.rewards = append(t.rewards, value) // Lands exactly at the reserved slot
	return value, nil
}

// GetOrCreateBatch returns one reward per input path, in input order.
//
// Bookkeeping runs sequentially in input order: paths already carrying a
// reward record their existing slot, every other path gets its missing
// suffix created and the next slot reserved. The rewards of the reserved
// paths are then computed through pool in a single call and appended in
// reservation order, landing each value exactly at its reserved slot.
// Duplicates within one batch are computed once.
//
// Appends are all-or-nothing: if the pool or the reward function fails, the
// slots reserved by this batch are released, the table is left untouched,
// and the error is returned. Created nodes remain, rewardless, and a later
// insertion computes their rewards then.
func (t *Tree[P]) GetOrCreateBatch(paths []Path, factory func() P, pool Mapper) ([]float64, error) {
	t.metrics.Start(len(paths))

	slots := make([]int, len(paths))
	var newPaths []Path
	var newNodes []*Node[P]
	for i, path := range paths {
		node, _ := t.root.ensurePath(path, factory)
		if node.slot == 0 {
			node.slot = len(t.rewards) + len(newPaths) + 1
			newPaths = append(newPaths, path)
			newNodes = append(newNodes, node)
			t.metrics.AddComputation()
		} else {
			t.metrics.AddCacheHit()
		}
		slots[i] = node.slot
	}

	if len(newPaths) > 0 {
		if pool == nil {
			panic("Must supply a worker pool to compute new rewards")
		}

		values, err := pool.Map(t.rewardFn, newPaths)
		if err != nil {
			for _, node := range newNodes {
				node.slot = 0
			}
			log.Warn().Msgf("releasing %d reserved reward slots: %v", len(newPaths), err)
			return nil, fmt.Errorf("computing %d rewards: %w", len(newPaths), err)
		}
		if len(values) != len(newPaths) {
			panic(fmt.Sprintf("parallel map returned %d values for %d paths", len(values), len(newPaths)))
		}
		t.rewards = append(t.rewards, values...)
	}

	results := make([]float64, len(paths))
	for i, slot := range slots {
		results[i] = t.rewards[slot-1]
	}
	t.lastBatch = t.metrics.Complete()
	return results, nil
}
