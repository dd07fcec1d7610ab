package experiments

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"rewardtree/experiments/metrics"
	"rewardtree/pool"
	"rewardtree/tree"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	NumBatches    = 20 // Per pool config
	PathsPerBatch = 256
	MaxDepth      = 8
	Branching     = 6
	Seed          = 42 // Same workload for every config
	SpinRounds    = 1 << 14
)

var poolConfigs = []metrics.PoolConfig{
	{ID: 1, Workers: 1},
	{ID: 2, Workers: 2},
	{ID: 3, Workers: 4},
	{ID: 4, Workers: 8},
	{ID: 5, Workers: 16},
	{ID: 6, Workers: 32},
}

// Meta is the payload stored at every node.
type Meta struct {
	CreatedAt time.Time
}

func newMeta() Meta {
	return Meta{CreatedAt: time.Now()}
}

// RunBatchSpeedup measures batch insertion throughput across worker pool
// sizes. Every config replays the same seeded workload so cache hit rates
// stay comparable between runs.
func RunBatchSpeedup() {
	run := uuid.NewString()

	log.Info().Msgf("starting batch speedup experiment run %s...", run)

	records := []metrics.BatchRecord{}
	for ci, config := range poolConfigs {
		log.Info().Msgf("starting config %d of %d with %d workers...", ci+1, len(poolConfigs), config.Workers)

		records = append(records, runConfig(run, config)...)

		log.Info().Msgf("completed config %d of %d", ci+1, len(poolConfigs))
	}

	log.Info().Msg("completed batch speedup experiment")

	// Store experiment metadata
	writer, err := metrics.NewWriter("batch_speedup")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WritePoolConfigs(poolConfigs)
	if err != nil {
		panic(fmt.Sprintf("failed to store pool configs: %v", err))
	}
	log.Info().Msg("stored pool configs")

	// Store experiment results
	err = writer.WriteBatchRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to store batch records: %v", err))
	}
	log.Info().Msg("stored batch records")
}

// runConfig grows a fresh tree batch by batch and snapshots the
// collector's numbers after each insertion.
func runConfig(run string, config metrics.PoolConfig) []metrics.BatchRecord {
	t := tree.New(newMeta(), SimulatedReward, tree.WithMetrics(),
		tree.WithCapacity(NumBatches*PathsPerBatch))
	p := pool.New(config.Workers)
	rng := rand.New(rand.NewSource(Seed))

	records := []metrics.BatchRecord{}
	for i := 0; i < NumBatches; i++ {
		paths := randomPaths(rng, PathsPerBatch)

		_, err := t.GetOrCreateBatch(paths, newMeta, p)
		if err != nil {
			panic(fmt.Sprintf("failed to insert batch %d: %v", i+1, err))
		}

		records = append(records, metrics.BatchRecord{
			Run:         run,
			Config:      config.ID,
			Batch:       i + 1,
			BatchMetric: t.LastBatch(),
		})
	}

	return records
}

// randomPaths samples paths over a small fixed branching factor so later
// batches revisit earlier prefixes and mix cache hits with fresh work.
func randomPaths(rng *rand.Rand, count int) []tree.Path {
	paths := make([]tree.Path, count)
	for i := range paths {
		depth := 1 + rng.Intn(MaxDepth)
		path := make(tree.Path, depth)
		for j := range path {
			path[j] = tree.Action(rng.Intn(Branching))
		}
		paths[i] = path
	}
	return paths
}

// SimulatedReward hashes the path then spins on the digest to mimic an
// expensive evaluation. Deterministic, so every config scores the same
// workload identically.
func SimulatedReward(path tree.Path) (float64, error) {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, action := range path {
		binary.LittleEndian.PutUint64(buf, uint64(action))
		h.Write(buf)
	}

	sum := h.Sum64()
	for i := 0; i < SpinRounds; i++ {
		sum ^= sum << 13
		sum ^= sum >> 7
		sum ^= sum << 17
	}

	return float64(sum%1e9) / 1e9, nil
}
