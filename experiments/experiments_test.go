package experiments

import (
	"rewardtree/tree"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSimulatedReward(t *testing.T) {
	t.Run("scoring the same path identically", func(t *testing.T) {
		first, err := SimulatedReward(tree.Path{1, 2, 3})
		require.NoError(t, err)

		second, err := SimulatedReward(tree.Path{1, 2, 3})
		require.NoError(t, err)

		require.Equal(t, first, second, "Rewards should be deterministic")
	})

	t.Run("staying in the unit interval", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		for _, path := range randomPaths(rng, 100) {
			got, err := SimulatedReward(path)
			require.NoError(t, err)
			require.GreaterOrEqual(t, got, 0.0, "Rewards should not be negative")
			require.Less(t, got, 1.0, "Rewards should stay below one")
		}
	})
}

func TestRandomPaths(t *testing.T) {
	t.Run("respecting depth and branching bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))

		paths := randomPaths(rng, 200)

		require.Equal(t, 200, len(paths), "Should sample the requested count")
		for _, path := range paths {
			require.GreaterOrEqual(t, len(path), 1, "Paths should never be empty")
			require.LessOrEqual(t, len(path), MaxDepth, "Paths should respect the depth bound")
			for _, action := range path {
				require.GreaterOrEqual(t, int(action), 0, "Actions should not be negative")
				require.Less(t, int(action), Branching, "Actions should respect the branching factor")
			}
		}
	})
}
