package treeview

import (
	"rewardtree/tree"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests read-only traversal and rendering
- walk: depth-first pre-order, each visit carries the node's own path
- size/depth: node count and longest path
- format: counts header, one line per node, rewards only where cached
*/

func pathSum(path tree.Path) (float64, error) {
	sum := 0.0
	for i, action := range path {
		sum += float64(int(action) * (i + 1))
	}
	return sum, nil
}

func newLabel() string {
	return "n"
}

// buildTree grows root -> 1 -> 2 and root -> 3 with a reward on every
// inserted path.
func buildTree(t *testing.T) *tree.Tree[string] {
	tr := tree.New("root", pathSum)
	for _, path := range []tree.Path{{1}, {1, 2}, {3}} {
		_, err := tr.GetOrCreate(path, newLabel)
		require.NoError(t, err)
	}
	return tr
}

func TestWalk(t *testing.T) {
	t.Run("visiting nodes in depth-first pre-order", func(t *testing.T) {
		tr := buildTree(t)

		var visited []tree.Path
		Walk(tr.Root(), func(path tree.Path, _ *tree.Node[string]) {
			visited = append(visited, path)
		})

		require.Equal(t, []tree.Path{nil, {1}, {1, 2}, {3}}, visited,
			"Should visit parents before children and siblings in insertion order")
	})
}

func TestSize(t *testing.T) {
	t.Run("counting every node", func(t *testing.T) {
		tr := buildTree(t)

		require.Equal(t, 4, Size(tr.Root()), "Should count the root and every descendant")
	})

	t.Run("counting a lone root", func(t *testing.T) {
		tr := tree.New("root", pathSum)

		require.Equal(t, 1, Size(tr.Root()), "A lone root should count as one node")
	})
}

func TestDepth(t *testing.T) {
	t.Run("measuring the longest path", func(t *testing.T) {
		tr := buildTree(t)

		require.Equal(t, 2, Depth(tr.Root()), "Depth should follow the longest path")
	})

	t.Run("measuring a lone root", func(t *testing.T) {
		tr := tree.New("root", pathSum)

		require.Equal(t, 0, Depth(tr.Root()), "A lone root should have zero depth")
	})
}

func TestFormat(t *testing.T) {
	t.Run("rendering the outline with cached rewards", func(t *testing.T) {
		tr := buildTree(t)

		got := Format(tr)

		want := "nodes: 4, depth: 2, rewards: 3\n" +
			"(root) root\n" +
			"├── 1 n (reward 1.0000)\n" +
			"│   └── 2 n (reward 5.0000)\n" +
			"└── 3 n (reward 3.0000)\n"
		require.Equal(t, want, got, "Should render one line per node with its reward")
	})

	t.Run("omitting rewards that are not cached", func(t *testing.T) {
		tr := tree.New("root", pathSum)
		_, err := tr.GetOrCreate(tree.Path{1, 2}, newLabel)
		require.NoError(t, err)

		got := Format(tr)

		want := "nodes: 3, depth: 2, rewards: 1\n" +
			"(root) root\n" +
			"└── 1 n\n" +
			"    └── 2 n (reward 5.0000)\n"
		require.Equal(t, want, got, "Rewardless nodes should render without a reward")
	})
}
