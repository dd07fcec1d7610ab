package treeview

import (
	"fmt"
	"rewardtree/tree"
	"strings"
)

// Walk visits every node at and below root in depth-first pre-order. Each
// visit receives the node and its path relative to root; the path slice is
// the callback's to keep.
func Walk[P any](root *tree.Node[P], visit func(path tree.Path, node *tree.Node[P])) {
	walk(root, nil, visit)
}

func walk[P any](node *tree.Node[P], path tree.Path, visit func(tree.Path, *tree.Node[P])) {
	visit(path, node)
	for _, child := range node.Children() {
		childPath := make(tree.Path, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = child.Action()
		walk(child, childPath, visit)
	}
}

// Size returns the number of nodes at and below root.
func Size[P any](root *tree.Node[P]) int {
	count := 0
	Walk(root, func(tree.Path, *tree.Node[P]) {
		count++
	})
	return count
}

// Depth returns the length of the longest path below root.
func Depth[P any](root *tree.Node[P]) int {
	depth := 0
	Walk(root, func(path tree.Path, _ *tree.Node[P]) {
		if len(path) > depth {
			depth = len(path)
		}
	})
	return depth
}

// Format renders t as an indented outline, one node per line with its
// payload and cached reward where one exists. Format only observes the tree.
func Format[P any](t *tree.Tree[P]) string {
	var sb strings.Builder
	root := t.Root()
	fmt.Fprintf(&sb, "nodes: %d, depth: %d, rewards: %d\n", Size(root), Depth(root), t.RewardCount())
	fmt.Fprintf(&sb, "(root)%s\n", describe(t, nil, root))
	formatChildren(&sb, t, root, nil, "")
	return sb.String()
}

func formatChildren[P any](sb *strings.Builder, t *tree.Tree[P], node *tree.Node[P], path tree.Path, prefix string) {
	children := node.Children()
	for i, child := range children {
		branch, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			branch, childPrefix = "└── ", prefix+"    "
		}

		childPath := make(tree.Path, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = child.Action()

		fmt.Fprintf(sb, "%s%s%d%s\n", prefix, branch, child.Action(), describe(t, childPath, child))
		formatChildren(sb, t, child, childPath, childPrefix)
	}
}

func describe[P any](t *tree.Tree[P], path tree.Path, node *tree.Node[P]) string {
	s := fmt.Sprintf(" %+v", node.Payload())
	if reward, err := t.RewardOf(path); err == nil {
		s += fmt.Sprintf(" (reward %.4f)", reward)
	}
	return s
}
