package tree

import (
	"fmt"
	"reflect"
	"rewardtree/utils"
)

// Action labels one edge out of a node. Actions are unique among the
// children of a single parent but may repeat across branches.
type Action int

// Path identifies a node by the actions leading to it from the root. The
// empty path denotes the root itself.
type Path []Action

// Node is a vertex of a reward tree: an action label, owned children in
// insertion order, a payload of the tree's fixed schema, and a reward slot
// (0 until a reward is attached). Nodes are not safe for concurrent
// mutation.
type Node[P any] struct {
	action   Action
	payload  P
	children []*Node[P]
	slot     int // 1-based index into the owning tree's rewards table
}

// NewNode creates a detached node with no children and no reward.
func NewNode[P any](action Action, payload P) *Node[P] {
	return &Node[P]{action: action, payload: payload}
}

func (n *Node[P]) Action() Action {
	return n.action
}

func (n *Node[P]) Payload() P {
	return n.payload
}

// RewardSlot returns the node's 1-based index into the owning tree's rewards
// table, or 0 if no reward has been attached.
func (n *Node[P]) RewardSlot() int {
	return n.slot
}

// Children returns the node's children in insertion order.
func (n *Node[P]) Children() []*Node[P] {
	children := make([]*Node[P], len(n.children))
	copy(children, n.children)
	return children
}

// child finds the child carrying action by linear scan: children lists stay
// small in a branching-factor search tree.
func (n *Node[P]) child(action Action) *Node[P] {
	i := utils.FindIndexFunc(n.children, func(c *Node[P]) bool {
		return c.action == action
	})
	if i == -1 {
		return nil
	}
	return n.children[i]
}

// Contains reports whether each action of path matches a child at each
// successive step below n. The empty path is always contained.
func (n *Node[P]) Contains(path Path) bool {
	_, ok := n.Resolve(path)
	return ok
}

// Resolve walks path from n and returns the terminal node. The empty path
// resolves to n itself.
func (n *Node[P]) Resolve(path Path) (*Node[P], bool) {
	node := n
	for _, action := range path {
		child := node.child(action)
		if child == nil {
			return nil, false
		}
		node = child
	}
	return node, true
}

// AddChild attaches child to n. Adding a child whose action is already taken
// by a sibling is a no-op, keeping insertion idempotent. Panics if child's
// payload does not match n's payload schema.
func (n *Node[P]) AddChild(child *Node[P]) {
	n.checkSchema(child.payload)

	if n.child(child.action) != nil {
		return
	}
	n.children = append(n.children, child)
}

// GetOrCreate returns the payload of the child carrying action. If the child
// exists its payload is returned unchanged and the factory is not invoked;
// otherwise a child with the factory's payload and no reward is attached.
func (n *Node[P]) GetOrCreate(action Action, factory func() P) P {
	if child := n.child(action); child != nil {
		return child.payload
	}

	payload := factory()
	n.checkSchema(payload)
	n.children = append(n.children, &Node[P]{action: action, payload: payload})
	return payload
}

// GetOrCreatePath walks path from n, creating every missing node through to
// the leaf. The factory is invoked at most once per call: its single payload
// is shared by all nodes created during this one extension, and it is not
// invoked at all when the path is fully present. Returns the payload of the
// node reached.
func (n *Node[P]) GetOrCreatePath(path Path, factory func() P) P {
	leaf, _ := n.ensurePath(path, factory)
	return leaf.payload
}

// ensurePath resolves path below n, creating missing nodes with a single
// shared factory payload, and reports whether anything was created.
func (n *Node[P]) ensurePath(path Path, factory func() P) (*Node[P], bool) {
	node := n
	created := false
	var payload P
	for _, action := range path {
		child := node.child(action)
		if child == nil {
			if !created {
				payload = factory()
				node.checkSchema(payload)
				created = true
			}
			child = &Node[P]{action: action, payload: payload}
			node.children = append(node.children, child)
		}
		node = child
	}
	return node, created
}

// checkSchema rejects a payload whose dynamic type differs from n's. Must be
// called before any mutation so that a failed insertion leaves the tree
// untouched.
func (n *Node[P]) checkSchema(payload P) {
	want := reflect.TypeOf(n.payload)
	got := reflect.TypeOf(payload)
	if want != got {
		panic(fmt.Sprintf("payload schema mismatch: tree holds %v, got %v", want, got))
	}
}
