package tree

import "errors"

var (
	// ErrPathNotFound reports a lookup of a path absent from the tree.
	ErrPathNotFound = errors.New("path not found")

	// ErrRewardNotComputed reports a reward query on a node that carries no
	// reward slot, such as an intermediate node created by a longer path's
	// extension.
	ErrRewardNotComputed = errors.New("reward not computed")
)
