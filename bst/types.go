// This file declares the Tree and node types and the empty-tree sentinels.
package bst

import "math"

// Sentinel results for Min and Max on an empty Tree. They are the extreme
// values of the key domain, so they can collide with genuinely stored keys;
// callers disambiguate via Size() == 0.
const (
	// MinSentinel is returned by Min on an empty tree: the smallest
	// representable key.
	MinSentinel int64 = math.MinInt64

	// MaxSentinel is returned by Max on an empty tree: the largest
	// representable key.
	MaxSentinel int64 = math.MaxInt64
)

// node is a single tree node. Each node is exclusively owned by its parent,
// or by the Tree itself when it is the root.
type node struct {
	key   int64
	left  *node
	right *node
}

// Tree is an ordered set of int64 keys backed by an unbalanced binary
// search tree. The zero value is an empty tree ready to use; New is the
// conventional constructor. size always equals the number of reachable
// nodes.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}
