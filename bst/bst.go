// This file implements the point operations: Insert, Search, Delete,
// Min/Max, Size and Height.
package bst

// Insert adds k to the tree and reports whether the structure changed.
// Inserting a key that is already present leaves the tree and its size
// untouched and returns false. The operation is atomic: either a new leaf
// is linked in and size incremented, or neither happens.
// Complexity: O(h)
func (t *Tree) Insert(k int64) bool {
	var inserted bool
	t.root = insertNode(t.root, k, &inserted)
	if inserted {
		t.size++
	}

	return inserted
}

// insertNode descends by comparison and attaches a new leaf at the unique
// position for k, flagging *inserted. Duplicates fall through unchanged.
func insertNode(n *node, k int64, inserted *bool) *node {
	if n == nil {
		*inserted = true

		return &node{key: k}
	}

	switch {
	case k < n.key:
		n.left = insertNode(n.left, k, inserted)
	case k > n.key:
		n.right = insertNode(n.right, k, inserted)
	}

	return n
}

// Search reports whether k is present.
// Complexity: O(h)
func (t *Tree) Search(k int64) bool {
	n := t.root
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Delete removes k and reports whether it was present. Missing keys are a
// no-op returning false. A node with two children is replaced by its
// in-order successor: the successor's key is copied into the node and the
// successor is removed from the right subtree. Size decreases by exactly 1
// iff the key was present, regardless of whether the root changed.
// Complexity: O(h)
func (t *Tree) Delete(k int64) bool {
	var removed bool
	t.root = deleteNode(t.root, k, &removed)
	if removed {
		t.size--
	}

	return removed
}

// deleteNode removes k from the subtree rooted at n and returns the new
// subtree root, flagging *removed when a node was found.
func deleteNode(n *node, k int64, removed *bool) *node {
	if n == nil {
		return nil
	}

	switch {
	case k < n.key:
		n.left = deleteNode(n.left, k, removed)
	case k > n.key:
		n.right = deleteNode(n.right, k, removed)
	default:
		*removed = true

		// Leaf or single child: splice the node out.
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}

		// Two children: copy the in-order successor's key, then unlink
		// the successor. The inner removal must not flag *removed twice.
		succ := minNode(n.right)
		n.key = succ.key
		var innerRemoved bool
		n.right = deleteNode(n.right, succ.key, &innerRemoved)
	}

	return n
}

// minNode returns the minimum-key node of a non-empty subtree.
func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}

	return n
}

// Min returns the smallest key, or MinSentinel when the tree is empty.
// Complexity: O(h)
func (t *Tree) Min() int64 {
	if t.root == nil {
		return MinSentinel
	}

	return minNode(t.root).key
}

// Max returns the largest key, or MaxSentinel when the tree is empty.
// Complexity: O(h)
func (t *Tree) Max() int64 {
	if t.root == nil {
		return MaxSentinel
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key
}

// Size returns the number of stored keys.
// Complexity: O(1)
func (t *Tree) Size() int {
	return t.size
}

// Height returns the height of the tree: -1 for an empty tree, 0 for a
// single node, and 1 + max(height(left), height(right)) otherwise.
// Complexity: O(n)
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return -1
	}

	hl := height(n.left)
	hr := height(n.right)
	if hl > hr {
		return 1 + hl
	}

	return 1 + hr
}
