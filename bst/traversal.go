// This file implements the in-order and pre-order traversals. Both return
// materialised snapshots: the slices stay valid across later mutation.
package bst

// InOrder returns all keys in ascending order (left, node, right).
// Over a valid tree the result is strictly increasing.
// Complexity: O(n)
func (t *Tree) InOrder() []int64 {
	out := make([]int64, 0, t.size)
	inOrder(t.root, &out)

	return out
}

func inOrder(n *node, out *[]int64) {
	if n == nil {
		return
	}
	inOrder(n.left, out)
	*out = append(*out, n.key)
	inOrder(n.right, out)
}

// PreOrder returns all keys in pre-order (node, left, right). Re-inserting
// the result into an empty tree reproduces the exact shape.
// Complexity: O(n)
func (t *Tree) PreOrder() []int64 {
	out := make([]int64, 0, t.size)
	preOrder(t.root, &out)

	return out
}

func preOrder(n *node, out *[]int64) {
	if n == nil {
		return
	}
	*out = append(*out, n.key)
	preOrder(n.left, out)
	preOrder(n.right, out)
}
