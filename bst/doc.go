// Package bst implements an ordered binary search tree over int64 keys.
//
// A Tree is an ordered collection of distinct keys. Its shape is determined
// solely by the history of Insert and Delete calls; there is no rebalancing.
//
// Invariants, maintained at every observable moment:
//
//   - Ordering: for every node, all keys in its left subtree are strictly
//     less than its key and all keys in its right subtree strictly greater.
//   - No duplicates: each key appears at most once.
//   - Size coherence: Size equals the number of reachable nodes.
//   - The reachable structure is a tree (acyclic, single parent).
//
// Deleting a node with two children uses the in-order successor rule: the
// minimum key of the right subtree replaces the deleted key, and the
// successor node is unlinked from the right subtree.
//
// None of the operations return errors. Missing keys on Search/Delete and
// duplicate keys on Insert are reported as booleans; Min and Max on an empty
// tree return the MinSentinel and MaxSentinel values, and callers that need
// to disambiguate check Size first.
//
// Complexity: all point operations are O(h) where h is the tree height
// (worst case O(n) for a degenerate insertion order); traversals are O(n).
// A Tree is not safe for concurrent use without external synchronisation.
package bst
