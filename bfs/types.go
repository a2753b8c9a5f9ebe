// Package bfs types: sentinel errors, traversal options and the Result
// collector.
package bfs

import "errors"

// ErrNilGraph is returned when a nil *core.Graph is passed to BFS.
var ErrNilGraph = errors.New("bfs: graph is nil")

// Option configures optional behavior of BFS traversal.
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for BFS traversal.
type Options[V comparable] struct {
	// OnVisit, if non-nil, is invoked when a vertex is dequeued and
	// appended to Result.Order, together with its hop depth. Returning an
	// error aborts the traversal with that error.
	OnVisit func(v V, depth int) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{}
}

// WithOnVisit returns an Option installing fn as the visit hook.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) { o.OnVisit = fn }
}

// Result captures the outcome of a breadth-first traversal.
type Result[V comparable] struct {
	// Order records vertices in level order. The hop distance from the
	// start is non-decreasing along this sequence.
	Order []V

	// Depth maps each visited vertex to its distance (#edges) from start.
	Depth map[V]int

	// Parent maps each visited vertex to the vertex it was first discovered
	// from. The start vertex has no entry.
	Parent map[V]V
}
