// Package dfs types: sentinel errors, traversal options and the Result
// collector shared by the traversal entry points.
package dfs

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

// VertexState values for the three-colour DFS used by HasCycle.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the current DFS path (visiting).
	Black        // Black: vertex and all descendants fully explored.
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort or HasCycle.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrUndirectedGraph is returned by TopologicalSort and HasCycle when
	// invoked on an undirected graph; both are defined on digraphs only.
	ErrUndirectedGraph = errors.New("dfs: directed graph required")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
type Options[V comparable] struct {
	// OnVisit, if non-nil, is invoked when a vertex is first discovered,
	// immediately after it is appended to Result.Order. Returning an error
	// aborts the traversal with that error.
	OnVisit func(v V) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{}
}

// WithOnVisit returns an Option installing fn as the discovery hook.
func WithOnVisit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnVisit = fn }
}

// Result captures the outcome of a depth-first traversal.
type Result[V comparable] struct {
	// Order records vertices in discovery order.
	Order []V

	// Visited is the set of vertices reached from the start.
	Visited mapset.Set[V]
}
