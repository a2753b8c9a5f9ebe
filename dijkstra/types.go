// Package dijkstra types: the infinity sentinel, sentinel errors and the
// Result pair.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the +∞ distance: the value reported in Result.Dist for
// every known vertex with no path from the source.
const Unreachable int64 = math.MaxInt64

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// in the graph. Dijkstra requires non-negative weights; the whole graph
	// is scanned up front so the failure is reported before any relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Result is the outcome of a single-source run.
type Result[V comparable] struct {
	// Dist maps every known vertex to its minimum distance from the
	// source, or Unreachable when no path exists.
	Dist map[V]int64

	// Prev maps each reached vertex (other than the source) to its
	// predecessor on a shortest path. Unreachable vertices have no entry.
	// Feed it to ShortestPath to materialise a route.
	Prev map[V]V
}
