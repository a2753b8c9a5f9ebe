// This file declares the Edge record, the Graph container and the
// construction-time Option set.
package core

// Edge is a single adjacency record on a vertex's list: the destination
// vertex key and the weight of the connection.
//
// Weight is stored verbatim; nothing in the core validates its sign or
// magnitude. Algorithms that need constraints (e.g. dijkstra) enforce them
// on entry.
type Edge[V comparable] struct {
	// To is the destination vertex key.
	To V

	// Weight is the cost of the edge.
	Weight int64
}

// Option configures a Graph at construction time.
type Option func(*config)

// config collects construction flags before the generic Graph is allocated.
type config struct {
	directed bool
}

// WithDirected sets the graph-wide directedness (true = directed,
// false = undirected). The flag is immutable after construction; the
// default is undirected.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// Graph is an in-memory adjacency-list graph keyed by V.
//
// adjacency maps each known vertex to its outgoing edge list in insertion
// order. A vertex that was only ever named as a destination is present with
// an empty (nil) list. edgeCount counts AddEdge calls, i.e. logical edges:
// an undirected edge and its stored mirror count once.
type Graph[V comparable] struct {
	directed  bool
	adjacency map[V][]Edge[V]
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1)
func NewGraph[V comparable](opts ...Option) *Graph[V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		directed:  cfg.directed,
		adjacency: make(map[V][]Edge[V]),
	}
}
