package core

// Directed reports the graph-wide directedness fixed at construction.
// Complexity: O(1)
func (g *Graph[V]) Directed() bool {
	return g.directed
}

// AddVertex registers an isolated vertex. It reports whether the vertex was
// new; adding an already-known vertex is a no-op returning false.
// Complexity: O(1)
func (g *Graph[V]) AddVertex(v V) bool {
	if _, exists := g.adjacency[v]; exists {
		return false
	}
	g.adjacency[v] = nil

	return true
}

// AddEdge appends an edge u→v with the given weight to u's adjacency list.
// Both endpoints are auto-registered if missing. For an undirected graph the
// mirror record v→u with the same weight is appended to v's list in the same
// call. Parallel edges and self-loops are stored as separate entries; there
// is no deduplication and no weight validation.
// Complexity: O(1) amortized
func (g *Graph[V]) AddEdge(u, v V, weight int64) {
	g.adjacency[u] = append(g.adjacency[u], Edge[V]{To: v, Weight: weight})

	// Register the destination even when it has no outgoing edges yet.
	if _, exists := g.adjacency[v]; !exists {
		g.adjacency[v] = nil
	}

	if !g.directed {
		g.adjacency[v] = append(g.adjacency[v], Edge[V]{To: u, Weight: weight})
	}
	g.edgeCount++
}

// HasVertex reports whether v is a known vertex.
// Complexity: O(1)
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns all known vertex keys. The iteration order is
// implementation-defined and must not be relied on; algorithms whose output
// depends on vertex order (TopologicalSort) document that dependency.
// Complexity: O(V)
func (g *Graph[V]) Vertices() []V {
	out := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}

	return out
}

// Neighbors returns a copy of u's adjacency list in insertion order.
// Unknown vertices yield an empty slice, not an error.
// Complexity: O(deg(u))
func (g *Graph[V]) Neighbors(u V) []Edge[V] {
	list, ok := g.adjacency[u]
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]Edge[V], len(list))
	copy(out, list)

	return out
}

// Degree returns the number of adjacency records stored on u (parallel edges
// and self-loops included). Unknown vertices have degree 0.
// Complexity: O(1)
func (g *Graph[V]) Degree(u V) int {
	return len(g.adjacency[u])
}

// VertexCount returns the number of known vertices.
// Complexity: O(1)
func (g *Graph[V]) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of logical edges added via AddEdge.
// In an undirected graph a stored mirror record does not count separately.
// Complexity: O(1)
func (g *Graph[V]) EdgeCount() int {
	return g.edgeCount
}
