// HasCycle is the standalone cycle check for directed graphs: depth-first
// search with three-colour marking and back-edge detection. TopologicalSort
// deliberately does not detect cycles, so callers that need to know whether
// its output is a valid linearisation run this first.
package dfs

import "github.com/katalvlaran/lvlstruct/core"

// cycleChecker tracks the three-colour visitation state of a traversal.
type cycleChecker[V comparable] struct {
	graph *core.Graph[V]
	state map[V]int // White / Gray / Black
}

// HasCycle reports whether the directed graph g contains a cycle.
// If g is nil, returns ErrNilGraph.
// If g is undirected, returns ErrUndirectedGraph (every undirected edge
// would read as a trivial 2-cycle, which is rarely what callers mean).
func HasCycle[V comparable](g *core.Graph[V]) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if !g.Directed() {
		return false, ErrUndirectedGraph
	}

	verts := g.Vertices()
	c := &cycleChecker[V]{
		graph: g,
		state: make(map[V]int, len(verts)),
	}

	for _, v := range verts {
		if c.state[v] == White && c.visit(v) {
			return true, nil
		}
	}

	return false, nil
}

// visit returns true when a back-edge (Gray→Gray) is reached from v.
func (c *cycleChecker[V]) visit(v V) bool {
	c.state[v] = Gray

	for _, e := range c.graph.Neighbors(v) {
		switch c.state[e.To] {
		case Gray:
			// Back-edge onto the current path: cycle. Self-loops land
			// here too, since v itself is Gray.
			return true
		case White:
			if c.visit(e.To) {
				return true
			}
		}
	}

	c.state[v] = Black

	return false
}
