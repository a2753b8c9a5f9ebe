// TopologicalSort computes a linear ordering of a directed graph such that
// for every edge u→v on a DAG, u appears before v in the ordering. The
// algorithm is DFS-based post-order reversal; it performs no cycle
// detection, so on a cyclic digraph the output is some permutation of all
// vertices that is not a valid order. Use HasCycle for detection.
package dfs

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvlstruct/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V comparable] struct {
	graph   *core.Graph[V]
	visited mapset.Set[V]
	order   []V // post-order sequence, reversed at the end
}

// TopologicalSort returns a topological ordering of all vertices in g.
// If g is nil, returns ErrNilGraph.
// If g is undirected, returns ErrUndirectedGraph.
//
// Roots are taken in the order produced by g.Vertices(), which is
// implementation-defined; on a DAG every returned order is a valid
// linearisation regardless of that order.
func TopologicalSort[V comparable](g *core.Graph[V]) ([]V, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrNilGraph
	}
	// 2. Only directed graphs are supported
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 3. Initialize sorter state
	verts := g.Vertices()
	s := &topoSorter[V]{
		graph:   g,
		visited: mapset.NewThreadUnsafeSet[V](),
		order:   make([]V, 0, len(verts)),
	}

	// 4. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if !s.visited.Contains(v) {
			s.visit(v)
		}
	}

	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit runs a post-order DFS from v: v is appended to order only after
// all its descendants have been.
func (s *topoSorter[V]) visit(v V) {
	s.visited.Add(v)

	for _, e := range s.graph.Neighbors(v) {
		if !s.visited.Contains(e.To) {
			s.visit(e.To)
		}
	}

	s.order = append(s.order, v)
}
