package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlstruct/core"
)

// Dijkstra computes shortest distances from source to every vertex of g,
// along with the predecessor map for path reconstruction.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. No stored edge may have negative weight (ErrNegativeWeight).
//
// A source that is unknown to the graph is not an error: the result then
// holds the source at distance 0 and every known vertex at Unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V comparable](g *core.Graph[V], source V) (*Result[V], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Pre-scan all edges to detect negative weights. Fail fast.
	verts := g.Vertices()
	for _, u := range verts {
		for _, e := range g.Neighbors(u) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	// 3) Initialize distance and predecessor maps: every known vertex at
	//    +∞, the source at 0.
	n := len(verts)
	r := &runner[V]{
		graph: g,
		dist:  make(map[V]int64, n),
		prev:  make(map[V]V, n),
		pq:    make(nodePQ[V], 0, n),
	}
	for _, v := range verts {
		r.dist[v] = Unreachable
	}
	r.dist[source] = 0

	// 4) Seed the heap with (0, source) and run the main loop.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{v: source, dist: 0})
	r.process()

	return &Result[V]{Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	graph *core.Graph[V]
	dist  map[V]int64
	prev  map[V]V
	pq    nodePQ[V]
}

// process repeatedly extracts the minimum-distance entry and relaxes its
// outgoing edges, discarding stale lazy-deletion entries.
func (r *runner[V]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V])

		// Lazy deletion: a recorded distance above the current best means
		// a newer entry for this vertex was already processed.
		if item.dist > r.dist[item.v] {
			continue
		}

		r.relax(item.v)
	}
}

// relax attempts to improve the distance of every neighbor of u.
// Assumes r.dist[u] is final before the call.
func (r *runner[V]) relax(u V) {
	var newDist int64
	for _, e := range r.graph.Neighbors(u) {
		newDist = r.dist[u] + e.Weight

		// Strictly-less keeps equal-cost duplicates out of the heap.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem[V]{v: e.To, dist: newDist})
	}
}

// nodeItem is a heap entry: a vertex and its tentative distance at push
// time. Stale entries are filtered on pop, not removed on update.
type nodeItem[V comparable] struct {
	v    V
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ[V comparable] []*nodeItem[V]

// Len returns the number of items in the heap.
func (pq nodePQ[V]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ[V]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
