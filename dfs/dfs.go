package dfs

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvlstruct/core"
)

// dfsWalker encapsulates state during an iterative DFS.
type dfsWalker[V comparable] struct {
	graph *core.Graph[V]
	opts  Options[V]
	stack []V
	res   *Result[V]
}

// DFS performs an iterative, stack-based depth-first traversal of g from
// start and records the order in which vertices are first discovered.
//
// An unknown start vertex is not an error: the traversal simply covers
// nothing and the Result is empty. A nil graph returns ErrNilGraph.
// Neighbors are pushed onto the stack in reverse adjacency-list order, so
// the first-inserted neighbor is explored first; parallel edges and
// self-loops are harmless (re-discovery is skipped on pop).
func DFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Apply options
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Initialize result with capacity hint
	n := g.VertexCount()
	res := &Result[V]{
		Order:   make([]V, 0, n),
		Visited: mapset.NewThreadUnsafeSet[V](),
	}

	// 4. Unknown start: empty traversal, no error
	if !g.HasVertex(start) {
		return res, nil
	}

	w := &dfsWalker[V]{graph: g, opts: o, stack: []V{start}, res: res}

	// 5. Drain the stack
	if err := w.loop(); err != nil {
		return res, err
	}

	return res, nil
}

// loop pops until the stack is empty, discovering each vertex at most once.
func (w *dfsWalker[V]) loop() error {
	var c V
	for len(w.stack) > 0 {
		// Pop the top of the stack.
		c = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Skip entries discovered between push and pop.
		if w.res.Visited.Contains(c) {
			continue
		}

		if err := w.visit(c); err != nil {
			return err
		}
		w.pushNeighbors(c)
	}

	return nil
}

// visit marks c discovered, records it in Order and fires the OnVisit hook.
func (w *dfsWalker[V]) visit(c V) error {
	w.res.Visited.Add(c)
	w.res.Order = append(w.res.Order, c)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", c, err)
		}
	}

	return nil
}

// pushNeighbors pushes c's neighbors in reverse adjacency order, so that
// the first-inserted neighbor ends on top of the stack.
func (w *dfsWalker[V]) pushNeighbors(c V) {
	neighbors := w.graph.Neighbors(c)
	for i := len(neighbors) - 1; i >= 0; i-- {
		if !w.res.Visited.Contains(neighbors[i].To) {
			w.stack = append(w.stack, neighbors[i].To)
		}
	}
}
