package bfs

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvlstruct/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   *core.Graph[V]
	opts    Options[V]
	queue   []queueItem[V]
	visited mapset.Set[V]
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// An unknown start vertex is not an error: the Result is simply empty.
// A nil graph returns ErrNilGraph. Vertices are marked visited when
// enqueued, so parallel edges and self-loops never re-enter the queue.
func BFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	// Prepare walker with capacity hints
	n := g.VertexCount()
	w := &walker[V]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[V], 0, n),
		visited: mapset.NewThreadUnsafeSet[V](),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	// Unknown start: empty traversal, no error
	if !g.HasVertex(start) {
		return w.res, nil
	}

	// Seed the queue with the start vertex at depth 0
	w.visited.Add(start)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.res, w.loop()
}

// loop processes the queue until it is empty or a hook aborts.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order and fires the OnVisit hook.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit hook for %v: %w", item.v, err)
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor of item in adjacency-list
// order, recording its depth and parent on first discovery.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) {
	for _, e := range w.graph.Neighbors(item.v) {
		if w.visited.Contains(e.To) {
			continue
		}
		w.visited.Add(e.To)
		w.res.Depth[e.To] = item.depth + 1
		w.res.Parent[e.To] = item.v
		w.queue = append(w.queue, queueItem[V]{v: e.To, depth: item.depth + 1})
	}
}
