// Package bfs provides breadth-first search over a core.Graph, returning
// the level-order visit sequence plus hop distances and parent links.
//
// BFS explores vertices in increasing edge distance from a start vertex.
// Neighbors are enqueued in adjacency-list order and marked visited on
// enqueue, so the visit order is a pure function of the AddEdge history and
// the hop distance is non-decreasing along the output sequence. Edge
// weights are ignored; use package dijkstra for weighted distances.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and visited bookkeeping
package bfs
