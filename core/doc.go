// Package core defines the central generic Graph type: a vertex-keyed
// adjacency multimap with integer-weighted edges.
//
// A Graph[V] is parameterised over any comparable vertex key type; common
// instantiations are strings and signed integers. The graph is directed or
// undirected, fixed at construction via WithDirected. Edges are appended to
// each vertex's adjacency list in insertion order, and that order is
// observable: the traversal packages (bfs, dfs, dijkstra) define their visit
// order in terms of it.
//
// Storage invariants:
//
//   - Every vertex mentioned as a source or destination of AddEdge is
//     registered in the vertex mapping (endpoints auto-register).
//   - For an undirected graph, each AddEdge(u, v, w) stores the mirror
//     record (v → u, w) on v's list within the same call.
//   - Parallel edges and self-loops are stored as separate entries.
//   - Weights are not validated at insert; Dijkstra's non-negativity
//     precondition is checked by the dijkstra package itself.
//
// The only mutator is edge/vertex addition; vertices are never removed.
// A Graph is not safe for concurrent mutation: the library is
// single-threaded by contract, and callers sharing an instance across
// goroutines must synchronise externally. Accessor results are snapshot
// copies, so a fully consumed result stays valid across later mutation.
package core
