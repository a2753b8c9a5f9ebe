// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on non-negative integer-weighted graphs, with predecessor-based
// path reconstruction.
//
// The algorithm processes vertices in order of increasing tentative
// distance using a min-heap priority queue and the lazy-deletion variant of
// decrease-key: improved distances push duplicate heap entries, and an
// entry popped with a recorded distance above the current best is
// discarded.
//
// Distances are unique for a fixed graph; when several equal-cost paths
// exist the predecessor map may legitimately differ between runs, since the
// order of equal-distance heap entries is unspecified.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalised at most once: up to V effective extractions.
//   - Each relaxation may push a new entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E; simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case heap occupancy under lazy decrease-key.
package dijkstra
