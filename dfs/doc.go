// Package dfs provides depth-first traversal over a core.Graph, plus the
// two DFS-derived orderings on directed graphs: topological sort and cycle
// detection.
//
// DFS itself is iterative and stack-based, and records the order in which
// vertices are first discovered. Neighbors are pushed in reverse of their
// adjacency-list order, so the first-inserted neighbor is explored first:
// the visit order is a pure function of the AddEdge history.
//
// TopologicalSort is the classic post-order reversal. On a DAG the result
// is a valid linearisation; on a cyclic digraph it is some permutation of
// all vertices without being a valid order — the sort itself performs no
// cycle detection. Callers that need detection run HasCycle separately.
//
// Complexity:
//
//   - Time:   O(V + E) for each of DFS, TopologicalSort and HasCycle
//   - Memory: O(V) for the stack/recursion and visited bookkeeping
package dfs
