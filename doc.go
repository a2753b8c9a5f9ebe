// Package lvlstruct is a small in-memory playground for two classic
// data structures and their canonical algorithms: an ordered binary
// search tree and a generic weighted graph.
//
// 🚀 What is lvlstruct?
//
//	A compact, single-threaded, pedagogy-first library that brings together:
//		• bst/      — ordered int64 binary search tree: insert, delete (in-order
//		              successor rule), search, min/max, height, traversals
//		• core/     — generic Graph[V] over an insertion-ordered adjacency list,
//		              directed or undirected, integer-weighted, multi-edges & loops
//		• bfs/      — level-order traversal with depth and parent diagnostics
//		• dfs/      — iterative depth-first search, topological sort, cycle check
//		• dijkstra/ — non-negative shortest paths with path reconstruction
//
// ✨ Why choose lvlstruct?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – traversal order is a pure function of edge insertion
//   - Pure Go – no cgo, no hidden machinery
//   - Extensible – OnVisit hooks for custom per-vertex logic
//
// The two halves share no state: a Tree is a standalone ordered set, and a
// Graph[V] is a standalone adjacency multimap over any comparable key type.
// Neither is safe for concurrent mutation; share instances across goroutines
// only under external synchronisation.
//
// Quick ASCII example:
//
//	      50            A───B
//	     /  \           │   │
//	   30    70         C───D
//	  /  \  /  \
//	 20 40 60  80
//
//	a BST after inserting 50,30,20,40,70,60,80, and a square graph with
//	four vertices and four edges.
//
// Dive into the package docs and runnable examples for the full contracts,
// including sentinel values, tie-breaking rules and error semantics.
//
//	go get github.com/katalvlaran/lvlstruct
package lvlstruct
