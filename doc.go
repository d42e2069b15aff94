// Package isograph is an in-memory library of graph data structures and
// graph algorithms, built around a lazy (sub)graph isomorphism engine.
//
// 🚀 What is isograph?
//
//	A compact, ordinal-indexed graph toolkit that brings together:
//		• Core primitives: dense 0-based node ordinals, directed & undirected edges
//		• Matchers: VF2-family exact and subgraph isomorphism, lazy enumeration
//		• Storage: adjacency-list (core) and dense adjacency-matrix (matrix) graphs
//		• Traversals: BFS, DFS and topological sorting
//		• Generators: paths, cycles, complete graphs, stars, the Petersen graph
//		• Export: Graphviz DOT serialization
//
// ✨ Why choose isograph?
//
//   - Minimal API, clear, intuitive naming
//   - Deterministic – candidate scans and neighbor orders are specified, test-visible
//   - Pure Go – no cgo, no hidden deps
//   - Pluggable – any storage implementing iso.Graph can be matched
//
// Under the hood, everything is organized under small subpackages:
//
//	core/    — fundamental Graph type, Direction, adjacency bitset
//	iso/     — the VF2 matching engine and its lazy Matcher
//	matrix/  — dense adjacency-matrix graph storage
//	builder/ — deterministic graph generators
//	bfs/     — breadth-first traversal
//	dfs/     — depth-first traversal, cycle detection, topological sort
//	dot/     — Graphviz DOT export
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle; iso.IsIsomorphic reports it isomorphic to any relabeling
//	of itself, and iso.SubgraphIsomorphisms enumerates every embedding.
//
//	go get github.com/katalvlaran/isograph
package isograph
