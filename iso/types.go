// Package iso types: the Graph capability interface consumed by the
// matcher, and the optional semantic matcher callbacks.

package iso

import "github.com/katalvlaran/isograph/core"

// Graph is the minimum contract a graph storage type must satisfy to
// participate in matching.
//
// Nodes must be densely enumerable as ordinals 0..NodeCount()-1. Graphs
// are read-only for the duration of a search; AdjacencyBits must return
// a snapshot that stays valid (and untouched) until the search ends.
type Graph interface {
	// NodeCount returns the number of nodes.
	NodeCount() int

	// EdgeCount returns the number of edges.
	EdgeCount() int

	// Directed reports whether edges are one-way.
	Directed() bool

	// Neighbors enumerates the ordinals adjacent to v in the given
	// direction. Undirected graphs return the same incident set for both
	// directions, listing self-loop partners once. The result is treated
	// as read-only and must be deterministic for a given graph.
	Neighbors(v int, dir core.Direction) []int

	// AdjacencyBits returns a precomputed O(1) adjacency snapshot.
	AdjacencyBits() *core.AdjacencyBits
}

// NodeMatcher is an optional semantic check on a candidate node pair:
// it reports whether pattern node p may map to host node h.
// A nil NodeMatcher is disabled (always true) and costs nothing.
type NodeMatcher func(pattern, host Graph, p, h int) bool

// EdgeMatcher is an optional semantic check on a pair of corresponding
// edges, given by their endpoint ordinals on each side.
// A nil EdgeMatcher is disabled (always true) and costs nothing.
type EdgeMatcher func(pattern, host Graph, pFrom, pTo, hFrom, hTo int) bool
