// Package core provides the fundamental ordinal-indexed graph type shared
// by every algorithm package in isograph.
//
// The core package provides:
//
//   - Graph: an in-memory adjacency-list graph whose nodes are dense,
//     zero-based ordinals 0..NodeCount()-1, created by AddNode and densely
//     enumerable forever after. Ordinals double as direct array indices,
//     which is what the matching engine in package iso relies on.
//   - Direction: the Outgoing/Incoming neighbor filter.
//   - AdjacencyBits: a precomputed n×n bitset answering Adjacent(from, to)
//     in O(1). It is built once from a Graph snapshot and never mutated,
//     so it may be shared across goroutines freely.
//
// Graphs are configured at construction time with functional options:
// WithDirected, WithWeighted, WithLoops and WithMultiEdges. Parallel edges
// are storable when WithMultiEdges is set, but note that the isomorphism
// engine documents multigraphs as unsupported.
//
// Mutation is guarded by a sync.RWMutex, so graphs may be built from
// multiple goroutines; algorithm packages treat graphs as read-only for
// the duration of a run.
package core
