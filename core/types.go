// This file declares Direction, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound        - node ordinal is out of range.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node ordinal.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Direction selects which incident edges of a node are enumerated.
type Direction int

const (
	// Outgoing selects edges leaving a node (all incident edges when the
	// graph is undirected).
	Outgoing Direction = iota

	// Incoming selects edges entering a node (identical to Outgoing when
	// the graph is undirected).
	Incoming
)

// Edge represents a connection between two node ordinals.
//
// From and To are node ordinals; Weight is meaningful only on weighted
// graphs. On undirected graphs the (From, To) orientation records
// insertion order and carries no semantic meaning.
type Edge struct {
	// From is the source node ordinal.
	From int

	// To is the destination node ordinal.
	To int

	// Weight is the cost or capacity of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same node pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// Nodes are dense zero-based ordinals assigned by AddNode in creation
// order; they are never reused or compacted, so an ordinal is a stable
// direct array index for the lifetime of the graph. It supports directed
// vs. undirected edges, weighted vs. unweighted edges, parallel edges
// (multi-edges) and self-loops.
//
// mu guards all storage; read queries take the read lock.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // edges are one-way
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nodeWeights []int64 // weight per node ordinal
	out         [][]int // successors per node (all neighbors when undirected)
	in          [][]int // predecessors per node (unused when undirected)
	edges       []Edge  // edge catalog in insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
