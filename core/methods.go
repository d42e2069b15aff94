// This file implements the read-only half of Graph: counts, capability
// flags, neighbor enumeration and weight lookups. All queries take the
// read lock and are safe to call concurrently.

package core

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodeWeights)
}

// EdgeCount returns the number of edges in the catalog.
// Undirected edges count once. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// HasNode reports whether ordinal v denotes an existing node.
func (g *Graph) HasNode(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.nodeWeights)
}

// HasEdge reports whether an edge from→to exists. On undirected graphs
// orientation is ignored. Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.out) || to < 0 || to >= len(g.out) {
		return false
	}

	return g.hasEdgeLocked(from, to)
}

// Neighbors returns the node ordinals adjacent to v in the given
// direction, in deterministic edge-insertion order. On undirected graphs
// both directions yield the same incident set, with self-loop partners
// appearing once.
//
// The returned slice is shared with the graph's internal storage; treat
// it as read-only. Returns nil when v is out of range.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int, dir Direction) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.out) {
		return nil
	}
	if g.directed && dir == Incoming {
		return g.in[v]
	}

	return g.out[v]
}

// Degree returns the number of incident edges of v in the given
// direction. Returns 0 when v is out of range.
func (g *Graph) Degree(v int, dir Direction) int {
	return len(g.Neighbors(v, dir))
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeWeight returns the weight assigned to node v.
//
// Errors:
//   - ErrNodeNotFound if v is out of range.
func (g *Graph) NodeWeight(v int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.nodeWeights) {
		return 0, ErrNodeNotFound
	}

	return g.nodeWeights[v], nil
}

// EdgeWeight returns the weight of the first edge from→to in insertion
// order. On undirected graphs orientation is ignored. With multi-edges
// enabled only the first parallel edge is consulted.
//
// Errors:
//   - ErrNodeNotFound if either ordinal is out of range.
//   - ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(E).
func (g *Graph) EdgeWeight(from, to int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.nodeWeights)
	if from < 0 || from >= n || to < 0 || to >= n {
		return 0, ErrNodeNotFound
	}
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return e.Weight, nil
		}
		if !g.directed && e.From == to && e.To == from {
			return e.Weight, nil
		}
	}

	return 0, ErrEdgeNotFound
}
