// This file implements the mutating half of Graph: AddNode, AddEdge and
// SetNodeWeight. All mutators take the write lock; validation precedes
// any state change so a failed call leaves the graph untouched.

package core

// AddNode appends a new node and returns its ordinal.
// Ordinals are assigned densely in creation order starting at 0.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodeWeights = append(g.nodeWeights, 0)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return len(g.nodeWeights) - 1
}

// AddNodes appends n nodes and returns the ordinal of the first one.
// Convenience for building fixed-order graphs in one call.
// Complexity: O(n) amortized.
func (g *Graph) AddNodes(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.nodeWeights)
	for i := 0; i < n; i++ {
		g.nodeWeights = append(g.nodeWeights, 0)
		g.out = append(g.out, nil)
		g.in = append(g.in, nil)
	}

	return first
}

// SetNodeWeight assigns a weight to node v.
//
// Errors:
//   - ErrNodeNotFound if v is out of range.
//   - ErrBadWeight if the graph is unweighted and weight is non-zero.
func (g *Graph) SetNodeWeight(v int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if v < 0 || v >= len(g.nodeWeights) {
		return ErrNodeNotFound
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	g.nodeWeights[v] = weight

	return nil
}

// AddEdge inserts an edge from→to with the given weight.
// On undirected graphs the edge is incident to both endpoints; it is
// stored once in the edge catalog and mirrored in the adjacency lists.
//
// Errors:
//   - ErrNodeNotFound if either ordinal is out of range.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the edge already exists and multi-edges are disabled.
//   - ErrBadWeight if the graph is unweighted and weight is non-zero.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.nodeWeights)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrNodeNotFound
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if weight != 0 && !g.weighted {
		return ErrBadWeight
	}
	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return ErrMultiEdgeNotAllowed
	}

	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.out[from] = append(g.out[from], to)
	if g.directed {
		g.in[to] = append(g.in[to], from)
	} else if from != to {
		// Mirror undirected adjacency; self-loops appear once.
		g.out[to] = append(g.out[to], from)
	}

	return nil
}

// hasEdgeLocked reports whether an edge from→to exists.
// Callers must hold at least the read lock.
func (g *Graph) hasEdgeLocked(from, to int) bool {
	for _, v := range g.out[from] {
		if v == to {
			return true
		}
	}
	// Undirected adjacency is mirrored, so out[from] already covers both
	// orientations; directed graphs only match the exact orientation.
	return false
}
