// This file implements deep cloning of a Graph. The clone shares no
// storage with the source; configuration flags are preserved.

package core

// Clone returns a deep copy of the graph: same flags, same ordinals,
// same edge catalog order, fully independent storage.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,

		nodeWeights: append([]int64(nil), g.nodeWeights...),
		out:         make([][]int, len(g.out)),
		in:          make([][]int, len(g.in)),
		edges:       append([]Edge(nil), g.edges...),
	}
	for i, adj := range g.out {
		out.out[i] = append([]int(nil), adj...)
	}
	for i, adj := range g.in {
		out.in[i] = append([]int(nil), adj...)
	}

	return out
}
