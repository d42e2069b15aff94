// Topological sorting and cycle detection over directed graphs, using
// the classic white/gray/black coloring.

package dfs

import "github.com/katalvlaran/isograph/core"

// TopologicalSort returns the node ordinals of a directed acyclic graph
// in topological order: for every edge u→v, u precedes v. Roots are
// tried in ascending ordinal order, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrNotDirected if g is undirected.
//   - ErrCycleDetected if g contains a directed cycle.
//
// Complexity: O(V + E).
func TopologicalSort(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	n := g.NodeCount()
	colors := make([]int, n)
	order := make([]int, 0, n)

	var visit func(v int) error
	visit = func(v int) error {
		colors[v] = gray
		for _, nb := range g.Neighbors(v, core.Outgoing) {
			switch colors[nb] {
			case gray:
				return ErrCycleDetected
			case white:
				if err := visit(nb); err != nil {
					return err
				}
			}
		}
		colors[v] = black
		order = append(order, v)

		return nil
	}

	for v := 0; v < n; v++ {
		if colors[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Post-order is reverse topological; flip in place.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// HasCycle reports whether the directed graph g contains a cycle.
// Undirected graphs are rejected with ErrNotDirected.
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return false, ErrNotDirected
	}
	if _, err := TopologicalSort(g); err != nil {
		return true, nil
	}

	return false, nil
}
