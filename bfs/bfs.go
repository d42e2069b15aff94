// Package bfs implements breadth-first search on core.Graph: level-order
// traversal with depth and parent tracking, cancellation via context,
// and an optional visit hook.
//
// Complexity:
//
//   - Time:   O(V + E), plus hook overhead.
//   - Memory: O(V) for the queue and the result arrays.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/isograph/core"
)

// BFS performs breadth-first search on graph g starting at ordinal
// start. Neighbors are explored in the graph's deterministic adjacency
// order, so Order is reproducible for a given graph.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrStartNotFound if start is out of range.
//   - context.Canceled / context.DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph and start node.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	// 2. Apply options.
	bopts := DefaultOptions()
	for _, fn := range opts {
		fn(&bopts)
	}

	// 3. Initialize result arrays sized to the node count.
	n := g.NodeCount()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	// 4. Seed the queue with the start node at depth 0.
	queue := make([]int, 0, n)
	queue = append(queue, start)
	res.Depth[start] = 0

	// 5. Standard BFS loop.
	for len(queue) > 0 {
		select {
		case <-bopts.Ctx.Done():
			return res, bopts.Ctx.Err()
		default:
		}

		v := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, v)

		if bopts.OnVisit != nil {
			if err := bopts.OnVisit(v); err != nil {
				return res, fmt.Errorf("bfs: OnVisit hook for %d: %w", v, err)
			}
		}

		for _, w := range g.Neighbors(v, core.Outgoing) {
			if res.Depth[w] >= 0 {
				continue
			}
			res.Depth[w] = res.Depth[v] + 1
			res.Parent[w] = v
			queue = append(queue, w)
		}
	}

	return res, nil
}
