// Package dfs implements depth-first search on core.Graph (single-source
// and full forest), cycle detection, and topological sorting.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the whole forest
//     via WithFullTraversal
//   - Hook: OnVisit (pre-order) with error abort
//   - Cancellation via context.Context
//   - TopologicalSort / HasCycle built on the same coloring scheme
//
// Complexity:
//
//   - Time:   O(V + E), plus hook overhead.
//   - Memory: O(V) for the recursion stack and result arrays.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/isograph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise it
// starts only from start. Returns the post-order Result or an error if
// aborted by context or hook.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrStartNotFound if start is out of range (single-source mode).
//   - context.Canceled / context.DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start.
	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	// 4. Initialize result arrays.
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

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree.
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if res.Depth[v] < 0 {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(start, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits node v at the given depth, recursing to neighbors in
// the graph's deterministic adjacency order.
func (w *dfsWalker) traverse(v, depth int) error {
	// Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// Mark discovered and record depth.
	w.res.Depth[v] = depth

	// Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// Recurse on undiscovered neighbors.
	for _, nb := range w.graph.Neighbors(v, core.Outgoing) {
		if w.res.Depth[nb] >= 0 {
			continue
		}
		w.res.Parent[nb] = v
		if err := w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	// Record finish (post-) order.
	w.res.Order = append(w.res.Order, v)

	return nil
}
