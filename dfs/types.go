// Package dfs defines types and options for depth-first traversal,
// cycle detection and topological sorting.
package dfs

import (
	"context"
	"errors"
)

// Visitation colors for cycle detection and topological sorting.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start ordinal does not exist.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected indicates TopologicalSort was asked to order an
	// undirected graph.
	ErrNotDirected = errors.New("dfs: graph is not directed")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on node discovery (pre-order).
	// Returning an error aborts the traversal with that error.
	OnVisit func(v int) error

	// FullTraversal restarts the search from every still-unvisited node,
	// covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext allows cancellation via ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithFullTraversal covers every component, not just the start's.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result collects the outcome of a DFS run over an n-node graph.
type Result struct {
	// Order lists ordinals in post-order (a node appears after all its
	// tree descendants).
	Order []int

	// Depth[v] is the recursion depth at discovery, or -1 if unreached.
	Depth []int

	// Parent[v] is the DFS-tree predecessor of v, or -1 for roots and
	// unreached nodes.
	Parent []int
}

// Visited reports whether v was reached. Out-of-range ordinals report false.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
