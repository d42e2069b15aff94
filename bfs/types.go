// Package bfs defines types and options for breadth-first traversal:
// cancellation, a visit hook, and the collected order/depth/parent data.
package bfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to BFS.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound indicates that the start ordinal does not exist.
	ErrStartNotFound = errors.New("bfs: start node not found")
)

// Option configures optional behavior of BFS traversal.
// Use with BFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for BFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the traversal early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is dequeued.
	// Returning an error aborts the traversal with that error.
	OnVisit func(v int) error
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext allows cancellation via ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithOnVisit sets the dequeue hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result collects the outcome of a BFS run over an n-node graph.
type Result struct {
	// Order lists visited ordinals in dequeue (level) order.
	Order []int

	// Depth[v] is the hop distance from the start, or -1 if unreached.
	Depth []int

	// Parent[v] is the BFS-tree predecessor of v, or -1 for the start
	// node and unreached nodes.
	Parent []int
}

// Visited reports whether v was reached. Out-of-range ordinals report false.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
