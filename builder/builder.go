package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isograph/core"
)

// ErrTooFewNodes indicates that the requested node count is smaller than
// the minimum the graph family requires.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* reject size */ }.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// Minimum node counts per family.
const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
)

// Option configures the graph a constructor builds into.
type Option func(*config)

type config struct {
	graphOpts []core.GraphOption
}

// WithDirected builds a directed graph; constructors orient each edge
// from its lower emission endpoint.
func WithDirected() Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, core.WithDirected(true)) }
}

// WithWeighted builds a weighted graph (all generated edges keep weight
// zero; callers assign weights afterwards).
func WithWeighted() Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, core.WithWeighted()) }
}

// newGraph applies options and allocates the n-node base graph.
func newGraph(n int, opts []Option) *core.Graph {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	g := core.NewGraph(cfg.graphOpts...)
	g.AddNodes(n)

	return g
}

// Path builds the n-node path P_n: edges i—(i+1) for i = 0..n-2.
// n ≥ 1 (a single node is a trivial path).
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	g := newGraph(n, opts)
	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(i, i+1, 0); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
		}
	}

	return g, nil
}

// Cycle builds the n-node simple cycle C_n: edges i—(i+1) mod n. n ≥ 3.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	g := newGraph(n, opts)
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n, 0); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n: one edge per unordered pair,
// emitted with the lower endpoint first. n ≥ 1.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	g := newGraph(n, opts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j, 0); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Star builds the n-node star S_n: center 0 joined to 1..n-1. n ≥ 2.
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	g := newGraph(n, opts)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(0, i, 0); err != nil {
			return nil, fmt.Errorf("Star: AddEdge(0,%d): %w", i, err)
		}
	}

	return g, nil
}

// Petersen builds the Petersen graph GP(5,2): outer 5-cycle 0..4, inner
// 5-cycle 5..9 stepping by two, and the five spokes i—(i+5).
// 10 nodes, 15 edges, 3-regular.
func Petersen(opts ...Option) (*core.Graph, error) {
	const outer = 5
	g := newGraph(2*outer, opts)
	for i := 0; i < outer; i++ {
		// Outer rim, spoke, inner pentagram.
		if err := g.AddEdge(i, (i+1)%outer, 0); err != nil {
			return nil, fmt.Errorf("Petersen: rim: %w", err)
		}
		if err := g.AddEdge(i, i+outer, 0); err != nil {
			return nil, fmt.Errorf("Petersen: spoke: %w", err)
		}
		if err := g.AddEdge(outer+i, outer+(i+2)%outer, 0); err != nil {
			return nil, fmt.Errorf("Petersen: star: %w", err)
		}
	}

	return g, nil
}
