package matrix

import (
	"errors"

	"github.com/katalvlaran/isograph/core"
)

// Sentinel errors for dense matrix operations.
var (
	// ErrNodeNotFound indicates an operation referenced an out-of-range ordinal.
	ErrNodeNotFound = errors.New("matrix: node not found")

	// ErrEdgeExists indicates the edge is already set (no parallel edges).
	ErrEdgeExists = errors.New("matrix: edge already exists")
)

// Dense is a fixed-order graph backed by an n×n adjacency matrix.
//
// The node set is fixed at construction; nodes are the ordinals
// 0..Order-1. Self-loops are always representable, parallel edges never.
// Dense satisfies the iso.Graph capability interface.
type Dense struct {
	n        int
	directed bool
	cells    []bool // row-major n×n; cells[from*n+to]
	edges    int
}

// NewDense creates an edgeless dense graph with n nodes.
// Memory: O(n²).
func NewDense(n int, directed bool) *Dense {
	return &Dense{
		n:        n,
		directed: directed,
		cells:    make([]bool, n*n),
	}
}

// SetEdge inserts the edge from→to. On undirected graphs the mirror cell
// is set too, and either orientation counts as existing.
//
// Errors:
//   - ErrNodeNotFound if either ordinal is out of range.
//   - ErrEdgeExists if the edge is already set.
//
// Complexity: O(1).
func (d *Dense) SetEdge(from, to int) error {
	if from < 0 || from >= d.n || to < 0 || to >= d.n {
		return ErrNodeNotFound
	}
	if d.cells[from*d.n+to] {
		return ErrEdgeExists
	}
	d.cells[from*d.n+to] = true
	if !d.directed {
		d.cells[to*d.n+from] = true
	}
	d.edges++

	return nil
}

// HasEdge reports whether from→to is set. Out-of-range ordinals report
// false. Complexity: O(1).
func (d *Dense) HasEdge(from, to int) bool {
	if from < 0 || from >= d.n || to < 0 || to >= d.n {
		return false
	}

	return d.cells[from*d.n+to]
}

// NodeCount returns the fixed node count.
func (d *Dense) NodeCount() int { return d.n }

// EdgeCount returns the number of edges; undirected edges count once.
func (d *Dense) EdgeCount() int { return d.edges }

// Directed reports whether edges are one-way.
func (d *Dense) Directed() bool { return d.directed }

// Neighbors enumerates the ordinals adjacent to v in the given direction
// by scanning row (Outgoing) or column (Incoming) v, in ascending
// ordinal order. Undirected graphs yield the same set either way.
// Returns nil when v is out of range. Complexity: O(n).
func (d *Dense) Neighbors(v int, dir core.Direction) []int {
	if v < 0 || v >= d.n {
		return nil
	}

	var out []int
	if d.directed && dir == core.Incoming {
		for i := 0; i < d.n; i++ {
			if d.cells[i*d.n+v] {
				out = append(out, i)
			}
		}

		return out
	}
	for i := 0; i < d.n; i++ {
		if d.cells[v*d.n+i] {
			out = append(out, i)
		}
	}

	return out
}

// AdjacencyBits snapshots the matrix into the shared O(1) adjacency
// structure consumed by the matching engine. Complexity: O(n²).
func (d *Dense) AdjacencyBits() *core.AdjacencyBits {
	return core.BuildAdjacencyBits(d.n, func(from, to int) bool {
		return d.cells[from*d.n+to]
	})
}
