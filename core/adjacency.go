// This file implements AdjacencyBits, the precomputed O(1) adjacency
// query structure consumed by the matching engine in package iso.

package core

// AdjacencyBits is an n×n adjacency bitset over node ordinals.
//
// It is a frozen snapshot: built once from a graph and never mutated,
// so it may be read from any number of goroutines without locking.
// Parallel edges collapse into a single bit.
type AdjacencyBits struct {
	n     int
	words []uint64
}

// newAdjacencyBits allocates an all-zero n×n bitset.
func newAdjacencyBits(n int) *AdjacencyBits {
	return &AdjacencyBits{
		n:     n,
		words: make([]uint64, (n*n+63)/64),
	}
}

// set marks from→to as adjacent.
func (a *AdjacencyBits) set(from, to int) {
	bit := from*a.n + to
	a.words[bit/64] |= 1 << (bit % 64)
}

// Adjacent reports whether an edge from→to existed in the snapshot.
// Out-of-range ordinals report false. Complexity: O(1).
func (a *AdjacencyBits) Adjacent(from, to int) bool {
	if from < 0 || from >= a.n || to < 0 || to >= a.n {
		return false
	}
	bit := from*a.n + to

	return a.words[bit/64]&(1<<(bit%64)) != 0
}

// Order returns the node count the snapshot was built for.
func (a *AdjacencyBits) Order() int { return a.n }

// BuildAdjacencyBits constructs a snapshot for any storage type: it asks
// adjacent(from, to) for every ordered pair below n. Storage packages
// outside core use this to satisfy the iso capability interface.
// Complexity: O(n²).
func BuildAdjacencyBits(n int, adjacent func(from, to int) bool) *AdjacencyBits {
	a := newAdjacencyBits(n)
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if adjacent(from, to) {
				a.set(from, to)
			}
		}
	}

	return a
}

// AdjacencyBits builds a fresh adjacency snapshot of the graph.
// Undirected edges set both orientations. Complexity: O(V²/64 + E).
func (g *Graph) AdjacencyBits() *AdjacencyBits {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a := newAdjacencyBits(len(g.nodeWeights))
	for _, e := range g.edges {
		a.set(e.From, e.To)
		if !g.directed {
			a.set(e.To, e.From)
		}
	}

	return a
}
