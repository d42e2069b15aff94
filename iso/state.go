// Per-graph VF2 search state: the partial mapping, generation-stamped
// terminal-set membership arrays, and the deterministic candidate scans.

package iso

import "github.com/katalvlaran/isograph/core"

// unmapped marks a mapping slot with no counterpart yet.
const unmapped = -1

// vf2State tracks one side's partial mapping and derived terminal sets.
//
// out[i] is non-zero iff node i is in M (mapped) or Tout (unmapped but a
// successor of a mapped node); the stored value is the generation at
// which i entered the set, which is what lets popMapping undo exactly
// the entries its matching pushMapping added. ins mirrors out for
// predecessors and stays empty on undirected graphs.
type vf2State struct {
	g Graph

	// mapping[i] is the peer ordinal matched to node i, or unmapped.
	mapping []int

	out []int // generation stamps for M ∪ Tout
	ins []int // generation stamps for M ∪ Tin (directed only)

	outSize int // |M ∪ Tout|
	insSize int // |M ∪ Tin|

	adj        *core.AdjacencyBits
	generation int
}

// newState allocates an all-unmapped state and snapshots adjacency.
func newState(g Graph) *vf2State {
	n := g.NodeCount()
	st := &vf2State{
		g:       g,
		mapping: make([]int, n),
		out:     make([]int, n),
		adj:     g.AdjacencyBits(),
	}
	if g.Directed() {
		st.ins = make([]int, n)
	}
	for i := range st.mapping {
		st.mapping[i] = unmapped
	}

	return st
}

// isComplete reports whether every node is mapped.
func (st *vf2State) isComplete() bool {
	return st.generation == len(st.mapping)
}

// pushMapping records node↔target and grows the terminal sets with the
// neighbors of node that were not members yet, stamping them with the
// new generation so popMapping can undo exactly this step.
func (st *vf2State) pushMapping(node, target int) {
	st.generation++
	st.mapping[node] = target

	for _, n := range st.g.Neighbors(node, core.Outgoing) {
		if st.out[n] == 0 {
			st.out[n] = st.generation
			st.outSize++
		}
	}
	if st.g.Directed() {
		for _, n := range st.g.Neighbors(node, core.Incoming) {
			if st.ins[n] == 0 {
				st.ins[n] = st.generation
				st.insSize++
			}
		}
	}
}

// popMapping is the exact inverse of the pushMapping that mapped node.
// Calls must come in exact reverse push order; the frame stack in
// matching.go guarantees that discipline.
func (st *vf2State) popMapping(node int) {
	st.mapping[node] = unmapped

	for _, n := range st.g.Neighbors(node, core.Outgoing) {
		if st.out[n] == st.generation {
			st.out[n] = 0
			st.outSize--
		}
	}
	if st.g.Directed() {
		for _, n := range st.g.Neighbors(node, core.Incoming) {
			if st.ins[n] == st.generation {
				st.ins[n] = 0
				st.insSize--
			}
		}
	}

	st.generation--
}

// nextOutIndex returns the least ordinal ≥ from that is in Tout and
// unmapped, or -1 when exhausted. Ascending scan order is part of the
// contract: it defines the deterministic enumeration order.
func (st *vf2State) nextOutIndex(from int) int {
	for i := from; i < len(st.out); i++ {
		if st.out[i] > 0 && st.mapping[i] == unmapped {
			return i
		}
	}

	return -1
}

// nextInIndex returns the least ordinal ≥ from that is in Tin and
// unmapped, or -1. Always -1 on undirected graphs.
func (st *vf2State) nextInIndex(from int) int {
	if !st.g.Directed() {
		return -1
	}
	for i := from; i < len(st.ins); i++ {
		if st.ins[i] > 0 && st.mapping[i] == unmapped {
			return i
		}
	}

	return -1
}

// nextRestIndex returns the least unmapped ordinal ≥ from, or -1.
// This list covers disconnected components; it is only consulted when
// both terminal lists are empty, so no terminal filter is needed.
func (st *vf2State) nextRestIndex(from int) int {
	for i := from; i < len(st.mapping); i++ {
		if st.mapping[i] == unmapped {
			return i
		}
	}

	return -1
}
