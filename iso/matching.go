// The VF2 search proper: feasibility rules, the deterministic candidate
// policy, and the recursion reified as an explicit frame stack so the
// enumeration can suspend after every solution and resume later.

package iso

import "github.com/katalvlaran/isograph/core"

// openList tags which candidate-generation policy produced a pair, so
// backtracking can resume scanning the same list instead of restarting.
type openList uint8

const (
	openOut   openList = iota // terminal-out candidates
	openIn                    // terminal-in candidates
	openOther                 // any unmapped node (disconnected graphs)
)

// frameKind distinguishes the three states of the reified recursion.
type frameKind uint8

const (
	frameOuter  frameKind = iota // pick a fresh candidate pair
	frameInner                   // test a concrete pair
	frameUnwind                  // undo a pair, then try its alternatives
)

// frame is one step of the logically recursive search. A frame is popped
// exactly once and pushes at most two successor frames.
type frame struct {
	kind    frameKind
	pattern int // pattern-side ordinal (meaningful for Inner/Unwind)
	host    int // host-side ordinal
	list    openList
}

// pushState adds pattern↔host to both sides.
func pushState(st *[2]*vf2State, pattern, host int) {
	st[0].pushMapping(pattern, host)
	st[1].pushMapping(host, pattern)
}

// popState restores both sides to before the matching pushState.
func popState(st *[2]*vf2State, pattern, host int) {
	st[0].popMapping(pattern)
	st[1].popMapping(host)
}

// nextCandidate picks the next pair to try: the lowest terminal-out
// ordinal on both sides, else terminal-in on both sides, else the rest
// list. A list is used only when both sides can serve it.
func nextCandidate(st *[2]*vf2State) (pattern, host int, list openList, ok bool) {
	pattern = -1
	list = openOut

	// Try the out list.
	host = st[1].nextOutIndex(0)
	if host != -1 {
		pattern = st[0].nextOutIndex(0)
	}
	// Try the in list.
	if host == -1 || pattern == -1 {
		host = st[1].nextInIndex(0)
		if host != -1 {
			pattern = st[0].nextInIndex(0)
			list = openIn
		}
	}
	// Try the other list -- disconnected graph.
	if host == -1 || pattern == -1 {
		host = st[1].nextRestIndex(0)
		if host != -1 {
			pattern = st[0].nextRestIndex(0)
			list = openOther
		}
	}
	if pattern == -1 || host == -1 {
		return 0, 0, list, false
	}

	return pattern, host, list, true
}

// nextHostIndex finds the next host-side alternative for the same
// pattern node: the scan resumes strictly after the previously tried
// ordinal, on the same open list that produced it.
func nextHostIndex(st *[2]*vf2State, host int, list openList) (int, bool) {
	start := host + 1
	var cand int
	switch list {
	case openOut:
		cand = st[1].nextOutIndex(start)
	case openIn:
		cand = st[1].nextInIndex(start)
	default:
		cand = st[1].nextRestIndex(start)
	}
	if cand == -1 {
		return 0, false
	}

	return cand, true
}

// isFeasible applies the syntactic rules R_succ/R_pred and the optional
// semantic node/edge checks to the candidate pair (pattern, host).
//
// R_succ checks that every already-mapped outgoing neighbor of each side
// maps to an adjacent node on the other side, and that the pattern does
// not require more neighbors than the host offers (a cardinality
// pre-check, not a full degree check). R_pred mirrors it over incoming
// neighbors and only runs on directed graphs. A self-loop neighbor is
// not in the mapping yet, so the candidate's own counterpart substitutes
// for the mapped target.
func isFeasible(st *[2]*vf2State, pattern, host int, nodeMatch NodeMatcher, edgeMatch EdgeMatcher) bool {
	nodes := [2]int{pattern, host}

	// R_succ
	var succCount [2]int
	for j := 0; j < 2; j++ {
		k := 1 - j
		for _, nb := range st[j].g.Neighbors(nodes[j], core.Outgoing) {
			succCount[j]++
			// handle the self loop case; it's not in the mapping (yet)
			m := st[j].mapping[nb]
			if nb == nodes[j] {
				m = nodes[k]
			}
			if m == unmapped {
				continue
			}
			if !st[k].adj.Adjacent(nodes[k], m) {
				return false
			}
		}
	}
	if succCount[0] > succCount[1] {
		return false
	}

	// R_pred
	if st[0].g.Directed() {
		var predCount [2]int
		for j := 0; j < 2; j++ {
			k := 1 - j
			for _, nb := range st[j].g.Neighbors(nodes[j], core.Incoming) {
				predCount[j]++
				// the self loop case is handled in outgoing
				m := st[j].mapping[nb]
				if m == unmapped {
					continue
				}
				if !st[k].adj.Adjacent(m, nodes[k]) {
					return false
				}
			}
		}
		if predCount[0] > predCount[1] {
			return false
		}
	}

	// Semantic feasibility: node pair.
	if nodeMatch != nil && !nodeMatch(st[0].g, st[1].g, pattern, host) {
		return false
	}

	// Semantic feasibility: every already-mapped incident edge pair.
	if edgeMatch != nil {
		for j := 0; j < 2; j++ {
			k := 1 - j
			for _, nb := range st[j].g.Neighbors(nodes[j], core.Outgoing) {
				m := st[j].mapping[nb]
				if nb == nodes[j] {
					m = nodes[k]
				}
				if m == unmapped {
					continue
				}
				// Orient both edges pattern-side first.
				var pFrom, pTo, hFrom, hTo int
				if j == 0 {
					pFrom, pTo, hFrom, hTo = pattern, nb, host, m
				} else {
					pFrom, pTo, hFrom, hTo = pattern, m, host, nb
				}
				if !edgeMatch(st[0].g, st[1].g, pFrom, pTo, hFrom, hTo) {
					return false
				}
			}
			if st[j].g.Directed() {
				for _, nb := range st[j].g.Neighbors(nodes[j], core.Incoming) {
					// the self loop case is handled in outgoing
					m := st[j].mapping[nb]
					if m == unmapped {
						continue
					}
					var pFrom, pTo, hFrom, hTo int
					if j == 0 {
						pFrom, pTo, hFrom, hTo = nb, pattern, m, host
					} else {
						pFrom, pTo, hFrom, hTo = m, pattern, nb, host
					}
					if !edgeMatch(st[0].g, st[1].g, pFrom, pTo, hFrom, hTo) {
						return false
					}
				}
			}
		}
	}

	return true
}

// cloneMapping copies the pattern-side mapping out of the live state.
// The copy is never nil, so a zero-length mapping (empty pattern) still
// reads as a found solution.
func cloneMapping(mapping []int) []int {
	out := make([]int, len(mapping))
	copy(out, mapping)

	return out
}

// isomorphisms drives the frame stack until it yields one complete
// mapping or exhausts the search space (nil). The stack is owned by the
// caller, so a later call resumes exactly where this one suspended.
//
// The look-ahead gate on the terminal-set sizes decides whether to
// descend below a feasible pair: exact matching demands equal sizes on
// both sides, subgraph matching allows the pattern side to be smaller.
func isomorphisms(st *[2]*vf2State, nodeMatch NodeMatcher, edgeMatch EdgeMatcher, matchSubgraph bool, stack *[]frame) []int {
	if st[0].isComplete() {
		return cloneMapping(st[0].mapping)
	}

	var result []int
	for len(*stack) > 0 {
		f := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]

		switch f.kind {
		case frameUnwind:
			popState(st, f.pattern, f.host)

			nx, ok := nextHostIndex(st, f.host, f.list)
			if !ok {
				continue
			}
			*stack = append(*stack, frame{kind: frameInner, pattern: f.pattern, host: nx, list: f.list})

		case frameOuter:
			pattern, host, list, ok := nextCandidate(st)
			if !ok {
				continue
			}
			*stack = append(*stack, frame{kind: frameInner, pattern: pattern, host: host, list: list})

		case frameInner:
			if isFeasible(st, f.pattern, f.host, nodeMatch, edgeMatch) {
				pushState(st, f.pattern, f.host)
				if st[0].isComplete() {
					result = cloneMapping(st[0].mapping)
				}
				// Check cardinalities of the Tin/Tout sets before descending.
				if (!matchSubgraph && st[0].outSize == st[1].outSize && st[0].insSize == st[1].insSize) ||
					(matchSubgraph && st[0].outSize <= st[1].outSize && st[0].insSize <= st[1].insSize) {
					*stack = append(*stack, frame{kind: frameUnwind, pattern: f.pattern, host: f.host, list: f.list})
					*stack = append(*stack, frame{kind: frameOuter})
					// Skip the suspend check: the solution (if any) is
					// reported only once the stack is in a resumable shape.
					continue
				}
				popState(st, f.pattern, f.host)
			}
			nx, ok := nextHostIndex(st, f.host, f.list)
			if !ok {
				continue
			}
			*stack = append(*stack, frame{kind: frameInner, pattern: f.pattern, host: nx, list: f.list})
		}

		if result != nil {
			return result
		}
	}

	return result
}

// tryMatch runs the machine to the first success or exhaustion, without
// retaining further search state.
func tryMatch(st *[2]*vf2State, nodeMatch NodeMatcher, edgeMatch EdgeMatcher, matchSubgraph bool) bool {
	stack := []frame{{kind: frameOuter}}

	return isomorphisms(st, nodeMatch, edgeMatch, matchSubgraph, &stack) != nil
}
