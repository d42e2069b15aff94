// Matcher is the public pull-based enumerator over all (sub)graph
// isomorphisms between a fixed pattern/host pair.

package iso

// Matcher lazily enumerates mappings from a pattern graph into a host
// graph. It owns its match states and frame stack, so independent
// Matcher instances may run on separate goroutines provided the
// underlying graphs are only read.
//
// A Matcher is obtained from SubgraphIsomorphisms. There is no teardown:
// to cancel a search, stop calling Next and discard the Matcher.
type Matcher struct {
	st            [2]*vf2State
	nodeMatch     NodeMatcher
	edgeMatch     EdgeMatcher
	matchSubgraph bool
	stack         []frame
	exhausted     bool
}

// newMatcher builds a Matcher with the initial [Outer] stack.
func newMatcher(pattern, host Graph, nodeMatch NodeMatcher, edgeMatch EdgeMatcher, matchSubgraph bool) *Matcher {
	return &Matcher{
		st:            [2]*vf2State{newState(pattern), newState(host)},
		nodeMatch:     nodeMatch,
		edgeMatch:     edgeMatch,
		matchSubgraph: matchSubgraph,
		stack:         []frame{{kind: frameOuter}},
	}
}

// Next resumes the search and returns the next mapping, or ok=false when
// the search space is exhausted. Exhaustion is sticky: once Next has
// returned false it always will.
//
// The mapping is a fresh copy of length pattern.NodeCount(); entry i is
// the host ordinal matched to pattern ordinal i.
func (m *Matcher) Next() ([]int, bool) {
	if m.exhausted {
		return nil, false
	}
	mapping := isomorphisms(&m.st, m.nodeMatch, m.edgeMatch, m.matchSubgraph, &m.stack)
	if mapping == nil {
		m.exhausted = true

		return nil, false
	}

	return mapping, true
}

// All drains the enumerator and returns every remaining mapping.
// Beware: the number of mappings can be factorial in the pattern size.
func (m *Matcher) All() [][]int {
	var out [][]int
	for mapping, ok := m.Next(); ok; mapping, ok = m.Next() {
		out = append(out, mapping)
	}

	return out
}

// factorials holds n! for every n whose factorial fits in uint64.
var factorials = [...]uint64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880,
	3628800, 39916800, 479001600, 6227020800, 87178291200,
	1307674368000, 20922789888000, 355687428096000,
	6402373705728000, 121645100408832000, 2432902008176640000,
}

// SizeHint bounds the number of mappings Next may still produce. The
// lower bound is always 0. The upper bound is exactly n! for a pattern
// of n ≤ 20 nodes; above that the count is unbounded (bounded=false)
// because n! no longer fits a 64-bit integer. Advisory only.
func (m *Matcher) SizeHint() (lower, upper uint64, bounded bool) {
	n := m.st[0].g.NodeCount()
	if n >= len(factorials) {
		return 0, 0, false
	}

	return 0, factorials[n], true
}
