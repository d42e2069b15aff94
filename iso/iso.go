// Public entry points: boolean isomorphism checks and the lazy
// subgraph-isomorphism enumerator. Each wrapper applies the cheap
// necessary conditions (node/edge counts, directedness agreement) before
// starting the exponential search.

package iso

// IsIsomorphic reports whether g0 and g1 are isomorphic, matching graph
// structure only.
//
// The graphs should not be multigraphs.
func IsIsomorphic(g0, g1 Graph) bool {
	if g0.Directed() != g1.Directed() {
		return false
	}
	if g0.NodeCount() != g1.NodeCount() || g0.EdgeCount() != g1.EdgeCount() {
		return false
	}

	st := [2]*vf2State{newState(g0), newState(g1)}

	return tryMatch(&st, nil, nil, false)
}

// IsIsomorphicMatching reports whether g0 and g1 are isomorphic,
// examining both structure and the caller-supplied node and edge
// equality. A nil matcher is disabled (always true).
//
// The graphs should not be multigraphs.
func IsIsomorphicMatching(g0, g1 Graph, nodeMatch NodeMatcher, edgeMatch EdgeMatcher) bool {
	if g0.Directed() != g1.Directed() {
		return false
	}
	if g0.NodeCount() != g1.NodeCount() || g0.EdgeCount() != g1.EdgeCount() {
		return false
	}

	st := [2]*vf2State{newState(g0), newState(g1)}

	return tryMatch(&st, nodeMatch, edgeMatch, false)
}

// IsIsomorphicSubgraph reports whether g0 is isomorphic to a subgraph of
// g1, matching graph structure only.
//
// "Subgraph" here always means a node-induced subgraph: every host edge
// between mapped nodes must have a pattern counterpart too. For
// embeddings that ignore extra host edges, the usual term is
// monomorphism, which this package does not implement.
//
// The graphs should not be multigraphs.
func IsIsomorphicSubgraph(g0, g1 Graph) bool {
	if g0.Directed() != g1.Directed() {
		return false
	}
	if g0.NodeCount() > g1.NodeCount() || g0.EdgeCount() > g1.EdgeCount() {
		return false
	}

	st := [2]*vf2State{newState(g0), newState(g1)}

	return tryMatch(&st, nil, nil, true)
}

// IsIsomorphicSubgraphMatching reports whether g0 is isomorphic to a
// subgraph of g1, examining both structure and the caller-supplied node
// and edge equality. A nil matcher is disabled (always true).
//
// The graphs should not be multigraphs.
func IsIsomorphicSubgraphMatching(g0, g1 Graph, nodeMatch NodeMatcher, edgeMatch EdgeMatcher) bool {
	if g0.Directed() != g1.Directed() {
		return false
	}
	if g0.NodeCount() > g1.NodeCount() || g0.EdgeCount() > g1.EdgeCount() {
		return false
	}

	st := [2]*vf2State{newState(g0), newState(g1)}

	return tryMatch(&st, nodeMatch, edgeMatch, true)
}

// SubgraphIsomorphisms returns a lazy enumerator over every mapping of
// pattern g0 into a node-induced subgraph of host g1, or nil when a
// cheap necessary condition already rules every mapping out (pattern
// larger than host, more pattern edges than host edges, or directedness
// mismatch). Nil matchers are disabled (always true).
//
// The graphs should not be multigraphs.
func SubgraphIsomorphisms(g0, g1 Graph, nodeMatch NodeMatcher, edgeMatch EdgeMatcher) *Matcher {
	if g0.Directed() != g1.Directed() {
		return nil
	}
	if g0.NodeCount() > g1.NodeCount() || g0.EdgeCount() > g1.EdgeCount() {
		return nil
	}

	return newMatcher(g0, g1, nodeMatch, edgeMatch, true)
}
