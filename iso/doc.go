// Package iso decides graph isomorphism and subgraph isomorphism using
// the VF2 backtracking algorithm, and lazily enumerates every matching.
//
// Key features:
//   - IsIsomorphic / IsIsomorphicMatching: exact isomorphism, structural
//     only or with caller-supplied node/edge equality.
//   - IsIsomorphicSubgraph / IsIsomorphicSubgraphMatching: does the
//     pattern embed injectively into a node-induced subgraph of the host?
//   - SubgraphIsomorphisms: a pull-based Matcher enumerating every
//     mapping one Next() call at a time; the recursion is reified as an
//     explicit frame stack, so the search suspends after each solution
//     and resumes exactly where it left off.
//
// Any storage type implementing the Graph capability interface can be
// matched: *core.Graph and *matrix.Dense both qualify, and the two sides
// of one search may use different representations.
//
// Mappings are reported as []int of length pattern.NodeCount(), where
// entry i is the host ordinal matched to pattern ordinal i. A mapping is
// always injective; every pattern edge (u,v) maps to a host edge
// (m[u],m[v]).
//
// Candidate ordering is deterministic: both sides prefer the lowest
// available terminal-out node, then terminal-in, then any unmapped node
// (covering disconnected components), and backtracking resumes the host
// scan strictly after the last tried ordinal. A cardinality look-ahead on
// the terminal sets prunes the search; worst-case running time remains
// exponential.
//
// Limitations: graphs with parallel edges between the same endpoints are
// not supported — results on multigraphs may be wrong, silently. The
// search itself is single-threaded; independent Matcher instances may run
// on separate goroutines as long as the underlying graphs are not mutated.
//
// Reference:
//
//   - Luigi P. Cordella, Pasquale Foggia, Carlo Sansone, Mario Vento;
//     "A (Sub)Graph Isomorphism Algorithm for Matching Large Graphs"
package iso
