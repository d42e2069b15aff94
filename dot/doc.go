// Package dot serializes core graphs to the Graphviz DOT language.
//
// The output is plain DOT text suitable for piping into dot(1) or any
// Graphviz-compatible renderer; no rendering happens here. Nodes are
// emitted in ordinal order and edges in catalog order, so the output is
// deterministic for a given graph.
package dot
