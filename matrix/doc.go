// Package matrix offers a dense adjacency-matrix graph representation.
//
// Dense stores a fixed set of nodes and an n×n bit matrix, trading O(n²)
// memory for O(1) edge insertion and adjacency tests. It implements the
// iso.Graph capability interface, so dense graphs participate directly
// in isomorphism matching — including searches where the other side uses
// the adjacency-list storage from package core.
//
// Matrices are best for dense or small graphs where O(V²) memory is
// acceptable. Parallel edges cannot be represented: setting an existing
// edge again is an error.
package matrix
