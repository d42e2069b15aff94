// Package builder provides deterministic constructors for standard
// graph families on top of core.Graph.
//
// Every constructor adds nodes in ascending ordinal order and emits
// edges in a stable, documented order, so the produced graphs are
// reproducible and safe to assert against in tests.
//
// Constructors:
//
//   - Path(n):     0—1—…—(n-1), n ≥ 1.
//   - Cycle(n):    i—(i+1) mod n, n ≥ 3.
//   - Complete(n): every unordered pair once, n ≥ 1.
//   - Star(n):     center 0 joined to 1..n-1, n ≥ 2.
//   - Petersen():  the 10-node, 15-edge Petersen graph GP(5,2).
//
// Options WithDirected and WithWeighted configure the underlying graph;
// directed constructors orient edges from the lower emission endpoint.
//
// Errors:
//
//   - ErrTooFewNodes — the requested size is below the family's minimum.
package builder
