// Package search implements a backtracking subgraph isomorphism engine with
// two modes, unordered and δ-ordered, sharing a common skeleton that
// threads a partial edge/node assignment through recursion, enforces
// injectivity on both nodes and edges, and stops as soon as a result cap K
// is reached.
//
// The engine is a pure function of (G, H, predicate, K[, delta]): it
// allocates no temporary graphs, performs no I/O, and does not mutate its
// inputs. Given identical inputs its output is byte-identical — matches are
// appended to the result vector in the deterministic order the backtracking
// schedule produces (fixed query-edge order, then ascending data-edge-index
// order at each step).
package search
