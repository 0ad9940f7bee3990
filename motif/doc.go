// Package motif implements the motif (query graph) regression harness:
// given a data graph, a batch of motifs, and known-answer node sets (one
// per "use case"), it filters and searches the data graph against each
// motif independently, tallies how often each node of interest appears
// across the resulting matches, and ranks each use case's best-matching
// answer node by that tally. It ports SearchCERT::motifTest and its
// Tools::count/Tools::findRanking collaborators — a feature the distilled
// specification calls out of scope for the core engine but drops entirely
// rather than delegating, so this package is this repository's own design
// for where it lives, built on the same filter/search/result primitives.
//
// Motifs are run concurrently via golang.org/x/sync/errgroup: each motif's
// filter+search is an independent read-only pass over the shared data
// graph, with no cross-motif state, matching the single-threaded-per-search
// contract search documents (one engine per motif, not parallelism inside
// one search).
package motif
