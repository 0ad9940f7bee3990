// Package tgmatch and its supporting packages implement temporal subgraph
// pattern matching over attributed, time-stamped directed graphs.
//
// A data graph (graphmodel) is a directed multigraph of typed, labeled
// nodes and typed, time-stamped edges. A motif (query) is a small directed
// graph whose nodes carry optional name/regex/degree constraints. search
// backtracks over the motif's edges to enumerate every subgraph of the
// data graph it matches, either with no ordering constraint or under a
// delta-windowed temporal order where matched edges must advance in
// non-decreasing time within a bounded window.
//
// Supporting packages: match (the pluggable node/edge feasibility rule
// set), filter (cheap pre-passes that shrink the data graph before
// search), result (match aggregation), timeslice (per-window match
// tallies), motif (batch motif regression and answer-node ranking),
// gdfio (the GDF text wire format data and motifs are read from and
// written to), and synthetic (deterministic fixture generation for
// benchmarks and examples). cmd/tgmatch wires all of the above into a
// command-line tool.
//
// Under the hood, everything is organized one concern per package:
//
//	graphmodel/ — the data graph: nodes, edges, adjacency, timestamp sort
//	query/      — the motif graph: node constraints layered over graphmodel
//	match/      — Predicate interface and the built-in CERT rule set
//	filter/     — predicate- and window-driven copy-projection of a graph
//	search/     — the backtracking subgraph isomorphism engine
//	result/     — Match values and their union/aggregate combinators
//	timeslice/  — equal-width temporal bucketing of match counts
//	motif/      — concurrent batch motif testing and answer-node ranking
//	gdfio/      — GDF read/write for data graphs and motifs
//	synthetic/  — deterministic synthetic graph generators
//	cmd/tgmatch/ — the cobra CLI driving search and motif from the shell
package tgmatch
