// Package synthetic builds deterministic, timestamped graphmodel.Graph
// fixtures for benchmarking and stress-testing the search and motif
// engines at scale, the way a hand-authored GDF file cannot: a Path,
// Cycle, Star, or Grid of arbitrary size with a single function call.
//
// The shape of this package — a Constructor closure type, a functional
// Option config resolved once per call, and one BuildGraph
// orchestrator that applies constructors in order — is carried over from
// the topology-generator package this module used to ship; only the
// target type changed, from an untyped weighted core.Graph to the
// typed, timestamped graphmodel.Graph this repository matches against.
package synthetic
