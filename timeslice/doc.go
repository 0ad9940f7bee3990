// Package timeslice bins a data graph's time range into equal slices and,
// for each slice, runs a subgraph search restricted to that window,
// tallying how many matching subgraphs each node appeared on. It ports
// SearchCERT::calcTemporalCounts/calcTemporalSlice, a feature the
// distilled specification drops as out of scope for the core engine but
// that a complete repository still needs a home for (the `cmd/tgmatch
// search` subcommand's optional node-count report).
package timeslice
