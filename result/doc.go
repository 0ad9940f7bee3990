// Package result defines the match value type and the two aggregation
// operations over a collection of matches: a directed union subgraph with
// per-edge match counts, and an undirected fusion of that union where
// parallel edges of the same type in opposite directions are merged with
// summed counts.
//
// Matches and the graphs these operations produce are plain value objects:
// nothing here mutates the graphmodel.Graph a Match's edges were drawn
// from.
package result
