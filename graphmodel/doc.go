// Package graphmodel defines the attributed, time-stamped directed
// multigraph that both the data graph and the query graph are built from.
//
// A Graph owns its Nodes and Edges, keeps a label→index lookup (labels are
// unique within a Graph), bidirectional adjacency, and a per-node,
// per-direction index of incident-edge-type→count, built once at
// construction time and kept consistent on every AddEdge so degree queries
// and type-set tests never recompute it.
//
// Graphs are mutable only through AddNode/AddEdge; once handed to filter or
// search they are treated as read-only. Data-graph callers are responsible
// for inserting edges so Edges() stays sorted non-decreasing by Timestamp —
// SortByTimestamp is provided for callers (e.g. gdfio) that cannot guarantee
// insertion order.
package graphmodel
