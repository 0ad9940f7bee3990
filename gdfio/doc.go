// Package gdfio reads and writes the GDF (Gephi-style node/edge table)
// activity-log format the original CERT tooling used for both data graphs
// and motif (query graph) files. A GDF file is two CSV-like sections, each
// introduced by a header line naming its columns:
//
//	nodedef>name VARCHAR,label VARCHAR,type VARCHAR
//	alice,alice,USER
//	host07,host07,PC
//	edgedef>node1 VARCHAR,node2 VARCHAR,type VARCHAR,timestamp INTEGER
//	alice,host07,LOGIN,1000
//
// Each data row after a section header is parsed as one CSV record (commas
// separate fields; a field may be double-quoted to contain a literal comma).
// A node's name is its graphmodel label; the label column is accepted for
// source-format compatibility but otherwise unused since graphmodel keys
// nodes by label already.
//
// Query (motif) files accept two extra, optional nodedef columns —
// `namematch BOOLEAN` and `regex VARCHAR` — consumed by ReadQuery to set
// query.Graph's per-node NeedsNameMatch/Regex constraints. Degree
// restrictions have no GDF column of their own; a caller building a motif
// with degree restrictions attaches them in Go after ReadQuery returns.
package gdfio
