package motif

import "github.com/katalvlaran/tgmatch/query"

// Motif is one named query graph to test against the data graph.
type Motif struct {
	Name  string
	Query *query.Graph
}

// Options controls how each motif's search is run, and which node types
// are tallied and ranked over — the caller names whatever types its data
// graph uses.
type Options struct {
	Ordered     bool
	Limit       int
	Delta       int64
	RankedTypes []string
}

// Report is one motif's test result: how many subgraphs matched, how many
// distinct nodes of each ranked type were found, and where each answer
// set's best-matching node ranked in those tallies.
type Report struct {
	Motif         string
	DeltaHours    int
	Start, End    int64
	SubgraphCount int
	TypeCounts    map[string]int // ranked type -> distinct node count
	Rankings      []int          // one per answer set; 0 means no match found
}
