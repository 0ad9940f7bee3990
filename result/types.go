package result

import (
	"sort"

	"github.com/katalvlaran/tgmatch/graphmodel"
)

// Match is one subgraph match: an ordered list of data-graph edge indices,
// one per query edge, in the order the query edges were consumed by the
// search. The induced node set is derived from the edges at construction
// time.
type Match struct {
	edges []int
	nodes map[int]struct{}
}

// New builds a Match from the ordered list of data-graph edge indices
// assigned during a search, deriving the induced node set from g.
func New(g *graphmodel.Graph, edges []int) Match {
	edgesCopy := make([]int, len(edges))
	copy(edgesCopy, edges)

	nodes := make(map[int]struct{}, 2*len(edges))
	for _, ei := range edgesCopy {
		if e, ok := g.Edge(ei); ok {
			nodes[e.Src] = struct{}{}
			nodes[e.Dst] = struct{}{}
		}
	}
	return Match{edges: edgesCopy, nodes: nodes}
}

// Edges returns a copy of the ordered data-graph edge indices.
func (m Match) Edges() []int {
	out := make([]int, len(m.edges))
	copy(out, m.edges)
	return out
}

// HasNode reports whether node index idx is part of this match's induced
// node set.
func (m Match) HasNode(idx int) bool {
	_, ok := m.nodes[idx]
	return ok
}

// Nodes returns the induced node set as a slice, in ascending index order.
func (m Match) Nodes() []int {
	out := make([]int, 0, len(m.nodes))
	for idx := range m.nodes {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
