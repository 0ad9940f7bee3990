package filter

import (
	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/match"
	"github.com/katalvlaran/tgmatch/query"
)

// Filter returns a new graph containing every edge of g that could
// possibly participate in a match of h: an edge e is retained if there
// exists some query edge eH such that predicate.EdgeMatches(g, e, h, eH)
// holds. g is never mutated; the result preserves g's WindowDuration
// metadata and the relative timestamp order of retained edges.
func Filter(g *graphmodel.Graph, h *query.Graph, predicate match.Predicate) *graphmodel.Graph {
	hEdges := h.Edges()

	keep := func(e graphmodel.Edge) bool {
		for _, hEdge := range hEdges {
			if predicate.EdgeMatches(g, e.Index, h, hEdge.Index) {
				return true
			}
		}
		return false
	}

	return project(g, keep)
}

// FilterWindow returns a new graph containing every edge of g whose
// timestamp lies in [t0, t1). g is never mutated; the result preserves g's
// WindowDuration metadata.
func FilterWindow(g *graphmodel.Graph, t0, t1 int64) *graphmodel.Graph {
	keep := func(e graphmodel.Edge) bool {
		return e.Timestamp >= t0 && e.Timestamp < t1
	}
	return project(g, keep)
}

// project builds a fresh graph containing only the edges of g for which
// keep returns true (and their endpoints), preserving the relative order
// of g.Edges() — which is what keeps the result sorted by timestamp
// whenever g itself was.
func project(g *graphmodel.Graph, keep func(graphmodel.Edge) bool) *graphmodel.Graph {
	out := graphmodel.New()
	if d, ok := g.WindowDuration(); ok {
		out.SetWindowDuration(d)
	}

	for _, e := range g.Edges() {
		if !keep(e) {
			continue
		}
		srcNode, _ := g.Node(e.Src)
		dstNode, _ := g.Node(e.Dst)
		srcIdx, _ := out.AddNode(srcNode.Label, srcNode.Type)
		dstIdx, _ := out.AddNode(dstNode.Label, dstNode.Type)
		out.AddEdge(srcIdx, dstIdx, e.Type, e.Timestamp)
	}
	return out
}
