package match

import (
	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/query"
)

// Predicate decides whether a data-graph element can play the role of a
// query-graph element. Implementations must be pure and side-effect free;
// filter calls NodeMatches/EdgeMatches for coarse per-element feasibility,
// search calls them for pairwise assignment feasibility during backtracking.
type Predicate interface {
	NodeMatches(g *graphmodel.Graph, u int, h *query.Graph, v int) bool
	EdgeMatches(g *graphmodel.Graph, eG int, h *query.Graph, eH int) bool
}

// CERT is the concrete match predicate built from NodeMatches/EdgeMatches.
type CERT struct{}

// NodeMatches implements Predicate.
func (CERT) NodeMatches(g *graphmodel.Graph, u int, h *query.Graph, v int) bool {
	return NodeMatches(g, u, h, v)
}

// EdgeMatches implements Predicate.
func (CERT) EdgeMatches(g *graphmodel.Graph, eG int, h *query.Graph, eH int) bool {
	return EdgeMatches(g, eG, h, eH)
}

// NodeMatches reports whether data-graph node u can play the role of query
// node v. Tests run in order and fail fast:
//
//  1. needs-name-match: exact label equality.
//  2. non-empty query node type: exact type equality.
//  3. every degree restriction on v.
//  4. a label regex, if present (search semantics: matches anywhere in the
//     label, not just a full match).
//  5. every non-empty type in v's own out/in incident-type sets must be
//     present in u's corresponding set (required-subset test).
func NodeMatches(g *graphmodel.Graph, u int, h *query.Graph, v int) bool {
	if h.NeedsNameMatch(v) {
		if g.Label(u) != h.Label(v) {
			return false
		}
	}

	if hType := h.Type(v); hType != "" {
		if g.Type(u) != hType {
			return false
		}
	}

	for _, dr := range h.DegreeRestrictions(v) {
		var deg int
		if dr.Direction == query.Out {
			deg = g.OutDeg(u, dr.EdgeType)
		} else {
			deg = g.InDeg(u, dr.EdgeType)
		}
		if dr.Cmp == query.LessThan {
			if deg >= dr.Threshold {
				return false
			}
		} else {
			if deg <= dr.Threshold {
				return false
			}
		}
	}

	if re := h.Regex(v); re != nil {
		if !re.MatchString(g.Label(u)) {
			return false
		}
	}

	gOutTypes := g.OutTypes(u)
	for t := range h.OutTypes(v) {
		if t == "" {
			continue
		}
		if _, ok := gOutTypes[t]; !ok {
			return false
		}
	}
	gInTypes := g.InTypes(u)
	for t := range h.InTypes(v) {
		if t == "" {
			continue
		}
		if _, ok := gInTypes[t]; !ok {
			return false
		}
	}

	return true
}

// EdgeMatches reports whether data-graph edge eG can play the role of
// query edge eH: its type matches (if the query edge's type is non-empty)
// and both endpoints satisfy NodeMatches in their respective roles.
//
// EdgeMatches is deliberately local: it does not check timestamp ordering
// between edges — that is search's concern in ordered mode.
func EdgeMatches(g *graphmodel.Graph, eG int, h *query.Graph, eH int) bool {
	hEdge, ok := h.Edge(eH)
	if !ok {
		return false
	}
	gEdge, ok := g.Edge(eG)
	if !ok {
		return false
	}

	if hEdge.Type != "" && gEdge.Type != hEdge.Type {
		return false
	}

	if !NodeMatches(g, gEdge.Src, h, hEdge.Src) {
		return false
	}
	if !NodeMatches(g, gEdge.Dst, h, hEdge.Dst) {
		return false
	}
	return true
}
