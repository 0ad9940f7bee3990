package search

import (
	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/match"
	"github.com/katalvlaran/tgmatch/query"
	"github.com/katalvlaran/tgmatch/result"
)

// FindAllSubgraphs enumerates up to limit subgraph matches of query graph h
// within data graph g, with no constraint on the relative order of the data
// edges chosen for each query edge. Matches are returned in the
// deterministic order the backtracking schedule produces: query edges are
// assigned in their own index order, and at each step data-edge candidates
// are tried in ascending data-edge-index order.
//
// predicate supplies node/edge feasibility; pass match.CERT{} for the
// built-in rule set. limit must be >= 1.
func FindAllSubgraphs(g *graphmodel.Graph, h *query.Graph, predicate match.Predicate, limit int, opts ...Option) ([]result.Match, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	e, err := newEngine(g, h, predicate, limit, false, 0, o.ctx)
	if err != nil {
		return nil, err
	}
	return e.run()
}

// FindOrderedSubgraphs enumerates up to limit subgraph matches of query
// graph h within data graph g under a δ-windowed temporal ordering:
// consecutive query edges (in query-edge index order) must be assigned
// data edges with non-decreasing timestamps, and every assigned edge's
// timestamp must fall within delta of the minimum timestamp assigned so
// far. delta must be >= 0; a delta of 0 requires every matched edge to
// share the same timestamp as the first.
func FindOrderedSubgraphs(g *graphmodel.Graph, h *query.Graph, predicate match.Predicate, limit int, delta int64, opts ...Option) ([]result.Match, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	e, err := newEngine(g, h, predicate, limit, true, delta, o.ctx)
	if err != nil {
		return nil, err
	}
	return e.run()
}
