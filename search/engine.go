package search

import (
	"context"
	"math"
	"sort"

	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/match"
	"github.com/katalvlaran/tgmatch/query"
	"github.com/katalvlaran/tgmatch/result"
)

// pendingAssignment is one tentative query-node -> data-node binding
// produced while checking a candidate edge, not yet committed to the
// engine's assignment tables.
type pendingAssignment struct {
	v, u int
}

// engine holds the mutable state of one backtracking run. It is built once
// per FindAllSubgraphs/FindOrderedSubgraphs call and discarded afterward;
// nothing here is safe for concurrent use. A caller wanting parallel motifs
// runs independent engines, one per motif — see the motif package's
// errgroup driver.
type engine struct {
	g         *graphmodel.Graph
	h         *query.Graph
	predicate match.Predicate
	limit     int
	ordered   bool
	delta     int64
	ctx       context.Context

	dataEdges  []graphmodel.Edge
	queryEdges []graphmodel.Edge

	nodeAssignment []int  // query node idx -> data node idx, or -1
	usedDataNodes  []bool // data node idx -> currently bound
	usedDataEdges  []bool // data edge idx -> currently bound
	edgeAssignment []int  // query edge position -> data edge idx

	results   []result.Match
	cancelled error
}

func newEngine(g *graphmodel.Graph, h *query.Graph, predicate match.Predicate, limit int, ordered bool, delta int64, ctx context.Context) (*engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilQuery
	}
	if predicate == nil {
		return nil, ErrNilPredicate
	}
	if limit < 1 {
		return nil, ErrBadLimit
	}
	if ordered && delta < 0 {
		return nil, ErrBadDelta
	}

	nodeAssignment := make([]int, h.NodeCount())
	for i := range nodeAssignment {
		nodeAssignment[i] = -1
	}
	dataEdges := g.Edges()

	return &engine{
		g:              g,
		h:              h,
		predicate:      predicate,
		limit:          limit,
		ordered:        ordered,
		delta:          delta,
		ctx:            ctx,
		dataEdges:      dataEdges,
		queryEdges:     h.Edges(),
		nodeAssignment: nodeAssignment,
		usedDataNodes:  make([]bool, g.NodeCount()),
		usedDataEdges:  make([]bool, len(dataEdges)),
		results:        make([]result.Match, 0, limit),
	}, nil
}

// run drives the search to completion (or to the result cap, or to context
// cancellation) and returns the accumulated matches.
func (e *engine) run() ([]result.Match, error) {
	if len(e.queryEdges) == 0 {
		return e.results, nil
	}
	e.edgeAssignment = make([]int, len(e.queryEdges))
	e.backtrack(0)
	return e.results, e.cancelled
}

// backtrack assigns data edges to query edges in fixed query-edge order
// (index 0, 1, 2, ...), scanning data-edge candidates in ascending index
// order at each step. It returns false once the caller should stop trying
// further candidates at any level above it, either because the result cap
// was reached or the search was cancelled.
func (e *engine) backtrack(i int) bool {
	if i == len(e.queryEdges) {
		e.recordMatch()
		return len(e.results) < e.limit
	}
	qe := e.queryEdges[i]

	start, end := 0, len(e.dataEdges)
	var tMin int64
	var hasAssigned bool
	if e.ordered {
		var tPrev int64
		tPrev, tMin, hasAssigned = e.timestampBounds(i)
		start = sort.Search(len(e.dataEdges), func(k int) bool {
			return e.dataEdges[k].Timestamp >= tPrev
		})
	}

	for k := start; k < end; k++ {
		if e.checkCancel() {
			return false
		}
		de := e.dataEdges[k]
		if e.ordered && hasAssigned && de.Timestamp > tMin+e.delta {
			break // data edges are timestamp-sorted: nothing further qualifies
		}
		if e.usedDataEdges[k] {
			continue
		}
		if !e.predicate.EdgeMatches(e.g, de.Index, e.h, qe.Index) {
			continue
		}
		ok, pending := e.tryAssign(qe.Src, de.Src, qe.Dst, de.Dst)
		if !ok {
			continue
		}

		e.usedDataEdges[k] = true
		e.edgeAssignment[i] = k
		for _, p := range pending {
			e.nodeAssignment[p.v] = p.u
			e.usedDataNodes[p.u] = true
		}

		cont := e.backtrack(i + 1)

		for _, p := range pending {
			e.nodeAssignment[p.v] = -1
			e.usedDataNodes[p.u] = false
		}
		e.usedDataEdges[k] = false

		if len(e.results) >= e.limit || !cont {
			return false
		}
	}
	return true
}

// tryAssign checks whether query nodes (vSrc, vDst) can be bound to data
// nodes (uSrc, uDst) without violating injectivity, and if so returns the
// bindings that are newly introduced (not yet committed by the caller).
// Endpoints are checked in order (src then dst) against both the engine's
// already-committed assignment and the bindings tryAssign itself is about
// to introduce, so a query self-loop (vSrc == vDst) correctly requires
// uSrc == uDst, and two distinct query nodes can never be bound to the
// same data node within one candidate edge.
func (e *engine) tryAssign(vSrc, uSrc, vDst, uDst int) (bool, []pendingAssignment) {
	pending := make([]pendingAssignment, 0, 2)

	lookup := func(v int) (int, bool) {
		for _, p := range pending {
			if p.v == v {
				return p.u, true
			}
		}
		if e.nodeAssignment[v] != -1 {
			return e.nodeAssignment[v], true
		}
		return -1, false
	}
	taken := func(u int) bool {
		if e.usedDataNodes[u] {
			return true
		}
		for _, p := range pending {
			if p.u == u {
				return true
			}
		}
		return false
	}
	bind := func(v, u int) bool {
		if existing, has := lookup(v); has {
			return existing == u
		}
		if taken(u) {
			return false
		}
		pending = append(pending, pendingAssignment{v: v, u: u})
		return true
	}

	if !bind(vSrc, uSrc) {
		return false, nil
	}
	if !bind(vDst, uDst) {
		return false, nil
	}
	return true, pending
}

// timestampBounds computes the ordered-mode window anchors for the
// candidate scan at query-edge position i: tPrev is the timestamp of the
// edge most recently assigned (position i-1), tMin is the minimum
// timestamp across all edges assigned so far (positions 0..i-1). hasAssigned
// is false only for i == 0, when there is no window to enforce yet.
func (e *engine) timestampBounds(i int) (tPrev, tMin int64, hasAssigned bool) {
	if i == 0 {
		return math.MinInt64, 0, false
	}
	tPrev = e.dataEdges[e.edgeAssignment[i-1]].Timestamp
	tMin = e.dataEdges[e.edgeAssignment[0]].Timestamp
	for k := 1; k < i; k++ {
		ts := e.dataEdges[e.edgeAssignment[k]].Timestamp
		if ts < tMin {
			tMin = ts
		}
	}
	return tPrev, tMin, true
}

func (e *engine) recordMatch() {
	edges := make([]int, len(e.edgeAssignment))
	copy(edges, e.edgeAssignment)
	e.results = append(e.results, result.New(e.g, edges))
}

func (e *engine) checkCancel() bool {
	if e.cancelled != nil {
		return true
	}
	select {
	case <-e.ctx.Done():
		e.cancelled = e.ctx.Err()
		return true
	default:
		return false
	}
}
