package query

import (
	"regexp"
	"sync"

	"github.com/katalvlaran/tgmatch/graphmodel"
)

// Direction selects which incidence direction a DegreeRestriction counts.
type Direction int

const (
	// Out restricts on outgoing edge degree.
	Out Direction = iota
	// In restricts on incoming edge degree.
	In
)

// Comparator selects how a DegreeRestriction's threshold is applied.
type Comparator int

const (
	// LessThan requires the observed degree to be strictly less than the
	// threshold.
	LessThan Comparator = iota
	// GreaterThan requires the observed degree to be strictly greater than
	// the threshold.
	GreaterThan
)

// DegreeRestriction is a half-open bound on how many incident edges of
// EdgeType a candidate node has in the given Direction. An empty EdgeType
// selects all edge types.
type DegreeRestriction struct {
	Direction Direction
	EdgeType  string
	Cmp       Comparator
	Threshold int
}

// Graph is a motif (query graph): a graphmodel.Graph plus, per node, the
// optional constraints attached to matching. The embedded
// *graphmodel.Graph supplies node/edge storage, adjacency, and the node's
// own incident edge-type sets (used directly as the required-subset test —
// no separate storage is needed for that).
type Graph struct {
	*graphmodel.Graph

	mu                 sync.RWMutex
	needsNameMatch     []bool
	regex              []*regexp.Regexp
	degreeRestrictions [][]DegreeRestriction
}

// New constructs an empty query graph.
func New() *Graph {
	return &Graph{Graph: graphmodel.New()}
}

// AddNode inserts a node the same way graphmodel.Graph.AddNode does, and
// grows the per-node constraint slices to match.
func (q *Graph) AddNode(label, typ string) (int, error) {
	idx, err := q.Graph.AddNode(label, typ)
	if err != nil {
		return 0, err
	}
	q.growTo(idx + 1)
	return idx, nil
}

func (q *Graph) growTo(n int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.needsNameMatch) < n {
		q.needsNameMatch = append(q.needsNameMatch, false)
		q.regex = append(q.regex, nil)
		q.degreeRestrictions = append(q.degreeRestrictions, nil)
	}
}

func (q *Graph) inRange(idx int) bool {
	return idx >= 0 && idx < len(q.needsNameMatch)
}

// SetNeedsNameMatch marks idx as requiring an exact label match against the
// candidate data-graph node.
func (q *Graph) SetNeedsNameMatch(idx int, needs bool) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.inRange(idx) {
		return ErrNodeNotFound
	}
	q.needsNameMatch[idx] = needs
	return nil
}

// NeedsNameMatch reports whether idx requires an exact label match.
func (q *Graph) NeedsNameMatch(idx int) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if !q.inRange(idx) {
		return false
	}
	return q.needsNameMatch[idx]
}

// SetRegex attaches a label regex to idx; a nil regex clears it.
func (q *Graph) SetRegex(idx int, re *regexp.Regexp) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.inRange(idx) {
		return ErrNodeNotFound
	}
	q.regex[idx] = re
	return nil
}

// Regex returns the label regex attached to idx, or nil if none.
func (q *Graph) Regex(idx int) *regexp.Regexp {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if !q.inRange(idx) {
		return nil
	}
	return q.regex[idx]
}

// AddDegreeRestriction attaches dr to node idx. Threshold must be >= 0.
func (q *Graph) AddDegreeRestriction(idx int, dr DegreeRestriction) error {
	if dr.Threshold < 0 {
		return ErrBadThreshold
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.inRange(idx) {
		return ErrNodeNotFound
	}
	q.degreeRestrictions[idx] = append(q.degreeRestrictions[idx], dr)
	return nil
}

// DegreeRestrictions returns a copy of the degree restrictions attached to
// idx.
func (q *Graph) DegreeRestrictions(idx int) []DegreeRestriction {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if !q.inRange(idx) {
		return nil
	}
	out := make([]DegreeRestriction, len(q.degreeRestrictions[idx]))
	copy(out, q.degreeRestrictions[idx])
	return out
}

// Validate checks the query graph against the edge-type universe actually
// present in data — a query edge type or degree-restriction edge type that
// never occurs there almost always indicates a typo in the motif
// definition. It is not required before Filter or search: they treat an
// unknown type the same as any other type that simply never matches (zero
// results, not an error). Validate exists for callers (the CLI, tests)
// that want that typo caught up front instead of silently returning no
// matches.
func (q *Graph) Validate(data *graphmodel.Graph) error {
	universe := make(map[string]struct{})
	for _, e := range data.Edges() {
		universe[e.Type] = struct{}{}
	}

	for _, e := range q.Edges() {
		if e.Type == "" {
			continue
		}
		if _, ok := universe[e.Type]; !ok {
			return ErrUnknownEdgeType
		}
	}
	for _, n := range q.Nodes() {
		for _, dr := range q.DegreeRestrictions(n.Index) {
			if dr.EdgeType == "" {
				continue
			}
			if _, ok := universe[dr.EdgeType]; !ok {
				return ErrUnknownEdgeType
			}
		}
	}
	return nil
}
