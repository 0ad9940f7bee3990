package graphmodel

// AddNode inserts a node with the given label and type, or returns the
// index of the existing node if label is already bound — label uniqueness
// is enforced this way rather than by rejecting the call, so copy-projection
// callers (filter, result) can re-add an endpoint's label for every edge
// that touches it without tracking what they've already inserted.
//
// Re-adding a label with a different, non-empty type than the node already
// holds is rejected with ErrDuplicateLabel: within one graph a label names
// exactly one node, so that combination can only indicate a bug upstream.
func (g *Graph) AddNode(label, typ string) (int, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if idx, ok := g.labelIndex[label]; ok {
		existing := g.nodes[idx]
		if typ != "" && existing.Type != "" && existing.Type != typ {
			return 0, ErrDuplicateLabel
		}
		return idx, nil
	}

	idx := len(g.nodes)
	g.nodes = append(g.nodes, Node{Index: idx, Label: label, Type: typ})
	g.labelIndex[label] = idx
	g.outEdges = append(g.outEdges, nil)
	g.inEdges = append(g.inEdges, nil)
	g.outTypeCount = append(g.outTypeCount, make(map[string]int))
	g.inTypeCount = append(g.inTypeCount, make(map[string]int))
	return idx, nil
}

// AddEdge appends an edge src->dst with the given type and timestamp,
// returning its index. Both endpoints must already exist. AddEdge does not
// reorder the edge catalog: callers building a data graph from a source
// that is not already time-ordered must call SortByTimestamp once after
// loading.
func (g *Graph) AddEdge(src, dst int, typ string, timestamp int64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if src < 0 || src >= len(g.nodes) || dst < 0 || dst >= len(g.nodes) {
		return 0, ErrNodeNotFound
	}

	idx := len(g.edges)
	e := Edge{Index: idx, Src: src, Dst: dst, Type: typ, Timestamp: timestamp}
	g.edges = append(g.edges, e)
	g.outEdges[src] = append(g.outEdges[src], idx)
	g.inEdges[dst] = append(g.inEdges[dst], idx)
	g.outTypeCount[src][typ]++
	g.inTypeCount[dst][typ]++
	return idx, nil
}

// OutDeg returns the number of outgoing edges from node idx. An empty typ
// selects all edge types; a non-empty typ restricts the count to that type.
func (g *Graph) OutDeg(idx int, typ string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.outEdges) {
		return 0
	}
	if typ == "" {
		return len(g.outEdges[idx])
	}
	return g.outTypeCount[idx][typ]
}

// InDeg returns the number of incoming edges to node idx. An empty typ
// selects all edge types; a non-empty typ restricts the count to that type.
func (g *Graph) InDeg(idx int, typ string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.inEdges) {
		return 0
	}
	if typ == "" {
		return len(g.inEdges[idx])
	}
	return g.inTypeCount[idx][typ]
}

// OutEdges returns the indices of node idx's outgoing edges, in insertion
// order.
func (g *Graph) OutEdges(idx int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.outEdges) {
		return nil
	}
	out := make([]int, len(g.outEdges[idx]))
	copy(out, g.outEdges[idx])
	return out
}

// InEdges returns the indices of node idx's incoming edges, in insertion
// order.
func (g *Graph) InEdges(idx int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.inEdges) {
		return nil
	}
	out := make([]int, len(g.inEdges[idx]))
	copy(out, g.inEdges[idx])
	return out
}

// OutTypes returns the set of distinct edge types incident to idx in the
// out direction, used by the required-subset test in match.NodeMatches.
func (g *Graph) OutTypes(idx int) map[string]struct{} {
	return g.typeSet(idx, g.outTypeCount)
}

// InTypes returns the set of distinct edge types incident to idx in the in
// direction, used by the required-subset test in match.NodeMatches.
func (g *Graph) InTypes(idx int) map[string]struct{} {
	return g.typeSet(idx, g.inTypeCount)
}

func (g *Graph) typeSet(idx int, counts []map[string]int) map[string]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]struct{})
	if idx < 0 || idx >= len(counts) {
		return out
	}
	for t, c := range counts[idx] {
		if c > 0 {
			out[t] = struct{}{}
		}
	}
	return out
}
