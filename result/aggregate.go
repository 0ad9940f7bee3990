package result

import (
	"sort"

	"github.com/katalvlaran/tgmatch/graphmodel"
)

// UnionSubgraph builds the graph whose edge set is the union of every
// match's edges (deduplicated) and whose node set is the induced set,
// together with a Counts vector aligned with the result graph's edge
// order recording how many matches each edge appeared in.
//
// Directionality is preserved: edges keep their original g orientation.
func UnionSubgraph(g *graphmodel.Graph, matches []Match) (*graphmodel.Graph, []int) {
	counts := make(map[int]int)
	for _, m := range matches {
		for _, ei := range m.Edges() {
			counts[ei]++
		}
	}

	ordered := make([]int, 0, len(counts))
	for ei := range counts {
		ordered = append(ordered, ei)
	}
	sort.Ints(ordered)

	out := graphmodel.New()
	outCounts := make([]int, 0, len(ordered))
	for _, ei := range ordered {
		e, ok := g.Edge(ei)
		if !ok {
			continue
		}
		srcNode, _ := g.Node(e.Src)
		dstNode, _ := g.Node(e.Dst)
		srcIdx, _ := out.AddNode(srcNode.Label, srcNode.Type)
		dstIdx, _ := out.AddNode(dstNode.Label, dstNode.Type)
		out.AddEdge(srcIdx, dstIdx, e.Type, e.Timestamp)
		outCounts = append(outCounts, counts[ei])
	}
	return out, outCounts
}

// aggKey canonicalizes an edge for the undirected fusion in
// AggregateSubgraph: two edges (u,v,τ) and (v,u,τ) share a key regardless
// of which endpoint is "first" in the underlying data graph.
type aggKey struct {
	a, b int
	typ  string
}

func newAggKey(u, v int, typ string) aggKey {
	if u <= v {
		return aggKey{a: u, b: v, typ: typ}
	}
	return aggKey{a: v, b: u, typ: typ}
}

// AggregateSubgraph builds the same union as UnionSubgraph, but fuses any
// two edges (u,v,τ) and (v,u,τ) into one with summed count; directionality
// is dropped from the result (every retained edge is emitted u->v with
// u<=v by original node index — an arbitrary but deterministic choice of
// canonical orientation).
func AggregateSubgraph(g *graphmodel.Graph, matches []Match) (*graphmodel.Graph, []int) {
	edgeCounts := make(map[int]int)
	for _, m := range matches {
		for _, ei := range m.Edges() {
			edgeCounts[ei]++
		}
	}

	type fused struct {
		key   aggKey
		count int
		// firstSeen is the smallest original edge index mapping to this
		// key, used only to pick a deterministic iteration order.
		firstSeen int
	}
	byKey := make(map[aggKey]*fused)
	for ei, c := range edgeCounts {
		e, ok := g.Edge(ei)
		if !ok {
			continue
		}
		k := newAggKey(e.Src, e.Dst, e.Type)
		f, exists := byKey[k]
		if !exists {
			byKey[k] = &fused{key: k, count: c, firstSeen: ei}
		} else {
			f.count += c
			if ei < f.firstSeen {
				f.firstSeen = ei
			}
		}
	}

	ordered := make([]*fused, 0, len(byKey))
	for _, f := range byKey {
		ordered = append(ordered, f)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].firstSeen < ordered[j].firstSeen })

	out := graphmodel.New()
	outCounts := make([]int, 0, len(ordered))
	for _, f := range ordered {
		srcNode, _ := g.Node(f.key.a)
		dstNode, _ := g.Node(f.key.b)
		srcIdx, _ := out.AddNode(srcNode.Label, srcNode.Type)
		dstIdx, _ := out.AddNode(dstNode.Label, dstNode.Type)
		out.AddEdge(srcIdx, dstIdx, f.key.typ, 0)
		outCounts = append(outCounts, f.count)
	}
	return out, outCounts
}
