package result

import (
	"testing"

	"github.com/katalvlaran/tgmatch/graphmodel"
)

func buildABC(t *testing.T) (*graphmodel.Graph, int, int) {
	t.Helper()
	g := graphmodel.New()
	a, _ := g.AddNode("a", "")
	b, _ := g.AddNode("b", "")
	c, _ := g.AddNode("c", "")
	e0, _ := g.AddEdge(a, b, "LOGIN", 10)
	e1, _ := g.AddEdge(b, c, "LOGIN", 20)
	return g, e0, e1
}

func TestMatchHasNodeAndNodes(t *testing.T) {
	g, e0, e1 := buildABC(t)
	m := New(g, []int{e0, e1})

	aIdx, _ := g.NodeByLabel("a")
	bIdx, _ := g.NodeByLabel("b")
	cIdx, _ := g.NodeByLabel("c")

	for _, idx := range []int{aIdx, bIdx, cIdx} {
		if !m.HasNode(idx) {
			t.Errorf("expected match to contain node %d", idx)
		}
	}
	if len(m.Nodes()) != 3 {
		t.Errorf("expected 3 induced nodes, got %d", len(m.Nodes()))
	}
	if got := m.Edges(); len(got) != 2 || got[0] != e0 || got[1] != e1 {
		t.Errorf("Edges() = %v, want [%d %d]", got, e0, e1)
	}
}

func TestUnionSubgraphDedupsAndCounts(t *testing.T) {
	g, e0, e1 := buildABC(t)
	m1 := New(g, []int{e0, e1})
	m2 := New(g, []int{e0})

	out, counts := UnionSubgraph(g, []Match{m1, m2})
	if out.EdgeCount() != 2 {
		t.Fatalf("expected 2 distinct edges, got %d", out.EdgeCount())
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 counts, got %d", len(counts))
	}
	// e0 (a->b) appears in both matches, e1 (b->c) appears in one.
	total := counts[0] + counts[1]
	if total != 3 {
		t.Fatalf("expected counts to sum to 3 (2+1), got %d (%v)", total, counts)
	}
}

func TestAggregateSubgraphFusesOppositeDirections(t *testing.T) {
	g := graphmodel.New()
	a, _ := g.AddNode("a", "")
	b, _ := g.AddNode("b", "")
	eAB, _ := g.AddEdge(a, b, "LOGIN", 0)
	eBA, _ := g.AddEdge(b, a, "LOGIN", 1)

	m1 := New(g, []int{eAB})
	m2 := New(g, []int{eBA})

	out, counts := AggregateSubgraph(g, []Match{m1, m2})
	if out.EdgeCount() != 1 {
		t.Fatalf("expected the two opposite-direction edges fused into 1, got %d", out.EdgeCount())
	}
	if counts[0] != 2 {
		t.Fatalf("expected fused count 2, got %d", counts[0])
	}
}

func TestAggregateSubgraphKeepsDistinctTypesSeparate(t *testing.T) {
	g := graphmodel.New()
	a, _ := g.AddNode("a", "")
	b, _ := g.AddNode("b", "")
	e0, _ := g.AddEdge(a, b, "LOGIN", 0)
	e1, _ := g.AddEdge(a, b, "LOGOFF", 1)

	m := New(g, []int{e0, e1})
	out, _ := AggregateSubgraph(g, []Match{m})
	if out.EdgeCount() != 2 {
		t.Fatalf("expected LOGIN and LOGOFF to stay distinct, got %d edges", out.EdgeCount())
	}
}
