package filter

import (
	"testing"

	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/match"
	"github.com/katalvlaran/tgmatch/query"
)

func buildChainGraph(t *testing.T) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.New()
	a, _ := g.AddNode("a", "")
	b, _ := g.AddNode("b", "")
	c, _ := g.AddNode("c", "")
	g.AddEdge(a, b, "LOGIN", 10)
	g.AddEdge(b, c, "LOGOFF", 20)
	return g
}

func buildChainQuery(t *testing.T) *query.Graph {
	t.Helper()
	h := query.New()
	v1, _ := h.AddNode("v1", "")
	v2, _ := h.AddNode("v2", "")
	h.Graph.AddEdge(v1, v2, "LOGIN", 0)
	return h
}

func TestFilterKeepsOnlyMatchableEdges(t *testing.T) {
	g := buildChainGraph(t)
	h := buildChainQuery(t)

	out := Filter(g, h, match.CERT{})
	if out.EdgeCount() != 1 {
		t.Fatalf("expected 1 surviving edge, got %d", out.EdgeCount())
	}
	e, _ := out.Edge(0)
	if e.Type != "LOGIN" {
		t.Fatalf("expected surviving edge to be LOGIN, got %s", e.Type)
	}
}

func TestFilterNeverMutatesInput(t *testing.T) {
	g := buildChainGraph(t)
	h := buildChainQuery(t)
	before := g.EdgeCount()

	Filter(g, h, match.CERT{})

	if g.EdgeCount() != before {
		t.Fatalf("Filter mutated its input: edge count changed from %d to %d", before, g.EdgeCount())
	}
}

func TestFilterPreservesWindowDuration(t *testing.T) {
	g := buildChainGraph(t)
	g.SetWindowDuration(3600)
	h := buildChainQuery(t)

	out := Filter(g, h, match.CERT{})
	d, ok := out.WindowDuration()
	if !ok || d != 3600 {
		t.Fatalf("expected window duration preserved, got %v, %v", d, ok)
	}
}

func TestFilterWindowRestrictsToHalfOpenRange(t *testing.T) {
	g := graphmodel.New()
	a, _ := g.AddNode("a", "")
	b, _ := g.AddNode("b", "")
	g.AddEdge(a, b, "X", 0)
	g.AddEdge(a, b, "X", 50)
	g.AddEdge(a, b, "X", 100)

	out := FilterWindow(g, 0, 100)
	if out.EdgeCount() != 2 {
		t.Fatalf("expected 2 edges in [0,100), got %d", out.EdgeCount())
	}
	for _, e := range out.Edges() {
		if e.Timestamp < 0 || e.Timestamp >= 100 {
			t.Errorf("edge timestamp %d outside [0,100)", e.Timestamp)
		}
	}
}

func TestFilterWindowNeverMutatesInput(t *testing.T) {
	g := buildChainGraph(t)
	before := g.EdgeCount()
	FilterWindow(g, 0, 15)
	if g.EdgeCount() != before {
		t.Fatalf("FilterWindow mutated its input")
	}
}
