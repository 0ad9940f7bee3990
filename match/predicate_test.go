package match

import (
	"regexp"
	"testing"

	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/query"
)

func buildDataGraph(t *testing.T) (*graphmodel.Graph, map[string]int) {
	t.Helper()
	g := graphmodel.New()
	idx := make(map[string]int)
	for _, label := range []string{"admin_alice", "bob", "pc01"} {
		i, err := g.AddNode(label, "")
		if err != nil {
			t.Fatal(err)
		}
		idx[label] = i
	}
	return g, idx
}

func TestNodeMatchesNameExact(t *testing.T) {
	g, idx := buildDataGraph(t)
	h := query.New()
	v, _ := h.AddNode("bob", "")
	h.SetNeedsNameMatch(v, true)

	if !NodeMatches(g, idx["bob"], h, v) {
		t.Error("expected name match to succeed")
	}
	if NodeMatches(g, idx["admin_alice"], h, v) {
		t.Error("expected name mismatch to fail")
	}
}

func TestNodeMatchesType(t *testing.T) {
	g := graphmodel.New()
	u, _ := g.AddNode("pc01", "PC")
	h := query.New()
	v, _ := h.Graph.AddNode("query-node", "PC")

	if !NodeMatches(g, u, h, v) {
		t.Error("expected type match to succeed")
	}

	h2 := query.New()
	v2, _ := h2.Graph.AddNode("query-node", "USER")
	if NodeMatches(g, u, h2, v2) {
		t.Error("expected type mismatch to fail")
	}
}

func TestNodeMatchesDegreeRestriction(t *testing.T) {
	g := graphmodel.New()
	u, _ := g.AddNode("u", "")
	other, _ := g.AddNode("other", "")
	g.AddEdge(u, other, "LOGIN", 0)
	g.AddEdge(u, other, "LOGIN", 1)

	h := query.New()
	v, _ := h.AddNode("v", "")
	h.AddDegreeRestriction(v, query.DegreeRestriction{Direction: query.Out, EdgeType: "LOGIN", Cmp: query.LessThan, Threshold: 3})
	if !NodeMatches(g, u, h, v) {
		t.Error("2 LOGIN edges should pass '< 3'")
	}

	g.AddEdge(u, other, "LOGIN", 2)
	if NodeMatches(g, u, h, v) {
		t.Error("3 LOGIN edges should fail '< 3'")
	}
}

func TestNodeMatchesRegex(t *testing.T) {
	g, idx := buildDataGraph(t)
	h := query.New()
	v, _ := h.AddNode("v", "")
	h.SetRegex(v, regexp.MustCompile(`^admin_`))

	if !NodeMatches(g, idx["admin_alice"], h, v) {
		t.Error("expected admin_alice to match ^admin_")
	}
	if NodeMatches(g, idx["bob"], h, v) {
		t.Error("expected bob to fail ^admin_")
	}
}

func TestNodeMatchesRequiredIncidentTypeSubset(t *testing.T) {
	g := graphmodel.New()
	u, _ := g.AddNode("u", "")
	w, _ := g.AddNode("w", "")
	g.AddEdge(u, w, "LOGIN", 0)

	h := query.New()
	v, _ := h.AddNode("v", "")
	vw, _ := h.AddNode("vw", "")
	h.Graph.AddEdge(v, vw, "LOGIN", 0)

	if !NodeMatches(g, u, h, v) {
		t.Error("u has a LOGIN out edge, matching v's requirement")
	}

	h2 := query.New()
	v2, _ := h2.AddNode("v2", "")
	vw2, _ := h2.AddNode("vw2", "")
	h2.Graph.AddEdge(v2, vw2, "LOGOFF", 0)
	if NodeMatches(g, u, h2, v2) {
		t.Error("u has no LOGOFF out edge, should fail v2's requirement")
	}
}

func TestEdgeMatchesTypeAndEndpoints(t *testing.T) {
	g := graphmodel.New()
	a, _ := g.AddNode("a", "")
	b, _ := g.AddNode("b", "")
	eG, _ := g.AddEdge(a, b, "LOGIN", 10)

	h := query.New()
	v1, _ := h.AddNode("v1", "")
	v2, _ := h.AddNode("v2", "")
	eH, _ := h.Graph.AddEdge(v1, v2, "LOGIN", 0)

	if !EdgeMatches(g, eG, h, eH) {
		t.Error("expected edge match")
	}

	eHWildcard, _ := h.Graph.AddEdge(v1, v2, "", 0)
	if !EdgeMatches(g, eG, h, eHWildcard) {
		t.Error("wildcard query edge type should match any data edge type")
	}

	h2 := query.New()
	w1, _ := h2.AddNode("w1", "")
	w2, _ := h2.AddNode("w2", "")
	eH2, _ := h2.Graph.AddEdge(w1, w2, "LOGOFF", 0)
	if EdgeMatches(g, eG, h2, eH2) {
		t.Error("expected edge type mismatch to fail")
	}
}
