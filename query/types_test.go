package query

import (
	"regexp"
	"testing"

	"github.com/katalvlaran/tgmatch/graphmodel"
)

func buildTriangle(t *testing.T) *Graph {
	t.Helper()
	h := New()
	a, _ := h.AddNode("a", "")
	b, _ := h.AddNode("b", "")
	c, _ := h.AddNode("c", "")
	h.Graph.AddEdge(a, b, "LOGIN", 0)
	h.Graph.AddEdge(b, c, "LOGIN", 0)
	h.Graph.AddEdge(c, a, "", 0)
	return h
}

func TestConstraintsDefaultToZeroValue(t *testing.T) {
	h := buildTriangle(t)
	if h.NeedsNameMatch(0) {
		t.Error("expected NeedsNameMatch default false")
	}
	if h.Regex(0) != nil {
		t.Error("expected nil regex by default")
	}
	if len(h.DegreeRestrictions(0)) != 0 {
		t.Error("expected no degree restrictions by default")
	}
}

func TestSetConstraintsUnknownNode(t *testing.T) {
	h := buildTriangle(t)
	if err := h.SetNeedsNameMatch(99, true); err != ErrNodeNotFound {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
	if err := h.AddDegreeRestriction(99, DegreeRestriction{}); err != ErrNodeNotFound {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestAddDegreeRestrictionNegativeThreshold(t *testing.T) {
	h := buildTriangle(t)
	err := h.AddDegreeRestriction(0, DegreeRestriction{Direction: Out, Cmp: LessThan, Threshold: -1})
	if err != ErrBadThreshold {
		t.Fatalf("expected ErrBadThreshold, got %v", err)
	}
}

func TestSetAndReadConstraints(t *testing.T) {
	h := buildTriangle(t)
	if err := h.SetNeedsNameMatch(0, true); err != nil {
		t.Fatal(err)
	}
	re := regexp.MustCompile(`^admin_`)
	if err := h.SetRegex(0, re); err != nil {
		t.Fatal(err)
	}
	if err := h.AddDegreeRestriction(0, DegreeRestriction{Direction: Out, EdgeType: "LOGIN", Cmp: LessThan, Threshold: 3}); err != nil {
		t.Fatal(err)
	}

	if !h.NeedsNameMatch(0) {
		t.Error("expected NeedsNameMatch true")
	}
	if h.Regex(0) != re {
		t.Error("regex mismatch")
	}
	drs := h.DegreeRestrictions(0)
	if len(drs) != 1 || drs[0].Threshold != 3 {
		t.Errorf("unexpected degree restrictions: %+v", drs)
	}
}

func TestValidateCatchesUnknownEdgeType(t *testing.T) {
	data := graphmodel.New()
	a, _ := data.AddNode("a", "")
	b, _ := data.AddNode("b", "")
	data.AddEdge(a, b, "LOGIN", 0)

	h := buildTriangle(t)
	if err := h.Validate(data); err != nil {
		t.Fatalf("unexpected error validating against richer universe: %v", err)
	}

	if err := h.AddDegreeRestriction(0, DegreeRestriction{EdgeType: "NOPE", Cmp: LessThan, Threshold: 1}); err != nil {
		t.Fatal(err)
	}
	if err := h.Validate(data); err != ErrUnknownEdgeType {
		t.Fatalf("expected ErrUnknownEdgeType, got %v", err)
	}
}
