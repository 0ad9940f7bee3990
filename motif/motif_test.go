package motif_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/match"
	"github.com/katalvlaran/tgmatch/motif"
	"github.com/katalvlaran/tgmatch/query"
)

func buildDataGraph(t *testing.T) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.New()
	alice, _ := g.AddNode("alice", "USER")
	bob, _ := g.AddNode("bob", "USER")
	host1, _ := g.AddNode("host1", "PC")
	g.AddEdge(alice, host1, "LOGIN", 0)
	g.AddEdge(bob, host1, "LOGIN", 1)
	g.AddEdge(bob, host1, "LOGIN", 2)
	g.SortByTimestamp()
	return g
}

func loginMotif(t *testing.T, name string) motif.Motif {
	t.Helper()
	h := query.New()
	v0, _ := h.AddNode("v0", "")
	v1, _ := h.AddNode("v1", "")
	h.AddEdge(v0, v1, "LOGIN", 0)
	return motif.Motif{Name: name, Query: h}
}

func TestRunRanksAnswersByOccurrence(t *testing.T) {
	g := buildDataGraph(t)
	motifs := []motif.Motif{loginMotif(t, "login.gdf")}
	answers := [][]string{{"alice"}, {"bob"}}

	reports, err := motif.Run(g, match.CERT{}, motifs, answers, 0, 100, motif.Options{
		Limit:       10,
		RankedTypes: []string{"USER", "PC"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	r := reports[0]
	if r.SubgraphCount != 3 {
		t.Errorf("expected 3 matching subgraphs (alice-host1, bob-host1 x2), got %d", r.SubgraphCount)
	}
	if r.TypeCounts["USER"] != 2 {
		t.Errorf("expected 2 distinct USER nodes, got %d", r.TypeCounts["USER"])
	}
	// bob appears on 2 matches, alice on 1: bob should outrank alice.
	if len(r.Rankings) != 2 {
		t.Fatalf("expected 2 rankings, got %d", len(r.Rankings))
	}
	aliceRank, bobRank := r.Rankings[0], r.Rankings[1]
	if aliceRank == 0 || bobRank == 0 {
		t.Fatalf("expected both alice and bob to be found, got rankings %v", r.Rankings)
	}
	if bobRank >= aliceRank {
		t.Errorf("expected bob (2 matches) to outrank alice (1 match): bobRank=%d aliceRank=%d", bobRank, aliceRank)
	}
}

func TestRunMarksUnknownAnswerAsNA(t *testing.T) {
	g := buildDataGraph(t)
	motifs := []motif.Motif{loginMotif(t, "login.gdf")}
	answers := [][]string{{"ghost"}}

	reports, err := motif.Run(g, match.CERT{}, motifs, answers, 0, 100, motif.Options{
		Limit:       10,
		RankedTypes: []string{"USER", "PC"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if reports[0].Rankings[0] != 0 {
		t.Errorf("expected unknown answer node to rank 0 (NA), got %d", reports[0].Rankings[0])
	}
}

func TestWriteReportsFormatsNAForMissingAnswers(t *testing.T) {
	reports := []motif.Report{
		{
			Motif:         "login.gdf",
			DeltaHours:    1,
			Start:         0,
			End:           86400,
			SubgraphCount: 3,
			TypeCounts:    map[string]int{"USER": 2, "PC": 1},
			Rankings:      []int{0, 1},
		},
	}
	var buf bytes.Buffer
	if err := motif.WriteReports(&buf, reports, []string{"USER", "PC"}); err != nil {
		t.Fatalf("WriteReports: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "NA") {
		t.Errorf("expected an NA cell for the missing answer, got: %s", out)
	}
	if !strings.Contains(out, "Use Case 1") || !strings.Contains(out, "Use Case 2") {
		t.Errorf("expected two use-case columns, got: %s", out)
	}
}
