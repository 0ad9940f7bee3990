package motif

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tgmatch/filter"
	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/match"
	"github.com/katalvlaran/tgmatch/result"
	"github.com/katalvlaran/tgmatch/search"
)

// Run tests each motif independently against g (filter then search) and
// ranks each answer set's best-matching node against the resulting node
// tallies. answers is one node-label set per use case; start and end are
// carried through to Report unchanged (the data graph's overall time
// range, for a report header — not consulted by matching).
//
// Motifs run concurrently; Run waits for all of them and returns the first
// error any motif's filter/search encountered. A failing motif does not
// cancel the others.
func Run(g *graphmodel.Graph, predicate match.Predicate, motifs []Motif, answers [][]string, start, end int64, opts Options) ([]Report, error) {
	reports := make([]Report, len(motifs))

	var eg errgroup.Group
	for i := range motifs {
		i := i
		m := motifs[i]
		eg.Go(func() error {
			rep, err := runOne(g, predicate, m, answers, start, end, opts)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func runOne(g *graphmodel.Graph, predicate match.Predicate, m Motif, answers [][]string, start, end int64, opts Options) (Report, error) {
	filtered := filter.Filter(g, m.Query, predicate)

	var matches []result.Match
	var err error
	if opts.Ordered {
		matches, err = search.FindOrderedSubgraphs(filtered, m.Query, predicate, opts.Limit, opts.Delta)
	} else {
		matches, err = search.FindAllSubgraphs(filtered, m.Query, predicate, opts.Limit)
	}
	if err != nil {
		return Report{}, err
	}

	perType := make(map[string]map[int]int, len(opts.RankedTypes))
	for _, t := range opts.RankedTypes {
		perType[t] = make(map[int]int)
	}
	for _, mt := range matches {
		for _, idx := range mt.Nodes() {
			if counts, ok := perType[filtered.Type(idx)]; ok {
				counts[idx]++
			}
		}
	}

	typeCounts := make(map[string]int, len(opts.RankedTypes))
	for _, t := range opts.RankedTypes {
		typeCounts[t] = len(perType[t])
	}

	rankings := make([]int, len(answers))
	for ai, labels := range answers {
		best := 0
		for _, label := range labels {
			idx, ok := filtered.NodeByLabel(label)
			if !ok {
				continue
			}
			for _, t := range opts.RankedTypes {
				r := findRanking(idx, perType[t])
				if r > 0 && (best == 0 || r < best) {
					best = r
				}
			}
		}
		rankings[ai] = best
	}

	return Report{
		Motif:         m.Name,
		DeltaHours:    int(opts.Delta / 3600),
		Start:         start,
		End:           end,
		SubgraphCount: len(matches),
		TypeCounts:    typeCounts,
		Rankings:      rankings,
	}, nil
}

// findRanking returns node v's 1-based rank in counts, ordered by
// descending count (ties broken by ascending node index for
// determinism), or 0 if v has no entry.
func findRanking(v int, counts map[int]int) int {
	if _, ok := counts[v]; !ok {
		return 0
	}
	type entry struct {
		idx, count int
	}
	ranked := make([]entry, 0, len(counts))
	for idx, c := range counts {
		ranked = append(ranked, entry{idx: idx, count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].idx < ranked[j].idx
	})
	for rank, e := range ranked {
		if e.idx == v {
			return rank + 1
		}
	}
	return 0
}
