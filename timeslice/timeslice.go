package timeslice

import (
	"github.com/katalvlaran/tgmatch/filter"
	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/match"
	"github.com/katalvlaran/tgmatch/query"
	"github.com/katalvlaran/tgmatch/result"
	"github.com/katalvlaran/tgmatch/search"
)

// Options controls how each per-slice search is run; it mirrors the search
// configuration SearchCERT threads through calcTemporalSlice.
type Options struct {
	// Ordered selects search.FindOrderedSubgraphs (true) or
	// search.FindAllSubgraphs (false) for each slice.
	Ordered bool
	// Limit is the per-slice result cap, passed through unchanged.
	Limit int
	// Delta is the ordered-mode temporal window; ignored when Ordered is
	// false.
	Delta int64
}

// CalcTemporalCounts splits [start, end) into numSlices equal-width slices
// and, for each slice, searches the portion of g falling in that window for
// matches of h, tallying per node label how many matches it participated
// in. The returned map has one entry per node label that appeared in at
// least one slice's matches; each value has length numSlices (a zero in a
// slot means that node was on no match during that slice). The slice width
// is (end-start)/numSlices rounded down, so when end-start is not a multiple
// of numSlices the remainder at the end of the range is not searched.
func CalcTemporalCounts(g *graphmodel.Graph, h *query.Graph, predicate match.Predicate, start, end int64, numSlices int, opts Options) (map[string][]int, error) {
	if numSlices < 1 {
		return nil, ErrBadSliceCount
	}
	sliceDur := (end - start) / int64(numSlices)
	if sliceDur <= 0 {
		return nil, ErrBadRange
	}

	results := make(map[string][]int)
	for i := 0; i < numSlices; i++ {
		t0 := start + int64(i)*sliceDur
		t1 := t0 + sliceDur
		sliceCounts, err := calcTemporalSlice(g, h, predicate, t0, t1, opts)
		if err != nil {
			return nil, err
		}
		for name, c := range sliceCounts {
			counts, ok := results[name]
			if !ok {
				counts = make([]int, numSlices)
				results[name] = counts
			}
			counts[i] = c
		}
	}
	return results, nil
}

// calcTemporalSlice searches the [start, end) window of g for matches of h
// and counts, per node label, how many matches it was part of.
func calcTemporalSlice(g *graphmodel.Graph, h *query.Graph, predicate match.Predicate, start, end int64, opts Options) (map[string]int, error) {
	sliced := filter.FilterWindow(g, start, end)

	var matches []result.Match
	var err error
	if opts.Ordered {
		matches, err = search.FindOrderedSubgraphs(sliced, h, predicate, opts.Limit, opts.Delta)
	} else {
		matches, err = search.FindAllSubgraphs(sliced, h, predicate, opts.Limit)
	}
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, m := range matches {
		for _, idx := range m.Nodes() {
			counts[sliced.Label(idx)]++
		}
	}
	return counts, nil
}
