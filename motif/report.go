package motif

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// WriteReports writes reports as a comparison table: one row per motif,
// one column per ranked type's distinct-node count, then one "Use Case N"
// column per answer set, holding its best ranking (or "NA" if none of its
// answer nodes appeared in any match). This mirrors the column
// layout SearchCERT::motifTest writes to its CSV.
func WriteReports(w io.Writer, reports []Report, rankedTypes []string) error {
	cw := csv.NewWriter(w)

	numUseCases := 0
	if len(reports) > 0 {
		numUseCases = len(reports[0].Rankings)
	}

	header := []string{"Motif", "Delta(hr)", "Start Date", "End Date", "#Subgraphs"}
	for _, t := range rankedTypes {
		header = append(header, "#"+t)
	}
	for uc := 0; uc < numUseCases; uc++ {
		header = append(header, fmt.Sprintf("Use Case %d", uc+1))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range reports {
		row := []string{
			r.Motif,
			strconv.Itoa(r.DeltaHours),
			formatDate(r.Start),
			formatDate(r.End),
			strconv.Itoa(r.SubgraphCount),
		}
		for _, t := range rankedTypes {
			row = append(row, strconv.Itoa(r.TypeCounts[t]))
		}
		for _, rank := range r.Rankings {
			if rank == 0 {
				row = append(row, "NA")
			} else {
				row = append(row, strconv.Itoa(rank))
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatDate(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).UTC().Format("2006-01-02")
}
