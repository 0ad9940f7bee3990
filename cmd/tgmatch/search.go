package tgmatch

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tgmatch/filter"
	"github.com/katalvlaran/tgmatch/gdfio"
	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/match"
	"github.com/katalvlaran/tgmatch/result"
	"github.com/katalvlaran/tgmatch/search"
	"github.com/katalvlaran/tgmatch/timeslice"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find subgraph matches of one motif within a data graph",
	RunE:  runSearch,
}

func init() {
	flags := searchCmd.Flags()
	flags.String("data", "", "path to the GDF data graph (required)")
	flags.String("query", "", "path to the GDF motif/query graph (required)")
	flags.String("out", "", "path to write the aggregated match subgraph as GDF (optional)")
	flags.String("node-counts", "", "path to write a per-slice node match count CSV (optional)")
	flags.Int("slices", 10, "number of equal time slices for --node-counts")
	flags.Int64("start", 0, "window start, unix seconds (for --node-counts)")
	flags.Int64("end", 0, "window end, unix seconds (for --node-counts)")
	flags.Int("limit", 1000, "maximum number of matches to enumerate")
	flags.Bool("unordered", false, "disable delta-windowed temporal ordering")
	flags.Int64("delta", 3600, "temporal window width in seconds (ignored with --unordered)")

	for _, name := range []string{"data", "query", "out", "node-counts", "slices", "start", "end", "limit", "unordered", "delta"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	runID := uuid.New().String()
	logger := slog.With("run_id", runID, "command", "search")

	dataPath := viper.GetString("data")
	queryPath := viper.GetString("query")
	if dataPath == "" || queryPath == "" {
		return fmt.Errorf("tgmatch search: --data and --query are required")
	}

	g, err := gdfio.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("tgmatch search: loading data graph: %w", err)
	}
	h, err := gdfio.ReadQueryFile(queryPath)
	if err != nil {
		return fmt.Errorf("tgmatch search: loading query graph: %w", err)
	}
	if err := h.Validate(g); err != nil {
		return fmt.Errorf("tgmatch search: invalid motif: %w", err)
	}
	logger.Info("loaded graphs", "data_nodes", g.NodeCount(), "data_edges", g.EdgeCount(), "query_nodes", h.NodeCount())

	predicate := match.CERT{}
	limit := viper.GetInt("limit")
	filtered := filter.Filter(g, h, predicate)

	var matches []result.Match
	if viper.GetBool("unordered") {
		matches, err = search.FindAllSubgraphs(filtered, h, predicate, limit)
	} else {
		matches, err = search.FindOrderedSubgraphs(filtered, h, predicate, limit, viper.GetInt64("delta"))
	}
	if err != nil {
		return fmt.Errorf("tgmatch search: %w", err)
	}
	logger.Info("search complete", "matches", len(matches))
	fmt.Fprintf(cmd.OutOrStdout(), "%d matches found\n", len(matches))

	if out := viper.GetString("out"); out != "" {
		union, counts := result.AggregateSubgraph(filtered, matches)
		if err := writeAggregate(out, union, counts); err != nil {
			return fmt.Errorf("tgmatch search: writing %s: %w", out, err)
		}
		logger.Info("wrote aggregated subgraph", "path", out, "edges", union.EdgeCount())
	}

	if nodeCounts := viper.GetString("node-counts"); nodeCounts != "" {
		opts := timeslice.Options{
			Ordered: !viper.GetBool("unordered"),
			Limit:   limit,
			Delta:   viper.GetInt64("delta"),
		}
		counts, err := timeslice.CalcTemporalCounts(g, h, predicate, viper.GetInt64("start"), viper.GetInt64("end"), viper.GetInt("slices"), opts)
		if err != nil {
			return fmt.Errorf("tgmatch search: temporal counts: %w", err)
		}
		if err := writeNodeCounts(nodeCounts, counts, viper.GetInt("slices")); err != nil {
			return fmt.Errorf("tgmatch search: writing %s: %w", nodeCounts, err)
		}
		logger.Info("wrote node counts", "path", nodeCounts, "nodes", len(counts))
	}

	return nil
}

func writeAggregate(path string, g *graphmodel.Graph, counts []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gdfio.WriteWithCounts(f, g, counts)
}

func writeNodeCounts(path string, counts map[string][]int, numSlices int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"node"}
	for i := 0; i < numSlices; i++ {
		header = append(header, "slice_"+strconv.Itoa(i))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for node, slice := range counts {
		row := []string{node}
		for _, c := range slice {
			row = append(row, strconv.Itoa(c))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
