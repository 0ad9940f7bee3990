package tgmatch

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tgmatch/gdfio"
	"github.com/katalvlaran/tgmatch/match"
	tgmotif "github.com/katalvlaran/tgmatch/motif"
)

var motifCmd = &cobra.Command{
	Use:   "motif",
	Short: "Regression-test a batch of motifs against a data graph and rank answer nodes",
	RunE:  runMotif,
}

func init() {
	flags := motifCmd.Flags()
	flags.String("data", "", "path to the GDF data graph (required)")
	flags.StringSlice("motifs", nil, "paths to GDF motif files (required, comma-separated or repeatable)")
	flags.String("answers", "", "path to a CSV of candidate answer nodes, one row per use case (required)")
	flags.StringSlice("ranked-types", nil, "node types to tally and rank by occurrence (required)")
	flags.String("out", "", "path to write the comparison report CSV (default stdout)")
	flags.Int64("start", 0, "window start, unix seconds")
	flags.Int64("end", 0, "window end, unix seconds")
	flags.Int("limit", 1000, "maximum matches to enumerate per motif")
	flags.Bool("unordered", false, "disable delta-windowed temporal ordering")
	flags.Int64("delta", 3600, "temporal window width in seconds (ignored with --unordered)")

	for _, name := range []string{"data", "motifs", "answers", "ranked-types", "out", "start", "end", "limit", "unordered", "delta"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(motifCmd)
}

func runMotif(cmd *cobra.Command, args []string) error {
	runID := uuid.New().String()
	logger := slog.With("run_id", runID, "command", "motif")

	// search shares these viper keys and binds them to its own flags in its
	// init; rebind them to this command's flags before reading them.
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("tgmatch motif: %w", err)
	}

	dataPath := viper.GetString("data")
	motifPaths := viper.GetStringSlice("motifs")
	answersPath := viper.GetString("answers")
	rankedTypes := viper.GetStringSlice("ranked-types")
	if dataPath == "" || len(motifPaths) == 0 || answersPath == "" || len(rankedTypes) == 0 {
		return fmt.Errorf("tgmatch motif: --data, --motifs, --answers, and --ranked-types are all required")
	}

	g, err := gdfio.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("tgmatch motif: loading data graph: %w", err)
	}

	motifs := make([]tgmotif.Motif, 0, len(motifPaths))
	for _, path := range motifPaths {
		h, err := gdfio.ReadQueryFile(path)
		if err != nil {
			return fmt.Errorf("tgmatch motif: loading %s: %w", path, err)
		}
		motifs = append(motifs, tgmotif.Motif{Name: strings.TrimSuffix(baseName(path), ".gdf"), Query: h})
	}

	answers, err := readAnswers(answersPath)
	if err != nil {
		return fmt.Errorf("tgmatch motif: loading %s: %w", answersPath, err)
	}

	logger.Info("loaded motif batch", "motifs", len(motifs), "use_cases", len(answers))

	reports, err := tgmotif.Run(g, match.CERT{}, motifs, answers, viper.GetInt64("start"), viper.GetInt64("end"), tgmotif.Options{
		Ordered:     !viper.GetBool("unordered"),
		Limit:       viper.GetInt("limit"),
		Delta:       viper.GetInt64("delta"),
		RankedTypes: rankedTypes,
	})
	if err != nil {
		return fmt.Errorf("tgmatch motif: %w", err)
	}
	logger.Info("motif batch complete", "reports", len(reports))

	out := cmd.OutOrStdout()
	if path := viper.GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("tgmatch motif: writing %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}
	return tgmotif.WriteReports(out, reports, rankedTypes)
}

// readAnswers parses a CSV of candidate answer nodes: one row per use case,
// each field a node name to check for membership in that use case's best
// match, mirroring how SearchCERT's motif harness reads its answer key.
func readAnswers(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, "/\\"); i >= 0 {
		return path[i+1:]
	}
	return path
}
