// Package log configures the process-wide structured logger used by
// cmd/tgmatch. The library packages (graphmodel, query, match, filter,
// search, result, gdfio, motif, timeslice, synthetic) never log, so nothing
// in them depends on global logging state.
package log

import (
	"log/slog"
	"os"
)

// SetUp installs the process-wide slog default logger. When local is true
// (set from the CLI's --local flag) it uses a
// plain text handler at debug level for readability during development;
// otherwise it uses a JSON handler at info level with source locations,
// suitable for ingestion by a log aggregator.
func SetUp(local bool) {
	if local {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		return
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelInfo,
	})))
}
