// Package tgmatch is the cobra command tree for the tgmatch CLI: a
// "search" subcommand that enumerates subgraph matches of one motif
// against a data graph, and a "motif" subcommand that regression-tests a
// batch of motifs and ranks candidate answer nodes.
package tgmatch

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	internallog "github.com/katalvlaran/tgmatch/internal/log"
)

var cfgFile string
var localLogs bool

var rootCmd = &cobra.Command{
	Use:   "tgmatch",
	Short: "Temporal subgraph pattern matching over attributed event graphs",
	Long: `tgmatch loads a GDF data graph and one or more GDF motif (query)
graphs, enumerates subgraph matches under an optional delta-windowed
temporal order, and reports or aggregates the results.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internallog.SetUp(localLogs || viper.GetBool("local"))
		initConfig()
	},
}

// Execute runs the root command, returning any error it produces.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.tgmatch.yaml)")
	rootCmd.PersistentFlags().BoolVar(&localLogs, "local", false, "use plain-text debug logging instead of JSON")
	if err := viper.BindPFlag("local", rootCmd.PersistentFlags().Lookup("local")); err != nil {
		panic(err)
	}
}

// initConfig reads in a config file and environment variables, matching
// the search order and precedence rules of viper's own documentation: an
// explicit --config file wins, otherwise $HOME/.tgmatch.yaml is used if
// present, and TGMATCH_-prefixed environment variables override both.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".tgmatch")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("TGMATCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "tgmatch: using config file", viper.ConfigFileUsed())
	}
}
