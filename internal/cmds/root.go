// Package cmds wires the pq-utils subcommands together.
package cmds

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.3.0"

var errNoCommand = errors.New("a subcommand is required")

var (
	verbose bool

	// log stays silent unless --verbose switches it to a debug logger,
	// keeping stdout and stderr clean for piped output.
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "pq-utils",
	Short:        "Utilities for reading parquet files",
	Long:         "pq-utils reads Apache Parquet files and prints their rows or schema.",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log = newDebugLogger()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errNoCommand
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// Execute runs the root command. Every failure surfaces here so the caller
// can decide the exit code.
func Execute() error {
	return rootCmd.Execute()
}

func newDebugLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
