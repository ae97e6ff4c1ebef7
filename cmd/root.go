package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cronograma",
		Short: "Interleaved study schedule builder",
		Long: "cronograma turns per-subject lesson lists into one day-by-day study plan:\n" +
			"lessons are grouped into blocks of at most 1h45, subjects alternate round-robin,\n" +
			"and weekly and monthly review days are inserted along the way.",
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, args)
		},
	}

	root.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")
	root.PersistentFlags().String("db", "", "Path to SQLite history database (overrides CRONOGRAMA_DB env var)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newOrderCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}
