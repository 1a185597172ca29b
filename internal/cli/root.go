package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any
// subcommands.
var RootCmd = &cobra.Command{
	Use:     "riposte",
	Short:   "A typed, fetch-like HTTP client for the terminal",
	Version: version,
	Long: `Riposte is a terminal HTTP client built on a single request pipeline:
every call merges per-request options over profile defaults, dispatches,
and classifies the outcome into one of a closed set of result variants
(ok, created, bad request, unauthorized, not found, server error,
unknown, client error) instead of leaving status-code branching to you.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// Called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(postCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(benchCmd)
}
