// cmd/root.go
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ccnsim",
	Short: "Discrete-event simulator for packet-level in-network caching strategies",
}

// Execute runs the root command, exiting non-zero on any error cobra
// or a subcommand reports.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(plotCmd)
}
