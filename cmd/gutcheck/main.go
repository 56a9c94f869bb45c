package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gutcheck",
		Short: "Monte Carlo gut decisions for yes/no questions",
		Long: `gutcheck weighs a yes/no decision by simulating many stochastic
futures of an abstract "energy" budget under both choices.

Rate the action's cost, expected benefit and environmental risk on a 0-1
scale, pick a time horizon, and gutcheck compares survival rates and
average ending energy across the two simulated ensembles.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for agent consumption)")
	rootCmd.PersistentFlags().String("root", ".", "Directory for consultation traces")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAskCmd(),
		newOracleCmd(),
		newConfigCmd(),
		newMCPServerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
