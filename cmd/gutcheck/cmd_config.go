package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwinters/gutcheck/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after applying defaults, ~/.gutcheck/config.yaml
and environment variable overrides (GUTCHECK_INITIAL_ENERGY,
GUTCHECK_SCENARIOS, GUTCHECK_LOG_LEVEL).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration (~/.gutcheck/config.yaml):")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Simulation Settings:")
			fmt.Fprintf(out, "  simulation.initial_energy:  %.2f\n", cfg.Simulation.InitialEnergy)
			fmt.Fprintf(out, "  simulation.scenarios:       %d\n", cfg.Simulation.Scenarios)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Logging Settings:")
			fmt.Fprintf(out, "  logging.level:              %s\n", cfg.Logging.Level)

			return nil
		},
	}
}
