package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mwinters/gutcheck/internal/config"
	"github.com/mwinters/gutcheck/internal/decision"
	"github.com/mwinters/gutcheck/internal/engine"
	"github.com/mwinters/gutcheck/internal/logging"
)

func newAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Run one simulated decision",
		Long: `Simulate both futures of a yes/no decision and print the verdict.

The three fractions rate the action on a 0-1 scale; the horizon is the
number of time steps to look ahead. Identical parameters always produce
identical results.

Example:
  gutcheck ask --cost 0.2 --benefit 0.5 --risk 0.1 --horizon 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, _ := cmd.Flags().GetFloat64("cost")
			benefit, _ := cmd.Flags().GetFloat64("benefit")
			risk, _ := cmd.Flags().GetFloat64("risk")
			horizon, _ := cmd.Flags().GetInt("horizon")
			energy, _ := cmd.Flags().GetFloat64("energy")
			scenarios, _ := cmd.Flags().GetInt("scenarios")
			question, _ := cmd.Flags().GetString("question")
			root, _ := cmd.Flags().GetString("root")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			params := engine.Params{
				InitialEnergy: cfg.Simulation.InitialEnergy,
				CostFrac:      cost,
				BenefitFrac:   benefit,
				RiskFrac:      risk,
				Horizon:       horizon,
				Scenarios:     cfg.Simulation.Scenarios,
			}
			if cmd.Flags().Changed("energy") {
				params.InitialEnergy = energy
			}
			if cmd.Flags().Changed("scenarios") {
				params.Scenarios = scenarios
			}

			outcome, err := engine.Simulate(params)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			rec := decision.Decide(outcome)

			id := uuid.New().String()
			trace := logging.NewTraceLogger(filepath.Join(root, ".gutcheck"), cfg.Logging.Level)
			defer trace.Close()
			trace.Log(map[string]any{
				"id":             id,
				"question":       question,
				"cost_frac":      params.CostFrac,
				"benefit_frac":   params.BenefitFrac,
				"risk_frac":      params.RiskFrac,
				"horizon":        params.Horizon,
				"outcome":        outcome,
				"recommendation": rec.String(),
			})

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"consultation_id": id,
					"question":        question,
					"outcome":         outcome,
					"recommendation":  rec.String(),
				})
			}

			out := cmd.OutOrStdout()
			if question != "" {
				fmt.Fprintf(out, "Weighing: %s\n\n", question)
			}
			fmt.Fprintf(out, "Survival rate if you act (YES):     %.2f%%\n", outcome.SurvivalYes*100)
			fmt.Fprintf(out, "Average ending energy (YES):        %.2f\n", outcome.AvgEnergyYes)
			fmt.Fprintf(out, "Survival rate if you decline (NO):  %.2f%%\n", outcome.SurvivalNo*100)
			fmt.Fprintf(out, "Average ending energy (NO):         %.2f\n", outcome.AvgEnergyNo)
			fmt.Fprintf(out, "\nGut decision: %s\n", rec)

			return nil
		},
	}

	cmd.Flags().Float64("cost", 0, "Resource cost of the action, 0 to 1 (required)")
	cmd.Flags().Float64("benefit", 0, "Expected long-term benefit, 0 to 1 (required)")
	cmd.Flags().Float64("risk", 0, "Environmental volatility, 0 to 1 (required)")
	cmd.Flags().Int("horizon", 0, "Time steps to look ahead (required)")
	cmd.Flags().Float64("energy", 0, "Starting energy per trajectory (default from config)")
	cmd.Flags().Int("scenarios", 0, "Ensemble size (default from config)")
	cmd.Flags().String("question", "", "The question being weighed (display only)")
	cmd.MarkFlagRequired("cost")
	cmd.MarkFlagRequired("benefit")
	cmd.MarkFlagRequired("risk")
	cmd.MarkFlagRequired("horizon")

	return cmd
}
