package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mwinters/gutcheck/internal/config"
	"github.com/mwinters/gutcheck/internal/logging"
	"github.com/mwinters/gutcheck/internal/shell"
)

func newOracleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "oracle",
		Short: "Start the interactive consultation loop",
		Long: `Start an interactive session: ask a yes/no question, rate its cost,
benefit and risk, and get a recommendation per consultation.

Type 'quit' or 'exit' to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)
			trace := logging.NewTraceLogger(filepath.Join(root, ".gutcheck"), cfg.Logging.Level)
			defer trace.Close()

			sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger, trace)
			return sh.Run()
		},
	}
}
