package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwinters/gutcheck/internal/config"
	"github.com/mwinters/gutcheck/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server over stdio",
		Long: `Serve the decision engine as an MCP (Model Context Protocol) tool.

Agent clients connect over stdio and call the gut_decide tool with the
same parameters the CLI takes. The server is stateless; every call is an
independent simulation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			server, err := mcp.NewServer(&mcp.Config{
				Name:    "gutcheck",
				Version: version,
				App:     cfg,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			return server.Run(cmd.Context())
		},
	}
}
