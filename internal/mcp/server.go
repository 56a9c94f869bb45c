// Package mcp provides an MCP (Model Context Protocol) server for gutcheck.
//
// It exposes the simulation engine as a single tool so agent clients can
// request decisions over stdio without shelling out to the CLI.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwinters/gutcheck/internal/config"
)

// Server wraps the MCP SDK server and provides gutcheck-specific functionality.
type Server struct {
	server *sdk.Server
	cfg    *config.Config
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "gutcheck")
	Version string // Server version
	App     *config.Config
}

// NewServer creates a new MCP server with the gutcheck tool registered.
func NewServer(cfg *Config) (*Server, error) {
	app := cfg.App
	if app == nil {
		app = config.Default()
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			// Client initialized, ready to serve
		},
	})

	s := &Server{
		server: mcpServer,
		cfg:    app,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		cancel()
	}()

	return s.server.Run(ctx, &sdk.StdioTransport{})
}
