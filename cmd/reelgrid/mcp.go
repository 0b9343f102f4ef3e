package main

import (
	"github.com/spf13/cobra"

	"github.com/reelgrid/reelgrid/internal/config"
	mcpserver "github.com/reelgrid/reelgrid/internal/mcp"
)

// newMCPServeCmd returns the "mcp-serve" subcommand. It starts an MCP
// server over stdin/stdout so MCP clients can search and browse movies
// through the same gateway as the TUI.
func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-serve",
		Short: "Start MCP server over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := config.SetupLogger(cfg.App.LogLevel)
			gateway := newGateway(cfg, logger)

			srv := mcpserver.NewServer(gateway, logger)
			return srv.ServeStdio(cmd.Context())
		},
	}
}
