package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/reelgrid/reelgrid/internal/config"
	"github.com/reelgrid/reelgrid/internal/tui"
)

// newBrowseCmd returns the "browse" subcommand for the interactive TUI.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse movies interactively",
		Long: "Open the interactive movie grid.\n" +
			"Type to search, Tab to switch category, Ctrl+G to cycle genres,\n" +
			"PgUp/PgDn to turn pages, Esc or Ctrl+C to exit.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBrowse()
		},
	}
}

// runBrowse wires up the gateway and starts the Bubble Tea grid.
func runBrowse() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs go to a file (or nowhere).
	logger, err := config.SetupFileLogger(cfg.App.LogLevel, cfg.App.LogFile)
	if err != nil {
		return err
	}

	gateway := newGateway(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(tui.New(ctx, gateway, logger), tea.WithAltScreen())

	// Bridge OS signal cancellation into the Bubble Tea event loop.
	go func() {
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
