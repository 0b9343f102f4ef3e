package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/reelgrid/reelgrid/internal/config"
	"github.com/reelgrid/reelgrid/internal/tmdb"
)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
)

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// newGateway creates the TMDb client from the configured access token.
func newGateway(cfg *config.Config, logger *slog.Logger) *tmdb.Client {
	return tmdb.New(cfg.TMDb.AccessToken, logger)
}
