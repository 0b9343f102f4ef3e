package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reelgrid/reelgrid/internal/config"
	"github.com/reelgrid/reelgrid/internal/frontend/telegram"
)

// newBotCmd returns the "bot" subcommand for running the Telegram bot.
func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Start the Telegram bot",
		Long:  "Start the ReelGrid Telegram bot: browse, search, and page through movies from chat.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBot()
		},
	}
}

// runBot initializes the gateway and starts the Telegram long-polling loop.
func runBot() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if cfg.Telegram == nil {
		return errors.New(
			"telegram configuration is required: set telegram.bot_token in config or REELGRID_TELEGRAM_BOT_TOKEN env var",
		)
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	gateway := newGateway(cfg, logger)

	bot, err := telegram.New(
		cfg.Telegram.BotToken,
		cfg.Telegram.AllowedUserIDs,
		gateway,
		logger,
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("telegram bot starting")
	return bot.Start(ctx)
}
