// Package telegram is the Telegram frontend: the same browsing operations as
// the TUI, driven by chat commands and inline-keyboard pagination.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/reelgrid/reelgrid/internal/browse"
	"github.com/reelgrid/reelgrid/internal/tmdb"
)

// Bot is the Telegram frontend. Each chat gets its own browsing session;
// the TMDb gateway and genre catalog are shared.
type Bot struct {
	api      *tgbotapi.BotAPI
	sessions *sessionManager
	gateway  *tmdb.Client
	catalog  *browse.Catalog
	logger   *slog.Logger
}

// New creates a new Telegram Bot.
func New(token string, allowedUserIDs []int64, gateway *tmdb.Client, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Bot{
		api:      api,
		sessions: newSessionManager(allowedUserIDs),
		gateway:  gateway,
		catalog:  browse.NewCatalog(nil),
		logger:   logger,
	}, nil
}

// Start loads the genre catalog and runs the long-polling loop. It blocks
// until ctx is canceled. Updates are handled sequentially: every session
// has a single writer, matching the browsing state machine's model.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("telegram bot started",
		slog.String("username", b.api.Self.UserName),
	)

	// Genre catalog load failure is non-fatal: /genre degrades to "no
	// options" while everything else keeps working.
	if genres, err := b.gateway.Genres(ctx); err != nil {
		b.logger.Warn("genre catalog unavailable", slog.String("error", err.Error()))
	} else {
		b.catalog = browse.NewCatalog(genres)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches an incoming Telegram update.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// sendText sends a plain text message (no parse mode).
func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}
