package telegram

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/reelgrid/reelgrid/internal/browse"
	"github.com/reelgrid/reelgrid/internal/tmdb"
)

const (
	unauthorizedMsg = "Sorry, you are not authorized to use this bot."
	busyMsg         = "Still fetching the previous page — try again in a moment."
	resetMsg        = "Session reset. Back to trending, page 1."
	noGenresMsg     = "Genre list is unavailable right now."

	helpMsg = `Browse movies:
/trending /popular /top — switch category
/search <text> — search by title (or just type the title)
/genres — list genre filters
/genre <name> — filter by genre, /genre off to clear
/reset — back to trending, page 1

Use the buttons under a result list to turn pages.`

	// Callback data for the pagination buttons.
	callbackPrev = "pg:prev"
	callbackNext = "pg:next"
)

// handleMessage processes an incoming text message.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	b.logger.Debug("received message", slog.Int64("user_id", userID))

	if !b.sessions.isAllowed(userID) {
		b.sendText(chatID, unauthorizedMsg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	cmd, args := splitCommand(text)
	state := b.sessions.getOrCreate(chatID)

	switch cmd {
	case "/start", "/help":
		b.sendText(chatID, helpMsg)

	case "/reset":
		b.sessions.reset(chatID)
		b.sendText(chatID, resetMsg)

	case "/trending":
		state.SetCategory(browse.CategoryTrending)
		b.respondWithPage(ctx, chatID, state)

	case "/popular":
		state.SetCategory(browse.CategoryPopular)
		b.respondWithPage(ctx, chatID, state)

	case "/top", "/top_rated":
		state.SetCategory(browse.CategoryTopRated)
		b.respondWithPage(ctx, chatID, state)

	case "/genres":
		b.sendGenreList(chatID)

	case "/genre":
		b.handleGenre(ctx, chatID, state, args)

	case "/search":
		if args == "" {
			b.sendText(chatID, "Usage: /search <title>")
			return
		}
		state.SetSearch(args)
		b.respondWithPage(ctx, chatID, state)

	default:
		if strings.HasPrefix(cmd, "/") {
			b.sendText(chatID, helpMsg)
			return
		}
		// Bare text is a search: each message is already a discrete
		// intent, no debouncing needed here.
		state.SetSearch(text)
		b.respondWithPage(ctx, chatID, state)
	}
}

// handleCallback processes the pagination buttons.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	b.logger.Debug("received callback",
		slog.Int64("user_id", userID),
		slog.String("data", cq.Data),
	)

	// Acknowledge the callback immediately.
	callback := tgbotapi.NewCallback(cq.ID, "")
	b.api.Send(callback) //nolint:errcheck // best-effort ack

	if !b.sessions.isAllowed(userID) {
		return
	}

	state := b.sessions.getOrCreate(chatID)

	var moved bool
	switch cq.Data {
	case callbackNext:
		moved = state.Next()
	case callbackPrev:
		moved = state.Prev()
	default:
		return
	}
	if !moved {
		// At a bound, or a fetch is in flight: nothing to do.
		return
	}

	b.editWithPage(ctx, chatID, cq.Message.MessageID, state)
}

// handleGenre applies a genre filter by name, or clears it with "off".
func (b *Bot) handleGenre(ctx context.Context, chatID int64, state *browse.State, args string) {
	if args == "" {
		b.sendText(chatID, "Usage: /genre <name>, or /genre off")
		return
	}
	if strings.EqualFold(args, "off") {
		state.SetGenre(0)
		b.respondWithPage(ctx, chatID, state)
		return
	}

	g, ok := b.catalog.Find(args)
	if !ok {
		if b.catalog.Empty() {
			b.sendText(chatID, noGenresMsg)
			return
		}
		b.sendText(chatID, "Unknown genre. Use /genres to see the options.")
		return
	}

	state.SetGenre(g.ID)
	b.respondWithPage(ctx, chatID, state)
}

// sendGenreList lists the available genre filters.
func (b *Bot) sendGenreList(chatID int64) {
	if b.catalog.Empty() {
		b.sendText(chatID, noGenresMsg)
		return
	}

	var sb strings.Builder
	sb.WriteString("Genres:\n")
	for _, g := range b.catalog.Genres() {
		sb.WriteString("  " + g.Name + "\n")
	}
	sb.WriteString("\nUse /genre <name> to filter, /genre off to clear.")
	b.sendText(chatID, sb.String())
}

// respondWithPage fetches the page for the current state and sends it as a
// new message. A fetch already in flight drops the request.
func (b *Bot) respondWithPage(ctx context.Context, chatID int64, state *browse.State) {
	text, kb, ok := b.fetchAndFormat(ctx, chatID, state)
	if !ok {
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if kb != nil {
		msg.ReplyMarkup = kb
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send markdown, retrying plain",
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, text)
	}
}

// editWithPage fetches the page for the current state and rewrites the
// message the pagination button was attached to.
func (b *Bot) editWithPage(ctx context.Context, chatID int64, messageID int, state *browse.State) {
	text, kb, ok := b.fetchAndFormat(ctx, chatID, state)
	if !ok {
		return
	}

	var edit tgbotapi.EditMessageTextConfig
	if kb != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *kb)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	edit.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := b.api.Send(edit); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		b.logger.Warn("failed to edit message, sending new",
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, text)
	}
}

// fetchAndFormat runs one fetch cycle against the gateway and formats the
// result. It reports false when nothing should be sent beyond what it
// already sent itself (busy notice or error message).
func (b *Bot) fetchAndFormat(ctx context.Context, chatID int64, state *browse.State) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	if !state.BeginFetch() {
		b.sendText(chatID, busyMsg)
		return "", nil, false
	}

	page, err := b.gateway.FetchPage(ctx, state.Request())
	if err != nil {
		state.Fail()
		b.logger.Error("fetch failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, tmdb.UserMessage(err))
		return "", nil, false
	}
	state.Complete(page.TotalPages)

	return FormatPage(state, b.catalog, page), pageKeyboard(state), true
}

// pageKeyboard builds prev/next buttons honoring the pagination bounds.
// Buttons at a bound are omitted; nil means no keyboard at all.
func pageKeyboard(state *browse.State) *tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	if state.Page > 1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀ prev", callbackPrev))
	}
	if state.Page < state.TotalPages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("next ▶", callbackNext))
	}
	if len(row) == 0 {
		return nil
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(row...))
	return &kb
}

// splitCommand splits a message into its leading command and the rest.
func splitCommand(text string) (string, string) {
	parts := strings.SplitN(text, " ", 2)
	cmd := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return cmd, ""
	}
	return cmd, strings.TrimSpace(parts[1])
}
