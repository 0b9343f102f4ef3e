package telegram

import (
	"fmt"
	"strings"

	"github.com/reelgrid/reelgrid/internal/browse"
	"github.com/reelgrid/reelgrid/internal/tmdb"
)

// mdV2Replacer escapes special characters for Telegram MarkdownV2.
var mdV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// EscapeMdV2 escapes a string for safe use in Telegram MarkdownV2.
func EscapeMdV2(s string) string {
	return mdV2Replacer.Replace(s)
}

// FormatBold returns MarkdownV2 bold text.
func FormatBold(s string) string {
	return "*" + EscapeMdV2(s) + "*"
}

// badgeSymbol maps a vote average to a colored rating marker.
func badgeSymbol(v float64) string {
	switch browse.RatingBand(v) {
	case browse.BandGood:
		return "🟢"
	case browse.BandMedium:
		return "🟡"
	case browse.BandPoor:
		return "🔴"
	default:
		return "⚪"
	}
}

// formatRating renders the rating part of a movie line.
func formatRating(v float64) string {
	if browse.RatingBand(v) == browse.BandNone {
		return "⚪ N/A"
	}
	return badgeSymbol(v) + " " + EscapeMdV2(fmt.Sprintf("%.1f", v))
}

// formatMovieLine renders one numbered result line in MarkdownV2.
func formatMovieLine(n int, mv tmdb.Movie) string {
	return fmt.Sprintf("%d\\. %s %s %s",
		n,
		FormatBold(mv.Title),
		EscapeMdV2("("+mv.Year()+")"),
		formatRating(mv.VoteAverage),
	)
}

// formatHeading describes the current filters and page position.
func formatHeading(state *browse.State, catalog *browse.Catalog) string {
	var mode string
	if state.Search != "" {
		mode = "Search: " + state.Search
	} else {
		mode = strings.ReplaceAll(string(state.Category), "_", " ")
	}

	if state.GenreID != 0 {
		if name := catalog.Name(state.GenreID); name != "" {
			mode += " · " + name
		}
	}

	return FormatBold(mode) + EscapeMdV2(fmt.Sprintf(" — page %d/%d", state.Page, state.TotalPages))
}

// FormatPage renders a full result page for a chat message.
func FormatPage(state *browse.State, catalog *browse.Catalog, page *tmdb.Page) string {
	var sb strings.Builder
	sb.WriteString(formatHeading(state, catalog))
	sb.WriteString("\n\n")

	if len(page.Movies) == 0 {
		sb.WriteString(EscapeMdV2("No movies matched. Try a different search or filter."))
		return sb.String()
	}

	for i, mv := range page.Movies {
		sb.WriteString(formatMovieLine(i+1, mv))
		sb.WriteString("\n")
	}
	return sb.String()
}
