package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reelgrid/reelgrid/internal/browse"
	"github.com/reelgrid/reelgrid/internal/tmdb"
)

const (
	// placeholderCount is how many skeleton cards the grid shows while the
	// first page of a fetch is still in flight.
	placeholderCount = 12

	cardWidth      = 40
	overviewBudget = 140
	posterSize     = "w185"

	posterFallback   = "no poster available"
	overviewFallback = "No overview available."

	emptyMessage = "No movies matched. Try a different search or filter."
)

// ratingBadge renders the color-coded rating for a card.
func ratingBadge(v float64) string {
	switch browse.RatingBand(v) {
	case browse.BandGood:
		return styleBadgeGood.Render(fmt.Sprintf("★ %.1f", v))
	case browse.BandMedium:
		return styleBadgeMedium.Render(fmt.Sprintf("★ %.1f", v))
	case browse.BandPoor:
		return styleBadgePoor.Render(fmt.Sprintf("★ %.1f", v))
	default:
		return styleBadgeNone.Render("N/A")
	}
}

// truncate cuts s to at most budget runes, appending an ellipsis when
// anything was dropped.
func truncate(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return strings.TrimRight(string(runes[:budget]), " ") + "…"
}

// posterRef returns the poster reference line for a card: the image URL, or
// the fixed fallback whenever no usable URL can be derived.
func posterRef(path string) string {
	if url := tmdb.PosterURL(path, posterSize); url != "" {
		return url
	}
	return posterFallback
}

// overviewText returns the truncated overview, or the fallback when absent.
func overviewText(overview string) string {
	if strings.TrimSpace(overview) == "" {
		return overviewFallback
	}
	return truncate(overview, overviewBudget)
}

// renderCard renders one movie as a bordered card.
func renderCard(mv tmdb.Movie) string {
	inner := cardWidth - 4 // border + padding

	title := styleCardTitle.Render(truncate(mv.Title, inner))
	meta := mv.Year() + "  " + ratingBadge(mv.VoteAverage)
	poster := styleDim.Render(truncate(posterRef(mv.PosterPath), inner))
	overview := lipgloss.NewStyle().Width(inner).Render(overviewText(mv.Overview))

	return styleCard.Width(cardWidth - 2).Render(
		title + "\n" + meta + "\n" + poster + "\n" + overview,
	)
}

// renderPlaceholderCard renders one non-interactive skeleton card.
func renderPlaceholderCard() string {
	inner := cardWidth - 4
	bar := strings.Repeat("░", inner)
	short := strings.Repeat("░", inner/2)
	return stylePlaceholderCard.Width(cardWidth - 2).Render(
		short + "\n" + bar + "\n" + bar,
	)
}

// renderGrid lays out one card per movie in rows sized to the terminal width.
func renderGrid(movies []tmdb.Movie, width int) string {
	cards := make([]string, 0, len(movies))
	for _, mv := range movies {
		cards = append(cards, renderCard(mv))
	}
	return joinCards(cards, width)
}

// renderPlaceholderGrid renders the loading skeleton.
func renderPlaceholderGrid(width int) string {
	cards := make([]string, 0, placeholderCount)
	for range placeholderCount {
		cards = append(cards, renderPlaceholderCard())
	}
	return joinCards(cards, width)
}

func joinCards(cards []string, width int) string {
	perRow := width / cardWidth
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
