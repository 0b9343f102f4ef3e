package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelgrid/reelgrid/internal/tmdb"
)

// fetchPage returns a command that fetches one result page asynchronously.
func (m Model) fetchPage(req tmdb.PageRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, fetchTimeout)
		defer cancel()
		page, err := m.client.FetchPage(ctx, req)
		return pageMsg{page: page, err: err}
	}
}

// loadGenres returns a command that loads the genre catalog once at startup.
func (m Model) loadGenres() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, fetchTimeout)
		defer cancel()
		genres, err := m.client.Genres(ctx)
		return genresMsg{genres: genres, err: err}
	}
}

// scheduleDebounce returns a command that fires a debounceMsg for gen after
// the quiet period. Newer keystrokes invalidate gen, which cancels the
// pending intent without touching the timer.
func (m Model) scheduleDebounce(gen int) tea.Cmd {
	return tea.Tick(m.debouncer.Quiet(), func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}
