package tui

import "github.com/reelgrid/reelgrid/internal/tmdb"

// pageMsg carries a fetched result page (or the failure) back into the
// event loop.
type pageMsg struct {
	page *tmdb.Page
	err  error
}

// genresMsg carries the startup genre catalog load result. A failure is
// non-fatal: the genre filter degrades to no options.
type genresMsg struct {
	genres []tmdb.Genre
	err    error
}

// debounceMsg fires when a scheduled quiet-period timer elapses. gen
// identifies the keystroke generation the timer was scheduled for; stale
// generations are discarded.
type debounceMsg struct {
	gen int
}
