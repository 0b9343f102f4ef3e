// Package browse holds the query state shared by every frontend: the current
// search text, category, genre filter, and page cursor, plus the fetch
// lifecycle guard that keeps at most one request in flight.
package browse

import (
	"github.com/reelgrid/reelgrid/internal/tmdb"
)

// Category is one of the fixed browsing modes. Categories are mutually
// exclusive with free-text search; search takes priority whenever non-empty.
type Category string

const (
	CategoryTrending Category = "trending"
	CategoryPopular  Category = "popular"
	CategoryTopRated Category = "top_rated"
)

// Categories lists the selectable browsing modes in display order.
var Categories = []Category{CategoryTrending, CategoryPopular, CategoryTopRated}

type phase int

const (
	phaseIdle phase = iota
	phaseLoading
)

// State is the single query-state instance for one browsing session.
// It has exactly one writer (the owning event loop); the Loading phase is a
// transition guard, not a lock.
type State struct {
	Search     string
	Category   Category
	GenreID    int // 0 = all genres
	Page       int
	TotalPages int

	phase phase
}

// NewState returns the startup state: trending, page 1.
func NewState() *State {
	return &State{
		Category:   CategoryTrending,
		Page:       1,
		TotalPages: 1,
	}
}

// SetSearch replaces the search text. Changing the filter invalidates the
// current page position, so the cursor resets to page 1.
func (s *State) SetSearch(text string) {
	s.Search = text
	s.Page = 1
}

// SetCategory switches the browsing mode and clears any active search.
func (s *State) SetCategory(c Category) {
	s.Category = c
	s.Search = ""
	s.Page = 1
}

// SetGenre replaces the genre filter. 0 clears it.
func (s *State) SetGenre(id int) {
	s.GenreID = id
	s.Page = 1
}

// Loading reports whether a fetch is in flight.
func (s *State) Loading() bool {
	return s.phase == phaseLoading
}

// Next advances the page cursor. It is a no-op at the last known page or
// while a fetch is in flight.
func (s *State) Next() bool {
	if s.phase == phaseLoading || s.Page >= s.TotalPages {
		return false
	}
	s.Page++
	return true
}

// Prev moves the page cursor back. It is a no-op on page 1 or while a fetch
// is in flight.
func (s *State) Prev() bool {
	if s.phase == phaseLoading || s.Page <= 1 {
		return false
	}
	s.Page--
	return true
}

// BeginFetch transitions Idle -> Loading. It returns false while a fetch is
// already in flight: the caller must drop the request, not queue it.
func (s *State) BeginFetch() bool {
	if s.phase == phaseLoading {
		return false
	}
	s.phase = phaseLoading
	return true
}

// Complete records the fetched page bounds and returns to Idle. The page
// cursor is pulled back into range if the result set shrank under it.
func (s *State) Complete(totalPages int) {
	s.phase = phaseIdle
	if totalPages >= 1 {
		s.TotalPages = totalPages
	}
	if s.Page > s.TotalPages {
		s.Page = s.TotalPages
	}
	if s.Page < 1 {
		s.Page = 1
	}
}

// Fail returns to Idle leaving the page bounds untouched.
func (s *State) Fail() {
	s.phase = phaseIdle
}

// Request derives the outbound page request from the current state: a
// non-empty search targets the search endpoint, otherwise the endpoint
// mapped from the category (unknown values fall back to trending). The
// genre filter rides along on either path.
func (s *State) Request() tmdb.PageRequest {
	req := tmdb.PageRequest{
		GenreID: s.GenreID,
		Page:    s.Page,
	}

	if s.Search != "" {
		req.Endpoint = tmdb.EndpointSearch
		req.Query = s.Search
		return req
	}

	switch s.Category {
	case CategoryPopular:
		req.Endpoint = tmdb.EndpointPopular
	case CategoryTopRated:
		req.Endpoint = tmdb.EndpointTopRated
	default:
		req.Endpoint = tmdb.EndpointTrending
	}
	return req
}
