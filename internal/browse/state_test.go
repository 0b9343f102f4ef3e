package browse

import (
	"testing"

	"github.com/reelgrid/reelgrid/internal/tmdb"
)

func TestFilterChangesResetPage(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*State)
	}{
		{"set_search", func(s *State) { s.SetSearch("dune") }},
		{"set_category", func(s *State) { s.SetCategory(CategoryPopular) }},
		{"set_genre", func(s *State) { s.SetGenre(878) }},
		{"clear_genre", func(s *State) { s.SetGenre(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.TotalPages = 20
			s.Page = 7

			tt.mutate(s)
			if s.Page != 1 {
				t.Errorf("expected page reset to 1, got %d", s.Page)
			}
		})
	}
}

func TestSetCategoryClearsSearch(t *testing.T) {
	s := NewState()
	s.SetSearch("dune")
	s.SetCategory(CategoryTopRated)

	if s.Search != "" {
		t.Errorf("expected search cleared, got %q", s.Search)
	}
	if s.Category != CategoryTopRated {
		t.Errorf("expected top_rated, got %s", s.Category)
	}
}

func TestSetSearchKeepsCategory(t *testing.T) {
	s := NewState()
	s.SetCategory(CategoryPopular)
	s.SetSearch("dune")

	if s.Category != CategoryPopular {
		t.Errorf("expected category preserved, got %s", s.Category)
	}
	// But search wins in the derived request.
	if got := s.Request().Endpoint; got != tmdb.EndpointSearch {
		t.Errorf("expected search endpoint, got %s", got)
	}
}

func TestRequestDerivation(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*State)
		want    tmdb.Endpoint
		wantQ   string
		wantGID int
	}{
		{"default_trending", func(s *State) {}, tmdb.EndpointTrending, "", 0},
		{"popular", func(s *State) { s.SetCategory(CategoryPopular) }, tmdb.EndpointPopular, "", 0},
		{"top_rated", func(s *State) { s.SetCategory(CategoryTopRated) }, tmdb.EndpointTopRated, "", 0},
		{"unknown_category_falls_back", func(s *State) { s.Category = "upcoming" }, tmdb.EndpointTrending, "", 0},
		{"search_wins", func(s *State) {
			s.SetCategory(CategoryPopular)
			s.SetSearch("blade runner")
		}, tmdb.EndpointSearch, "blade runner", 0},
		{"genre_on_category", func(s *State) { s.SetGenre(18) }, tmdb.EndpointTrending, "", 18},
		{"genre_on_search", func(s *State) {
			s.SetGenre(18)
			s.SetSearch("drama thing")
		}, tmdb.EndpointSearch, "drama thing", 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			tt.setup(s)
			req := s.Request()
			if req.Endpoint != tt.want {
				t.Errorf("endpoint = %s, want %s", req.Endpoint, tt.want)
			}
			if req.Query != tt.wantQ {
				t.Errorf("query = %q, want %q", req.Query, tt.wantQ)
			}
			if req.GenreID != tt.wantGID {
				t.Errorf("genre = %d, want %d", req.GenreID, tt.wantGID)
			}
			if req.Page != s.Page {
				t.Errorf("page = %d, want %d", req.Page, s.Page)
			}
		})
	}
}

func TestPaginationBounds(t *testing.T) {
	s := NewState()
	s.TotalPages = 3

	if s.Prev() {
		t.Error("Prev on page 1 must be a no-op")
	}
	if !s.Next() || s.Page != 2 {
		t.Errorf("expected advance to page 2, got %d", s.Page)
	}
	if !s.Next() || s.Page != 3 {
		t.Errorf("expected advance to page 3, got %d", s.Page)
	}
	if s.Next() {
		t.Error("Next on last page must be a no-op")
	}
	if !s.Prev() || s.Page != 2 {
		t.Errorf("expected back to page 2, got %d", s.Page)
	}
}

func TestPaginationBlockedWhileLoading(t *testing.T) {
	s := NewState()
	s.TotalPages = 5
	s.Page = 3

	if !s.BeginFetch() {
		t.Fatal("BeginFetch from idle must succeed")
	}
	if s.Next() {
		t.Error("Next while loading must be a no-op")
	}
	if s.Prev() {
		t.Error("Prev while loading must be a no-op")
	}
	if s.Page != 3 {
		t.Errorf("page moved while loading: %d", s.Page)
	}
}

func TestFetchGuardCoalesces(t *testing.T) {
	s := NewState()

	if !s.BeginFetch() {
		t.Fatal("first BeginFetch must succeed")
	}
	if s.BeginFetch() {
		t.Error("second BeginFetch while loading must be dropped")
	}
	if !s.Loading() {
		t.Error("expected loading state")
	}

	s.Complete(10)
	if s.Loading() {
		t.Error("expected idle after Complete")
	}
	if !s.BeginFetch() {
		t.Error("BeginFetch after Complete must succeed")
	}

	s.Fail()
	if s.Loading() {
		t.Error("expected idle after Fail")
	}
	if !s.BeginFetch() {
		t.Error("BeginFetch after Fail must succeed")
	}
}

func TestCompleteClampsPageIntoRange(t *testing.T) {
	s := NewState()
	s.TotalPages = 40
	s.Page = 25

	s.BeginFetch()
	s.Complete(10)

	if s.TotalPages != 10 {
		t.Errorf("expected total pages 10, got %d", s.TotalPages)
	}
	if s.Page != 10 {
		t.Errorf("expected page clamped to 10, got %d", s.Page)
	}
}

func TestCompleteIgnoresNonPositiveTotal(t *testing.T) {
	s := NewState()
	s.TotalPages = 7

	s.BeginFetch()
	s.Complete(0)

	if s.TotalPages != 7 {
		t.Errorf("expected total pages preserved, got %d", s.TotalPages)
	}
}
