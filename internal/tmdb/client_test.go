package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewForTest(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writePage(t *testing.T, w http.ResponseWriter, resp pageResponse) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestFetchPage_Search(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("missing bearer credential, got %q", got)
		}
		q := r.URL.Query()
		if q.Get("query") != "inception" {
			t.Errorf("unexpected query: %s", q.Get("query"))
		}
		if q.Get("page") != "2" {
			t.Errorf("unexpected page: %s", q.Get("page"))
		}
		writePage(t, w, pageResponse{
			Page: 2,
			Results: []Movie{
				{ID: 27205, Title: "Inception", VoteAverage: 8.4, ReleaseDate: "2010-07-16"},
			},
			TotalPages: 3,
		})
	}))

	page, err := client.FetchPage(context.Background(), PageRequest{
		Endpoint: EndpointSearch,
		Query:    "inception",
		Page:     2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Movies) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(page.Movies))
	}
	if page.Movies[0].Title != "Inception" {
		t.Errorf("expected Inception, got %s", page.Movies[0].Title)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
}

func TestFetchPage_CategoryEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		wantPath string
	}{
		{"trending", EndpointTrending, "/trending/movie/week"},
		{"popular", EndpointPopular, "/movie/popular"},
		{"top_rated", EndpointTopRated, "/movie/top_rated"},
		{"unknown_defaults_to_trending", Endpoint("whatever"), "/trending/movie/week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				writePage(t, w, pageResponse{TotalPages: 1})
			}))

			if _, err := client.FetchPage(context.Background(), PageRequest{Endpoint: tt.endpoint, Page: 1}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("expected path %s, got %s", tt.wantPath, gotPath)
			}
		})
	}
}

func TestFetchPage_GenreFilter(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("with_genres"); got != "878" {
			t.Errorf("expected with_genres=878, got %q", got)
		}
		writePage(t, w, pageResponse{TotalPages: 1})
	}))

	if _, err := client.FetchPage(context.Background(), PageRequest{
		Endpoint: EndpointPopular,
		GenreID:  878,
		Page:     1,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchPage_ClampsTotalPages(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePage(t, w, pageResponse{TotalPages: 10000})
	}))

	page, err := client.FetchPage(context.Background(), PageRequest{Endpoint: EndpointTrending, Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPages != 500 {
		t.Errorf("expected total pages clamped to 500, got %d", page.TotalPages)
	}
}

func TestFetchPage_StatusError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.FetchPage(context.Background(), PageRequest{Endpoint: EndpointTrending, Page: 1})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", statusErr.StatusCode)
	}
	if !statusErr.IsUnauthorized() {
		t.Error("expected IsUnauthorized to be true")
	}
}

func TestFetchPage_MalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	_, err := client.FetchPage(context.Background(), PageRequest{Endpoint: EndpointTrending, Page: 1})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
	if transportErr.Op != "decode" {
		t.Errorf("expected decode op, got %q", transportErr.Op)
	}
}

func TestFetchPage_NoCredential(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	t.Cleanup(server.Close)

	client := NewForTest(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.token = ""

	_, err := client.FetchPage(context.Background(), PageRequest{Endpoint: EndpointTrending, Page: 1})
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
	if hits != 0 {
		t.Errorf("expected no network I/O, server saw %d requests", hits)
	}
}

func TestGenres(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(genreListResponse{
			Genres: []Genre{{ID: 878, Name: "Science Fiction"}, {ID: 18, Name: "Drama"}},
		})
	}))

	genres, err := client.Genres(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(genres) != 2 {
		t.Fatalf("expected 2 genres, got %d", len(genres))
	}
	if genres[0].Name != "Science Fiction" {
		t.Errorf("unexpected first genre: %s", genres[0].Name)
	}
}

func TestPosterURL(t *testing.T) {
	if got := PosterURL("/abc.jpg", "w342"); got != "https://image.tmdb.org/t/p/w342/abc.jpg" {
		t.Errorf("unexpected poster URL: %s", got)
	}
	if got := PosterURL("", "w342"); got != "" {
		t.Errorf("expected empty URL for empty path, got %s", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no_credential", ErrNoCredential, "TMDb access token not configured"},
		{"status", &StatusError{StatusCode: 401, Status: "401 Unauthorized"}, "TMDb returned 401 Unauthorized"},
		{"transport", &TransportError{Op: "request", Err: errors.New("dial tcp: refused")}, "could not reach TMDb"},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
