package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/reelgrid/reelgrid/internal/httpclient"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/"

	// maxTotalPages is TMDb's own hard limit: requesting page 501 of any
	// listing returns an error, so total_pages is clamped before use.
	maxTotalPages = 500
)

// Client is a TMDb API v3 client authenticated with a v4 read access token.
type Client struct {
	baseURL string
	token   string
	http    *httpclient.Client
	logger  *slog.Logger
}

// New creates a new TMDb client.
func New(token string, logger *slog.Logger) *Client {
	cfg := httpclient.DefaultConfig()
	cfg.BearerToken = token
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    httpclient.New(cfg, logger),
		logger:  logger,
	}
}

// NewForTest creates a TMDb client with a custom base URL for testing.
func NewForTest(baseURL string, logger *slog.Logger) *Client {
	cfg := httpclient.DefaultConfig()
	cfg.BearerToken = "test-token"
	return &Client{
		baseURL: baseURL,
		token:   "test-token",
		http:    httpclient.New(cfg, logger),
		logger:  logger,
	}
}

// FetchPage retrieves one page of movies for the given request.
func (c *Client) FetchPage(ctx context.Context, req PageRequest) (*Page, error) {
	params := url.Values{}
	if req.Page > 0 {
		params.Set("page", strconv.Itoa(req.Page))
	} else {
		params.Set("page", "1")
	}
	if req.GenreID > 0 {
		params.Set("with_genres", strconv.Itoa(req.GenreID))
	}

	var path string
	switch req.Endpoint {
	case EndpointSearch:
		path = "/search/movie"
		params.Set("query", req.Query)
	case EndpointPopular:
		path = "/movie/popular"
	case EndpointTopRated:
		path = "/movie/top_rated"
	default:
		path = "/trending/movie/week"
	}

	var resp pageResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s page %d: %w", req.Endpoint, req.Page, err)
	}

	return &Page{
		Movies:     resp.Results,
		TotalPages: clampTotalPages(resp.TotalPages),
	}, nil
}

// Genres retrieves the movie genre catalog.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var resp genreListResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch genres: %w", err)
	}
	return resp.Genres, nil
}

// PosterURL returns the full URL for a poster path.
func PosterURL(posterPath, size string) string {
	if posterPath == "" {
		return ""
	}
	return imageBaseURL + size + posterPath
}

// get performs an authenticated GET request against the TMDb API and decodes
// the JSON response. A missing credential fails here, before any network I/O.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	if c.token == "" {
		return ErrNoCredential
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &TransportError{Op: "decode", Err: err}
	}
	return nil
}

func clampTotalPages(n int) int {
	if n > maxTotalPages {
		return maxTotalPages
	}
	if n < 1 {
		return 1
	}
	return n
}
