// Package mcp exposes the browsing operations as MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reelgrid/reelgrid/internal/browse"
	"github.com/reelgrid/reelgrid/internal/tmdb"
)

// Gateway is the slice of the TMDb client the tools need.
type Gateway interface {
	FetchPage(ctx context.Context, req tmdb.PageRequest) (*tmdb.Page, error)
	Genres(ctx context.Context) ([]tmdb.Genre, error)
}

// Server wraps an MCP SDK server with the browsing tool handlers.
type Server struct {
	server  *mcpsdk.Server
	gateway Gateway
	logger  *slog.Logger
}

// NewServer creates an MCP server with all browsing tools registered.
func NewServer(gateway Gateway, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "reelgrid",
			Version: "0.1.0",
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{server: s, gateway: gateway, logger: logger}
	srv.registerTools()
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// MCPServer returns the underlying MCP SDK server (for testing).
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

func (s *Server) registerTools() {
	s.server.AddTool(searchMoviesTool(), s.handleSearchMovies)
	s.server.AddTool(browseMoviesTool(), s.handleBrowseMovies)
	s.server.AddTool(listGenresTool(), s.handleListGenres)
}

// Tool definitions.

func searchMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "search_movies",
		Description: "Search for movies by title. Returns one page of matches with titles, years, ratings, and the total page count.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The movie title to search for",
				},
				"page": map[string]any{
					"type":        "integer",
					"description": "Result page to fetch (default 1)",
				},
				"genre_id": map[string]any{
					"type":        "integer",
					"description": "Optional TMDb genre ID to filter by",
				},
			},
			"required": []any{"query"},
		},
	}
}

func browseMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "browse_movies",
		Description: "Browse a movie listing by category: trending, popular, or top_rated. Returns one page with the total page count.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{
					"type":        "string",
					"description": "One of trending, popular, top_rated (default trending)",
				},
				"page": map[string]any{
					"type":        "integer",
					"description": "Result page to fetch (default 1)",
				},
				"genre_id": map[string]any{
					"type":        "integer",
					"description": "Optional TMDb genre ID to filter by",
				},
			},
		},
	}
}

func listGenresTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "list_genres",
		Description: "List the movie genres available for filtering, with their TMDb IDs.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

// pageResult is the JSON shape returned by the page-fetching tools.
type pageResult struct {
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	Movies     []tmdb.Movie `json:"movies"`
}

// Tool handlers.

func (s *Server) handleSearchMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	var args struct {
		Query   string `json:"query"`
		Page    int    `json:"page"`
		GenreID int    `json:"genre_id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Query == "" {
		return toolError("search_movies requires a 'query' string argument"), nil
	}

	state := browse.NewState()
	state.SetSearch(args.Query)
	state.SetGenre(args.GenreID)
	setPage(state, args.Page)

	return s.fetch(ctx, state)
}

func (s *Server) handleBrowseMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	var args struct {
		Category string `json:"category"`
		Page     int    `json:"page"`
		GenreID  int    `json:"genre_id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	// Unknown categories fall back to trending in the derived request.
	state := browse.NewState()
	if args.Category != "" {
		state.SetCategory(browse.Category(args.Category))
	}
	state.SetGenre(args.GenreID)
	setPage(state, args.Page)

	return s.fetch(ctx, state)
}

func (s *Server) handleListGenres(ctx context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	genres, err := s.gateway.Genres(ctx)
	if err != nil {
		return toolError(fmt.Sprintf("list genres failed: %v", err)), nil
	}
	return toolJSON(genres)
}

// fetch runs one page fetch for a fully prepared state.
func (s *Server) fetch(ctx context.Context, state *browse.State) (*mcpsdk.CallToolResult, error) {
	state.BeginFetch()
	page, err := s.gateway.FetchPage(ctx, state.Request())
	if err != nil {
		state.Fail()
		return toolError(tmdb.UserMessage(err)), nil
	}
	state.Complete(page.TotalPages)

	return toolJSON(pageResult{
		Page:       state.Page,
		TotalPages: page.TotalPages,
		Movies:     page.Movies,
	})
}

func setPage(state *browse.State, page int) {
	if page > 1 {
		state.TotalPages = page // allow the cursor before bounds are known
		state.Page = page
	}
}

// Helper functions.

// toolJSON marshals v to JSON and returns it as text content.
func toolJSON(v any) (*mcpsdk.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// toolError returns a tool result indicating an error.
func toolError(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		IsError: true,
	}
}
