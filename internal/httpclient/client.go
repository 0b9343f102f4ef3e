package httpclient

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds timeout and auth configuration.
type Config struct {
	Timeout     time.Duration
	BearerToken string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Second,
	}
}

// Client wraps http.Client with request logging and bearer authentication.
// Requests are not retried; a failure surfaces to the caller and is only
// re-attempted on a new user action.
type Client struct {
	http   *http.Client
	config Config
	logger *slog.Logger
}

// New creates a new Client with a default http.Client.
func New(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}
}

// NewWithHTTPClient creates a Client with a custom http.Client.
func NewWithHTTPClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:   httpClient,
		config: cfg,
		logger: logger,
	}
}

// Do executes an HTTP request, attaching the configured bearer credential.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.config.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.BearerToken)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Debug("request completed",
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.Int("status", resp.StatusCode),
		slog.String("duration", time.Since(start).String()),
	)
	return resp, nil
}
