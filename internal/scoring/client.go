// Package scoring talks to the hunt scoring service: guess submission,
// leaderboard retrieval and participation lookup. The wire shapes belong
// to the service; this package only encodes and decodes them.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/playperu/geohunt/internal/geohunt"
)

const maxErrorBody = 4 << 10

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient returns a client for the service at baseURL. Every request is
// bounded by timeout so a silent service cannot pin a caller forever.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("component", "scoring"),
	}
}

// serviceMessage is the {message} body the service uses for both
// success and failure replies.
type serviceMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (m serviceMessage) text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *Client) do(op string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("scoring request failed",
			"op", op,
			"request_id", req.Header.Get("X-Request-ID"),
			"error", err,
		)
		return nil, &NetworkError{Op: op, Err: err}
	}
	c.logger.Debug("scoring request",
		"op", op,
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", req.Header.Get("X-Request-ID"),
	)
	return resp, nil
}

// Leaderboard returns the full ranking for a hunt, in service order.
func (c *Client) Leaderboard(ctx context.Context, huntID string) ([]geohunt.LeaderboardEntry, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/leaderboard/"+url.PathEscape(huntID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do("fetch leaderboard", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: leaderboard status %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rows []geohunt.LeaderboardEntry
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding leaderboard: %w", err)
	}
	if rows == nil {
		rows = []geohunt.LeaderboardEntry{}
	}
	return rows, nil
}

// Check reports whether the service answers HTTP at all. Any response,
// whatever the status, counts as reachable.
func (c *Client) Check(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodHead, "/", nil)
	if err != nil {
		return err
	}
	resp, err := c.do("health check", req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func readServiceMessage(r io.Reader) string {
	var m serviceMessage
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&m); err != nil {
		return ""
	}
	return m.text()
}
