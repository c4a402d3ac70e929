package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meltforce/repflow/internal/models"
)

// HTTPClient implements DataSource by calling the RepFlow REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server. Requests carry the given bearer
// token, so the user scope is decided by the API, not the caller.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL,
// authenticating every request with the given bearer token.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) ListWorkoutSessions(ctx context.Context, _ int64) ([]models.WorkoutSession, error) {
	body, err := c.get(ctx, "/api/v1/sessions", nil)
	if err != nil {
		return nil, err
	}

	var sessions []models.WorkoutSession
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("httpclient: decode sessions: %w", err)
	}
	return sessions, nil
}

func (c *HTTPClient) ListWorkoutSessionsByDate(ctx context.Context, _ int64, date string) ([]models.WorkoutSession, error) {
	params := url.Values{}
	params.Set("date", date)

	body, err := c.get(ctx, "/api/v1/sessions", params)
	if err != nil {
		return nil, err
	}

	var sessions []models.WorkoutSession
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("httpclient: decode sessions: %w", err)
	}
	return sessions, nil
}

func (c *HTTPClient) GetWorkoutStats(ctx context.Context, _ int64) (*models.WorkoutStats, error) {
	body, err := c.get(ctx, "/api/v1/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats models.WorkoutStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("httpclient: decode stats: %w", err)
	}
	return &stats, nil
}

// GetStreak ignores the location parameter: day boundaries are decided
// by the API server's clock.
func (c *HTTPClient) GetStreak(ctx context.Context, _ int64, _ *time.Location) (int, error) {
	body, err := c.get(ctx, "/api/v1/streak", nil)
	if err != nil {
		return 0, err
	}

	var resp struct {
		Streak int `json:"streak"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("httpclient: decode streak: %w", err)
	}
	return resp.Streak, nil
}

func (c *HTTPClient) ListYogaLogs(ctx context.Context, _ int64) ([]models.YogaSessionLog, error) {
	body, err := c.get(ctx, "/api/v1/yoga/logs", nil)
	if err != nil {
		return nil, err
	}

	var logs []models.YogaSessionLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("httpclient: decode yoga logs: %w", err)
	}
	return logs, nil
}
