package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"task-tracker-app/internal/task/adapter"
)

// DefaultTimeout bounds a single list call when the caller sets none.
const DefaultTimeout = 10 * time.Second

// Client is the HTTP wrapper for the upstream task tracker REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new task source HTTP client.
func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// ListTasks fetches raw task records via GET /api/v1/tasks. An empty monthID
// lists every task the source holds.
func (c *Client) ListTasks(ctx context.Context, monthID string) ([]adapter.Record, error) {
	endpoint := fmt.Sprintf("%s/api/v1/tasks", c.baseURL)
	if monthID != "" {
		endpoint += "?month=" + url.QueryEscape(monthID)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list tasks request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call task source list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("task source API list error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp ListTasksResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode task source list response: %w", err)
	}
	return listResp.Tasks, nil
}

// ListTasksResponse is the body of GET /api/v1/tasks.
type ListTasksResponse struct {
	Tasks []adapter.Record `json:"tasks"`
}
