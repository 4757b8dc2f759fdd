package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL      = "http://127.0.0.1:4943"
	defaultFetchTimeout = 15 * time.Second

	jobsEndpoint    = "getAllJobs"
	usersEndpoint   = "getAllUsers"
	ratingsEndpoint = "getAllRating"
)

// NewClient instantiates a marketplace gateway client
func NewClient(cfg Config) (*Client, error) {
	if cfg.JobCanister == "" || cfg.UserCanister == "" || cfg.RatingCanister == "" {
		return nil, fmt.Errorf("marketplace: job, user, and rating canister ids are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &Client{
		baseURL:        baseURL,
		jobCanister:    cfg.JobCanister,
		userCanister:   cfg.UserCanister,
		ratingCanister: cfg.RatingCanister,
		httpClient:     httpClient,
		timeout:        timeout,
	}, nil
}

// ListJobs fetches every job posting
func (c *Client) ListJobs(ctx context.Context) ([]JobRecord, error) {
	var out []JobRecord
	if err := c.fetchList(ctx, jobsEndpoint, c.jobCanister, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUsers fetches every user profile
func (c *Client) ListUsers(ctx context.Context) ([]UserRecord, error) {
	var out []UserRecord
	if err := c.fetchList(ctx, usersEndpoint, c.userCanister, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRatings fetches every rating event
func (c *Client) ListRatings(ctx context.Context) ([]RatingRecord, error) {
	var out []RatingRecord
	if err := c.fetchList(ctx, ratingsEndpoint, c.ratingCanister, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// fetchList tries a structured POST with an empty JSON body first, then
// falls back to a plain GET. When both strategies fail the returned error
// carries both underlying messages.
func (c *Client) fetchList(ctx context.Context, endpoint, canisterID string, out any) error {
	postErr := c.attempt(ctx, http.MethodPost, endpoint, canisterID, out)
	if postErr == nil {
		return nil
	}

	getErr := c.attempt(ctx, http.MethodGet, endpoint, canisterID, out)
	if getErr == nil {
		return nil
	}

	return fmt.Errorf("marketplace: fetch %s: POST failed: %v; GET fallback failed: %v", endpoint, postErr, getErr)
}

func (c *Client) attempt(ctx context.Context, method, endpoint, canisterID string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader("{}")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	// the gateway routes by Host header, one virtual host per canister
	req.Host = canisterID + ".localhost"
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("gateway error (%d): %s", resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("expected a JSON list from %s", endpoint)
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
