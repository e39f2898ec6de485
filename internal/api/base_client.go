package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultPageSize is the number of items requested per page.
	DefaultPageSize = 100
	// DefaultPageDelay is the pause between consecutive page requests.
	DefaultPageDelay = 1000 * time.Millisecond
	// DefaultUserAgent identifies the exporter to the provider.
	DefaultUserAgent = "gh-repo-export/1.0"

	maxErrorBody = 512
)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// PageCount returns how many pages of DefaultPageSize hold total items.
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + DefaultPageSize - 1) / DefaultPageSize
}

// BaseClient contains the request plumbing shared by provider clients.
type BaseClient struct {
	BaseURL    string
	UserAgent  string
	HTTPClient HTTPClient
}

// NewBaseClient creates a new base client.
func NewBaseClient(baseURL, userAgent string, httpClient HTTPClient) *BaseClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &BaseClient{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		HTTPClient: httpClient,
	}
}

// GetJSON issues a GET request for url and decodes a 2xx response into result.
// Any transport, status or decoding failure is returned as a *FetchError tagged with op.
func (c *BaseClient) GetJSON(ctx context.Context, op, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{Op: op, URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &FetchError{Op: op, URL: url, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &FetchError{
			Op:         op,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &FetchError{Op: op, URL: url, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}
