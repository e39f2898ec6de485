package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vilaca/gh-repo-export/internal/api"
	"github.com/vilaca/gh-repo-export/internal/domain"
)

const defaultBaseURL = "https://api.github.com"

// Client implements api.Client for the GitHub REST API.
type Client struct {
	base *api.BaseClient
}

// NewClient creates a new GitHub client.
// Uses dependency injection for HTTPClient.
func NewClient(config api.ClientConfig, httpClient api.HTTPClient) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		base: api.NewBaseClient(baseURL, config.UserAgent, httpClient),
	}
}

// GetUser retrieves the public profile of login.
func (c *Client) GetUser(ctx context.Context, login string) (*domain.RawUser, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.base.BaseURL, url.PathEscape(login))

	var user domain.RawUser
	if err := c.base.GetJSON(ctx, "failed to get user", endpoint, &user); err != nil {
		var fetchErr *api.FetchError
		if errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusNotFound {
			fetchErr.Err = fmt.Errorf("user %q not found: %w", login, fetchErr.Err)
		}
		return nil, err
	}

	return &user, nil
}

// GetReposPage retrieves one page of public repositories owned by login.
func (c *Client) GetReposPage(ctx context.Context, login string, page int) ([]domain.RawRepository, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&page=%d",
		c.base.BaseURL, url.PathEscape(login), api.DefaultPageSize, page)

	var repos []domain.RawRepository
	op := fmt.Sprintf("failed to get repositories page %d", page)
	if err := c.base.GetJSON(ctx, op, endpoint, &repos); err != nil {
		return nil, err
	}

	return repos, nil
}
