package api

import (
	"context"

	"github.com/vilaca/gh-repo-export/internal/domain"
)

// Client defines the remote calls the export pipeline depends on.
// Consumers depend on this interface, not on a concrete provider.
type Client interface {
	// GetUser returns the profile record of login.
	GetUser(ctx context.Context, login string) (*domain.RawUser, error)

	// GetReposPage returns one page (1-based) of up to DefaultPageSize repositories owned by login.
	GetReposPage(ctx context.Context, login string, page int) ([]domain.RawRepository, error)
}

// ClientConfig holds common configuration for API clients.
type ClientConfig struct {
	BaseURL   string
	UserAgent string
}
