package service

import (
	"context"

	"github.com/vilaca/gh-repo-export/internal/api"
	"github.com/vilaca/gh-repo-export/internal/domain"
)

// ReportService runs the fetch, normalize and group pipeline for one user.
type ReportService struct {
	client  api.Client
	fetcher *RepoFetcher
	logger  Logger
	keepRaw bool
}

// NewReportService creates a new report service.
// When keepRaw is set, results carry the provider payloads they were built from.
func NewReportService(client api.Client, fetcher *RepoFetcher, logger Logger, keepRaw bool) *ReportService {
	return &ReportService{
		client:  client,
		fetcher: fetcher,
		logger:  logger,
		keepRaw: keepRaw,
	}
}

// Build fetches the profile and every repository of login and aggregates them.
// A profile without public repositories yields *EmptyProfileError before any
// repository page is requested.
func (s *ReportService) Build(ctx context.Context, login string) (*domain.AggregateResult, error) {
	rawUser, err := s.client.GetUser(ctx, login)
	if err != nil {
		return nil, err
	}

	profile := SimplifyUser(*rawUser)
	if profile.PublicRepos <= 0 {
		return nil, &EmptyProfileError{Login: login}
	}

	rawRepos, err := s.fetcher.FetchAll(ctx, login, profile.PublicRepos)
	if err != nil {
		return nil, err
	}

	repos := SimplifyRepos(rawRepos)
	result := &domain.AggregateResult{
		Profile:        profile,
		Repos:          repos,
		LanguageGroups: GroupByLanguage(repos),
	}
	if s.keepRaw {
		result.RawData = &domain.RawData{
			User:         *rawUser,
			Repositories: rawRepos,
		}
	}

	s.logger.Printf("Fetched %d repositories in %d groups for %s",
		len(repos), result.LanguageGroups.Len(), login)

	return result, nil
}
