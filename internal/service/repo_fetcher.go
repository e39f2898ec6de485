package service

import (
	"context"
	"time"

	"github.com/vilaca/gh-repo-export/internal/api"
	"github.com/vilaca/gh-repo-export/internal/domain"
)

// Sleeper pauses between page requests.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper waits on a wall-clock timer.
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// maxPrealloc bounds the up-front allocation; total comes from the provider.
const maxPrealloc = 10 * api.DefaultPageSize

func preallocSize(total int) int {
	if total <= 0 {
		return 0
	}
	return min(total, maxPrealloc)
}

// RepoFetcher drives page-by-page retrieval of a user's repositories.
// Requests are strictly sequential with a fixed pause between pages.
type RepoFetcher struct {
	client  api.Client
	delay   time.Duration
	sleeper Sleeper
	logger  Logger
}

// NewRepoFetcher creates a new repository fetcher.
// A nil sleeper uses TimerSleeper.
func NewRepoFetcher(client api.Client, delay time.Duration, sleeper Sleeper, logger Logger) *RepoFetcher {
	if sleeper == nil {
		sleeper = TimerSleeper{}
	}
	return &RepoFetcher{
		client:  client,
		delay:   delay,
		sleeper: sleeper,
		logger:  logger,
	}
}

// FetchAll fetches every page implied by total and concatenates them in page order.
// The first failing page aborts the whole fetch.
func (f *RepoFetcher) FetchAll(ctx context.Context, login string, total int) ([]domain.RawRepository, error) {
	pages := api.PageCount(total)
	all := make([]domain.RawRepository, 0, preallocSize(total))

	for page := 1; page <= pages; page++ {
		f.logger.Printf("Fetching repositories page %d/%d for %s", page, pages, login)

		repos, err := f.client.GetReposPage(ctx, login, page)
		if err != nil {
			return nil, err
		}
		all = append(all, repos...)

		if page < pages && f.delay > 0 {
			if err := f.sleeper.Sleep(ctx, f.delay); err != nil {
				return nil, err
			}
		}
	}

	return all, nil
}
