package service

import "github.com/vilaca/gh-repo-export/internal/domain"

// GroupByLanguage partitions repos into language groups.
// Forks go to domain.GroupForks whatever their language; repositories
// without a language go to domain.GroupOther. The Forks group is only
// present when it holds at least one repository.
func GroupByLanguage(repos []domain.Repository) domain.LanguageGroups {
	groups := domain.NewLanguageGroups()
	groups.Ensure(domain.GroupForks)

	for _, repo := range repos {
		if repo.IsFork {
			groups.Append(domain.GroupForks, repo)
			continue
		}

		key := domain.GroupOther
		if repo.Language != nil && *repo.Language != "" {
			key = *repo.Language
		}
		groups.Append(key, repo)
	}

	if forks, _ := groups.Get(domain.GroupForks); len(forks) == 0 {
		groups.Delete(domain.GroupForks)
	}

	return groups
}
