package service

import "github.com/vilaca/gh-repo-export/internal/domain"

// SimplifyUser projects a provider user record onto a Profile.
func SimplifyUser(raw domain.RawUser) domain.Profile {
	return domain.Profile{
		Login:       raw.Login,
		Name:        raw.Name,
		PublicRepos: raw.PublicRepos,
	}
}

// SimplifyRepos projects provider repository records onto Repositories, preserving order.
func SimplifyRepos(raws []domain.RawRepository) []domain.Repository {
	repos := make([]domain.Repository, 0, len(raws))
	for _, raw := range raws {
		repos = append(repos, domain.Repository{
			Name:        raw.Name,
			Language:    raw.Language,
			Description: raw.Description,
			Link:        domain.RepositoryLinkPrefix + raw.FullName,
			IsFork:      raw.Fork,
		})
	}
	return repos
}
