package report

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vilaca/gh-repo-export/internal/domain"
)

// newCollator returns the comparator shared by group and repository ordering.
// Collators keep internal buffers, so each render gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// GroupOrder returns the keys of groups in report order: language groups
// sorted by name, then Other, then Forks.
func GroupOrder(groups domain.LanguageGroups) []string {
	return groupOrder(newCollator(), groups.Keys())
}

func groupOrder(c *collate.Collator, keys []string) []string {
	var hasOther, hasForks bool
	languages := make([]string, 0, len(keys))
	for _, key := range keys {
		switch key {
		case domain.GroupOther:
			hasOther = true
		case domain.GroupForks:
			hasForks = true
		default:
			languages = append(languages, key)
		}
	}

	sort.SliceStable(languages, func(i, j int) bool {
		return c.CompareString(languages[i], languages[j]) < 0
	})

	if hasOther {
		languages = append(languages, domain.GroupOther)
	}
	if hasForks {
		languages = append(languages, domain.GroupForks)
	}
	return languages
}

// SortRepositories returns a copy of repos ordered by name.
// Repositories with equal names keep their relative order.
func SortRepositories(repos []domain.Repository) []domain.Repository {
	return sortRepositories(newCollator(), repos)
}

func sortRepositories(c *collate.Collator, repos []domain.Repository) []domain.Repository {
	sorted := make([]domain.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}

// SectionTitle returns the heading of a group section.
// Only the first character of a language name is upper-cased.
func SectionTitle(key string) string {
	switch key {
	case domain.GroupOther, domain.GroupForks:
		return "# " + key
	}

	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToUpper(r)) + key[size:]
}
