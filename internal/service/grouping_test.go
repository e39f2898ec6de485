package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vilaca/gh-repo-export/internal/domain"
)

// TestSimplifyUser tests the profile projection.
func TestSimplifyUser(t *testing.T) {
	// Arrange
	raw := domain.RawUser{Login: "octo", Name: strPtr("Octo"), PublicRepos: 3}

	// Act
	profile := SimplifyUser(raw)

	// Assert
	want := domain.Profile{Login: "octo", Name: strPtr("Octo"), PublicRepos: 3}
	if diff := cmp.Diff(want, profile); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

// TestSimplifyRepos tests the repository projection and link construction.
func TestSimplifyRepos(t *testing.T) {
	// Arrange
	raws := []domain.RawRepository{
		{Name: "a", FullName: "octo/a", Language: strPtr("Go"), Description: strPtr("desc")},
		{Name: "b", FullName: "org/b", Fork: true},
	}

	// Act
	repos := SimplifyRepos(raws)

	// Assert
	want := []domain.Repository{
		{Name: "a", Language: strPtr("Go"), Description: strPtr("desc"), Link: "https://github.com/octo/a"},
		{Name: "b", Link: "https://github.com/org/b", IsFork: true},
	}
	if diff := cmp.Diff(want, repos); diff != "" {
		t.Errorf("repos mismatch (-want +got):\n%s", diff)
	}
}

// TestSimplifyRepos_Empty tests that an empty input yields an empty, non-nil slice.
func TestSimplifyRepos_Empty(t *testing.T) {
	repos := SimplifyRepos(nil)
	if repos == nil || len(repos) != 0 {
		t.Errorf("expected empty slice, got %v", repos)
	}
}

// TestGroupByLanguage tests that grouping is a partition with forks isolated.
func TestGroupByLanguage(t *testing.T) {
	// Arrange
	repos := []domain.Repository{
		{Name: "a", Language: strPtr("Go")},
		{Name: "b", Language: strPtr("C")},
		{Name: "c"},
		{Name: "d", Language: strPtr("Go"), IsFork: true},
		{Name: "e", Language: strPtr("Go")},
		{Name: "f", Language: strPtr("")},
	}

	// Act
	groups := GroupByLanguage(repos)

	// Assert
	if diff := cmp.Diff([]string{domain.GroupForks, "Go", "C", domain.GroupOther}, groups.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	total := 0
	for _, key := range groups.Keys() {
		repos, _ := groups.Get(key)
		total += len(repos)
	}
	if total != len(repos) {
		t.Errorf("expected %d grouped repositories, got %d", len(repos), total)
	}

	goRepos, _ := groups.Get("Go")
	if diff := cmp.Diff([]string{"a", "e"}, names(goRepos)); diff != "" {
		t.Errorf("Go group mismatch (-want +got):\n%s", diff)
	}
	forks, _ := groups.Get(domain.GroupForks)
	if diff := cmp.Diff([]string{"d"}, names(forks)); diff != "" {
		t.Errorf("Forks group mismatch (-want +got):\n%s", diff)
	}
	other, _ := groups.Get(domain.GroupOther)
	if diff := cmp.Diff([]string{"c", "f"}, names(other)); diff != "" {
		t.Errorf("Other group mismatch (-want +got):\n%s", diff)
	}
}

// TestGroupByLanguage_NoForks tests that an unused Forks group never surfaces.
func TestGroupByLanguage_NoForks(t *testing.T) {
	// Arrange
	repos := []domain.Repository{{Name: "a", Language: strPtr("Go")}}

	// Act
	groups := GroupByLanguage(repos)

	// Assert
	if groups.Has(domain.GroupForks) {
		t.Error("expected no Forks group")
	}
	if diff := cmp.Diff([]string{"Go"}, groups.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

// TestGroupByLanguage_Empty tests grouping of no repositories.
func TestGroupByLanguage_Empty(t *testing.T) {
	groups := GroupByLanguage(nil)
	if groups.Len() != 0 {
		t.Errorf("expected no groups, got %v", groups.Keys())
	}
}

func names(repos []domain.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.Name)
	}
	return out
}
