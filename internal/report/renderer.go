package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/vilaca/gh-repo-export/internal/domain"
)

const (
	attributionURL  = "https://github.com/kirklin/gh-repo-export"
	attributionText = "github.com/kirklin/gh-repo-export"
)

//go:embed templates/repos.html.tmpl
var reposTemplate string

var reposTmpl = template.Must(template.New("repos").Parse(reposTemplate))

// HTMLRenderer renders aggregate results as a JSON document and an HTML page.
// Rendering never touches the network or the filesystem and never modifies its input.
type HTMLRenderer struct{}

// NewHTMLRenderer creates a new HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// RenderJSON writes result as JSON indented with two spaces.
func (r *HTMLRenderer) RenderJSON(w io.Writer, result *domain.AggregateResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// RenderHTML writes the repository page for result.
func (r *HTMLRenderer) RenderHTML(w io.Writer, result *domain.AggregateResult) error {
	if err := reposTmpl.Execute(w, buildPageView(result)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

type pageView struct {
	Title           string
	Sections        []sectionView
	AttributionURL  string
	AttributionText string
}

type sectionView struct {
	Title string
	Repos []repoView
}

type repoView struct {
	Name        string
	Link        string
	Description string
}

func buildPageView(result *domain.AggregateResult) pageView {
	c := newCollator()
	groups := result.LanguageGroups
	keys := groupOrder(c, groups.Keys())

	sections := make([]sectionView, 0, len(keys))
	for _, key := range keys {
		repos, _ := groups.Get(key)
		sorted := sortRepositories(c, repos)

		views := make([]repoView, 0, len(sorted))
		for _, repo := range sorted {
			view := repoView{Name: repo.Name, Link: repo.Link}
			if repo.Description != nil {
				view.Description = *repo.Description
			}
			views = append(views, view)
		}

		sections = append(sections, sectionView{
			Title: SectionTitle(key),
			Repos: views,
		})
	}

	return pageView{
		Title:           result.Profile.DisplayName() + " GitHub Repositories",
		Sections:        sections,
		AttributionURL:  attributionURL,
		AttributionText: attributionText,
	}
}
