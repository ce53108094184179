package crawl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/goquery"
)

// SearchType selects the portal search mode.
type SearchType string

// Portal search modes: procedures ("Progetti") or documents.
const (
	SearchProjects  SearchType = "o"
	SearchDocuments SearchType = "d"
)

// searchEndpoint is the portal's full-text search path.
const searchEndpoint = "/it-IT/Ricerca/ViaLibera"

// Discoverer finds projects, procedure links, and document links by
// walking the portal's paginated listings.
type Discoverer struct {
	Config  viascan.Config
	Fetcher viascan.Fetcher
	Pager   *Pager
	Logger  *slog.Logger
}

// SearchURL builds the search URL for a keyword. The page selector is
// appended by the paginated walk, not here.
func (d *Discoverer) SearchURL(keyword string, st SearchType) string {
	params := url.Values{}
	params.Set("Testo", keyword)
	params.Set("t", string(st))
	return d.Config.BaseURL + searchEndpoint + "?" + params.Encode()
}

// DiscoverProjects walks the paginated search results for a keyword and
// returns the projects found, deduplicated by detail URL in first-seen
// order. Pages without the results table fall back to bare detail-link
// extraction; a page yielding neither contributes zero projects and is
// logged as a warning.
func (d *Discoverer) DiscoverProjects(ctx context.Context, keyword string, st SearchType) ([]*viascan.Project, error) {
	var projects []*viascan.Project
	seen := make(map[string]bool)

	searchURL := d.SearchURL(keyword, st)
	err := d.Pager.Walk(ctx, searchURL, func(page Page) error {
		found, err := goquery.ExtractProjects(page.HTML, d.Config.BaseURL)
		if err != nil {
			// Document-mode results carry no table; fall back to bare
			// detail links.
			found = d.projectsFromInfoLinks(page.HTML)
			if len(found) == 0 {
				d.logger().Warn("no results table on search page",
					"url", searchURL,
					"page", page.Number,
					"error", err,
				)
				return nil
			}
		}

		for _, p := range found {
			if seen[p.DetailURL] {
				continue
			}
			seen[p.DetailURL] = true
			projects = append(projects, p)
		}

		d.logger().Info("search page processed",
			"page", page.Number,
			"projects", len(projects),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// projectsFromInfoLinks builds bare projects from the detail links on a
// page. Document-mode search results list matching files rather than
// procedures, so the only project data available is the Info URL
// itself; the documentation URL is resolved later from the detail page.
func (d *Discoverer) projectsFromInfoLinks(html string) []*viascan.Project {
	links, err := goquery.ExtractLinks(html, d.Config.BaseURL, viascan.InfoPathFragment)
	if err != nil {
		return nil
	}

	var projects []*viascan.Project
	for _, link := range links {
		projects = append(projects, &viascan.Project{
			ID:        viascan.ProjectIDFromURL(link),
			DetailURL: link,
			Include:   true,
		})
	}
	return projects
}

// ProcedureLinks fetches a project detail page and returns its
// documentation-section links, deduplicated in first-seen order. A
// failed fetch is logged as a warning and yields zero links; the caller
// proceeds with whatever other procedures it has.
func (d *Discoverer) ProcedureLinks(ctx context.Context, detailURL string) []string {
	html, err := d.Fetcher.Fetch(ctx, detailURL)
	if err != nil {
		d.logger().Warn("could not retrieve detail page",
			"url", detailURL,
			"error", err,
		)
		return nil
	}

	links, err := goquery.ExtractLinks(html, d.Config.BaseURL, viascan.DocumentationPathFragment)
	if err != nil {
		d.logger().Warn("could not extract procedure links",
			"url", detailURL,
			"error", err,
		)
		return nil
	}

	d.logger().Info("procedure links found",
		"url", detailURL,
		"count", len(links),
	)
	return links
}

// DocumentLinks walks the paginated documents table of a procedure page
// and returns every download link. A page without the table is logged
// and contributes zero links; pages already collected are kept.
func (d *Discoverer) DocumentLinks(ctx context.Context, procedureURL string) []viascan.DocumentLink {
	var links []viascan.DocumentLink

	_ = d.Pager.Walk(ctx, procedureURL, func(page Page) error {
		found, err := goquery.ExtractDocumentLinks(page.HTML, d.Config.BaseURL)
		if err != nil {
			d.logger().Warn("no documents table on procedure page",
				"url", procedureURL,
				"page", page.Number,
				"error", err,
			)
			return nil
		}
		links = append(links, found...)
		return nil
	})

	d.logger().Info("document links found",
		"url", procedureURL,
		"count", len(links),
	)
	return links
}

func (d *Discoverer) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
