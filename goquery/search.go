package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mlodde/viascan"
)

// Search-results table contract.
const (
	searchTableClass = "ElencoViaVasRicerca"
	minSearchColumns = 5
	titleColumn      = 0
	proponentColumn  = 1
	statusColumn     = 2
	infoColumn       = 3
	docColumn        = 4
)

// ExtractProjects walks the search-results table on a listing page and
// returns one Project per row that carries an info link. Rows with too
// few columns or no info anchor are skipped silently. A page without
// the table returns ENOTFOUND.
//
// Projects are returned with Include set: discovery marks everything
// for download and the user excludes from the catalog afterwards.
func ExtractProjects(html string, baseURL string) ([]*viascan.Project, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, viascan.Errorf(viascan.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, viascan.Errorf(viascan.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find("table." + searchTableClass).First()
	if table.Length() == 0 {
		return nil, viascan.Errorf(viascan.ENOTFOUND, "no %q table found", searchTableClass)
	}

	var projects []*viascan.Project

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}

		cols := row.Find("td")
		if cols.Length() < minSearchColumns {
			return
		}

		infoAnchor := cols.Eq(infoColumn).Find("a[href]").First()
		if infoAnchor.Length() == 0 {
			return
		}
		infoHref, _ := infoAnchor.Attr("href")
		detailURL := resolveURL(base, infoHref)
		if detailURL == "" {
			return
		}

		var docURL string
		if docAnchor := cols.Eq(docColumn).Find("a[href]").First(); docAnchor.Length() > 0 {
			docHref, _ := docAnchor.Attr("href")
			docURL = resolveURL(base, docHref)
		}

		projects = append(projects, &viascan.Project{
			ID:        viascan.ProjectIDFromURL(detailURL),
			Title:     strings.TrimSpace(cols.Eq(titleColumn).Text()),
			Proponent: strings.TrimSpace(cols.Eq(proponentColumn).Text()),
			Status:    strings.TrimSpace(cols.Eq(statusColumn).Text()),
			DetailURL: detailURL,
			DocURL:    docURL,
			Include:   true,
		})
	})

	return projects, nil
}
