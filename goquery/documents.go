package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mlodde/viascan"
)

// Documents-table contract: rows beyond the header need at least this
// many columns; the display name and the download anchor sit at fixed
// indexes.
const (
	documentsTableClass = "Documentazione"
	minDocumentColumns  = 9
	displayNameColumn   = 1
	downloadColumn      = 8
	downloadAnchorTitle = "Scarica il documento"
)

// ExtractDocumentLinks walks the documents table on a procedure page
// and returns one DocumentLink per row that carries a download anchor.
// Malformed rows (too few columns) and rows without a qualifying anchor
// are skipped silently. A page without the table returns ENOTFOUND so
// the caller can log a warning and treat it as zero links.
func ExtractDocumentLinks(html string, baseURL string) ([]viascan.DocumentLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, viascan.Errorf(viascan.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, viascan.Errorf(viascan.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find("table." + documentsTableClass).First()
	if table.Length() == 0 {
		return nil, viascan.Errorf(viascan.ENOTFOUND, "no %q table found", documentsTableClass)
	}

	var links []viascan.DocumentLink

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}

		cols := row.Find("td")
		if cols.Length() < minDocumentColumns {
			return
		}

		name := strings.TrimSpace(cols.Eq(displayNameColumn).Text())

		anchor := cols.Eq(downloadColumn).Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
			title, _ := a.Attr("title")
			return title == downloadAnchorTitle
		}).First()
		if anchor.Length() == 0 {
			return
		}

		href, _ := anchor.Attr("href")
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		links = append(links, viascan.DocumentLink{
			DownloadURL: resolved,
			DisplayName: name,
		})
	})

	return links, nil
}
