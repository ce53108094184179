// Package goquery parses the portal's HTML contract: the pagination
// control, detail-page links, the documents table, and the
// search-results table. Structural elements that are absent are treated
// as empty results, not parse errors; only a malformed document or base
// URL is reported.
package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mlodde/viascan"
)

// pageLabelRe matches the localized pagination label, e.g.
// "Pagina 2 di 8".
var pageLabelRe = regexp.MustCompile(`Pagina\s+(\d+)\s+di\s+(\d+)`)

// ParsePageCursor reads the pagination control from a listing page.
// The control is a list element with class "pagination" containing a
// label with class "etichettaRicerca". A page without the control, or
// with an unreadable label, is a single-page resource: {1, 1}.
func ParsePageCursor(html string) viascan.PageCursor {
	single := viascan.PageCursor{Current: 1, Total: 1}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return single
	}

	label := doc.Find("ul.pagination li.etichettaRicerca").First()
	if label.Length() == 0 {
		return single
	}

	m := pageLabelRe.FindStringSubmatch(label.Text())
	if m == nil {
		return single
	}

	current, _ := strconv.Atoi(m[1])
	total, _ := strconv.Atoi(m[2])
	if current < 1 || total < 1 {
		return single
	}

	return viascan.PageCursor{Current: current, Total: total}
}
