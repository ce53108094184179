package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mlodde/viascan"
)

// ExtractLinks returns the absolute URLs of all anchors whose href
// contains pathFragment, resolved against baseURL. Duplicates are
// dropped keeping the first occurrence, so insertion order is the
// document order of first appearance.
func ExtractLinks(html string, baseURL string, pathFragment string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, viascan.Errorf(viascan.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, viascan.Errorf(viascan.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || !strings.Contains(href, pathFragment) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// resolveURL resolves href against base, returning "" for unparseable
// hrefs.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
