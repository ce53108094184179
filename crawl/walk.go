package crawl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/goquery"
)

// Page is one fetched page of a paginated resource.
type Page struct {
	Number int // 1-based
	HTML   string
}

// VisitFunc consumes one page of a paginated walk. Returning an error
// aborts the walk and is reported to the caller.
type VisitFunc func(page Page) error

// Pager drives a sequential fetch-then-parse walk over a paginated
// resource. The walk is finite and not restartable: every iteration
// issues new network calls.
type Pager struct {
	Fetcher viascan.Fetcher
	Limiter Limiter
	Logger  *slog.Logger
}

// Walk fetches page 1 of rawURL, derives the total page count once from
// its pagination label (absent label means a single page), and visits
// every page in order. Pages past the first are selected with the
// "pagina" query parameter and are preceded by a courtesy wait; the
// first fetch never waits.
//
// A fetch failure ends the walk with a warning and no error: partial
// results for a resource are acceptable. A visit error aborts the walk
// and is returned.
func (p *Pager) Walk(ctx context.Context, rawURL string, visit VisitFunc) error {
	total := 1

	for page := 1; page <= total; page++ {
		if page > 1 {
			if err := p.Limiter.Wait(ctx); err != nil {
				return err
			}
		}

		url := pageURL(rawURL, page)
		html, err := p.Fetcher.Fetch(ctx, url)
		if err != nil {
			p.logger().Warn("page fetch failed, stopping walk",
				"url", url,
				"page", page,
				"error", err,
			)
			return nil
		}

		if page == 1 {
			total = goquery.ParsePageCursor(html).Total
		}

		if err := visit(Page{Number: page, HTML: html}); err != nil {
			return err
		}
	}

	return nil
}

func (p *Pager) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// pageURL appends the 1-based page selector, omitted for page 1. The
// joiner depends on whether the base URL already carries a query
// string.
func pageURL(rawURL string, page int) string {
	if page <= 1 {
		return rawURL
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "pagina=" + strconv.Itoa(page)
}
