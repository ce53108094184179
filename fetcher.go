package viascan

import "context"

// Fetcher retrieves HTML from listing and detail pages.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body.
	// Network errors, timeouts, and non-2xx responses are reported as
	// EUNAVAILABLE errors. The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
