// Package http provides the HTTP implementations of viascan.Fetcher and
// viascan.Downloader. The portal serves static server-rendered HTML, so
// plain GET requests are sufficient.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/mlodde/viascan"
)

// DefaultFetchTimeout is the default timeout for listing-page requests.
const DefaultFetchTimeout = viascan.DefaultListTimeout

// Ensure Fetcher implements viascan.Fetcher at compile time.
var _ viascan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Transport errors
// and non-2xx responses are reported as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", viascan.Errorf(viascan.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", viascan.Errorf(viascan.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", viascan.Errorf(viascan.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", viascan.Errorf(viascan.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}
