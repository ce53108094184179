// Package mock provides function-field test doubles for the viascan
// interfaces.
package mock

import (
	"context"

	"github.com/mlodde/viascan"
)

var _ viascan.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of viascan.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
