package mock

import (
	"context"

	"github.com/mlodde/viascan"
)

var _ viascan.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of viascan.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, link viascan.DocumentLink, destDir string) (viascan.DownloadResult, error)
}

func (d *Downloader) Download(ctx context.Context, link viascan.DocumentLink, destDir string) (viascan.DownloadResult, error) {
	return d.DownloadFn(ctx, link, destDir)
}
