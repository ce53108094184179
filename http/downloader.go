package http

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/fs"
)

// DefaultDownloadTimeout is the default timeout for file downloads.
// Larger than the listing timeout because document files can be big.
const DefaultDownloadTimeout = viascan.DefaultFileTimeout

// downloadChunkSize is the copy buffer size for streaming bodies to
// disk. The body is never buffered whole in memory.
const downloadChunkSize = 8192

// Ensure Downloader implements viascan.Downloader at compile time.
var _ viascan.Downloader = (*Downloader)(nil)

// Downloader streams document files to disk.
type Downloader struct {
	client  *http.Client
	timeout time.Duration
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithDownloadTimeout sets the timeout for download requests.
// Defaults to DefaultDownloadTimeout (20s) if not specified.
func WithDownloadTimeout(d time.Duration) DownloaderOption {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// NewDownloader creates a new HTTP-based Downloader.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	dl := &Downloader{
		timeout: DefaultDownloadTimeout,
	}
	for _, opt := range opts {
		opt(dl)
	}

	dl.client = &http.Client{
		Timeout: dl.timeout,
	}

	return dl
}

// Download fetches the file behind link into destDir. The display name
// is sanitized into a filesystem-safe name; an existing destination file
// makes the call a no-op reported as Skipped, which keeps whole-pipeline
// re-runs idempotent.
//
// The body is streamed to the destination in fixed-size chunks. The
// write is not atomic: a failure mid-stream may leave a partial file.
func (d *Downloader) Download(ctx context.Context, link viascan.DocumentLink, destDir string) (viascan.DownloadResult, error) {
	name := fs.SanitizeFilename(link.DisplayName)
	path := filepath.Join(destDir, name)

	if _, err := os.Stat(path); err == nil {
		return viascan.DownloadResult{Status: viascan.Skipped, LocalPath: path}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link.DownloadURL, nil)
	if err != nil {
		return viascan.DownloadResult{}, viascan.Errorf(viascan.EINVALID, "invalid download URL %q: %v", link.DownloadURL, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return viascan.DownloadResult{}, viascan.Errorf(viascan.EUNAVAILABLE, "download %s: %v", link.DownloadURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return viascan.DownloadResult{}, viascan.Errorf(viascan.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, link.DownloadURL)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return viascan.DownloadResult{}, err
	}

	f, err := os.Create(path)
	if err != nil {
		return viascan.DownloadResult{}, err
	}

	written, err := io.CopyBuffer(f, resp.Body, make([]byte, downloadChunkSize))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return viascan.DownloadResult{}, viascan.Errorf(viascan.EUNAVAILABLE, "write %s: %v", path, err)
	}

	return viascan.DownloadResult{
		Status:    viascan.Downloaded,
		LocalPath: path,
		SizeBytes: written,
	}, nil
}
