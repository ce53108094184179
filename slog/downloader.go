package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mlodde/viascan"
)

// Ensure LoggingDownloader implements viascan.Downloader.
var _ viascan.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with per-file logging.
type LoggingDownloader struct {
	next   viascan.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next viascan.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the outcome.
func (d *LoggingDownloader) Download(ctx context.Context, link viascan.DocumentLink, destDir string) (res viascan.DownloadResult, err error) {
	defer func(begin time.Time) {
		d.logger.Info("download",
			"url", link.DownloadURL,
			"name", link.DisplayName,
			"status", res.Status,
			"bytes", res.SizeBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, link, destDir)
}
