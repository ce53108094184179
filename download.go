package viascan

import "context"

// DownloadStatus classifies the outcome of a single file download.
type DownloadStatus int

// Download outcomes. Skipped is the idempotent path: the destination
// file already existed, so nothing was written.
const (
	Downloaded DownloadStatus = iota
	Skipped
)

// String returns the status name for logs and summaries.
func (s DownloadStatus) String() string {
	switch s {
	case Downloaded:
		return "downloaded"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// DownloadResult describes a completed (or skipped) download.
type DownloadResult struct {
	Status    DownloadStatus
	LocalPath string
	SizeBytes int64
}

// Downloader streams a document to disk under a sanitized file name.
//
// The write is not atomic: an interruption mid-stream may leave a
// partial file on disk. This is a known limitation of the contract;
// callers must not treat an existing file as verified content.
type Downloader interface {
	// Download fetches link.DownloadURL into destDir using the sanitized
	// display name. If the destination already exists the download is
	// skipped. Errors are per-file: callers log them and continue with
	// the rest of the batch.
	Download(ctx context.Context, link DocumentLink, destDir string) (DownloadResult, error)
}
