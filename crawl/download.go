package crawl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/mlodde/viascan"
)

// Result summarizes a download run. Partial success is the expected
// steady state: failures are counted, not escalated.
type Result struct {
	Links      int
	Downloaded int
	Skipped    int
	Failed     int
}

// Add accumulates another result into r.
func (r *Result) Add(other Result) {
	r.Links += other.Links
	r.Downloaded += other.Downloaded
	r.Skipped += other.Skipped
	r.Failed += other.Failed
}

// Pipeline orchestrates the discovery and download of one project's
// documents: procedure links, paginated document tables, and the
// per-file downloads, with per-file failure isolation.
type Pipeline struct {
	Config     viascan.Config
	Discoverer *Discoverer
	Downloader viascan.Downloader
	Limiter    Limiter
	Logger     *slog.Logger

	// Documents, when set, records completed downloads in the ledger.
	Documents viascan.DocumentService
}

// DownloadProject downloads every document of a project into
// <DownloadDir>/<project ID>. The project's documentation URL is used
// directly when known; otherwise the detail page is walked for
// procedure links. Download URLs already handled in this run are
// skipped via the frontier; files already on disk are skipped via the
// existence check. No per-file error aborts the batch.
func (p *Pipeline) DownloadProject(ctx context.Context, project *viascan.Project) Result {
	var res Result

	destDir := filepath.Join(p.Config.DownloadDir, project.ID)

	procedureURLs := []string{project.DocURL}
	if project.DocURL == "" {
		procedureURLs = p.Discoverer.ProcedureLinks(ctx, project.DetailURL)
	}

	frontier := NewFrontier()
	for _, procURL := range procedureURLs {
		for _, link := range p.Discoverer.DocumentLinks(ctx, procURL) {
			if !frontier.Push(link.DownloadURL) {
				continue
			}
			res.Links++
			p.downloadOne(ctx, project, link, destDir, &res)
		}
	}

	p.logger().Info("project download complete",
		"project", project.ID,
		"links", res.Links,
		"downloaded", res.Downloaded,
		"skipped", res.Skipped,
		"failed", res.Failed,
	)
	return res
}

// downloadOne performs a single download with the continue-on-error
// policy applied at this call site.
func (p *Pipeline) downloadOne(ctx context.Context, project *viascan.Project, link viascan.DocumentLink, destDir string, res *Result) {
	if err := p.Limiter.Wait(ctx); err != nil {
		res.Failed++
		return
	}

	dl, err := p.Downloader.Download(ctx, link, destDir)
	if err != nil {
		p.logger().Error("download failed",
			"url", link.DownloadURL,
			"name", link.DisplayName,
			"error", err,
		)
		res.Failed++
		return
	}

	switch dl.Status {
	case viascan.Skipped:
		p.logger().Info("file already exists, skipping",
			"path", dl.LocalPath,
		)
		res.Skipped++
	case viascan.Downloaded:
		p.logger().Info("file saved",
			"path", dl.LocalPath,
			"bytes", dl.SizeBytes,
		)
		res.Downloaded++
		p.record(ctx, project, link, dl)
	}
}

// record appends a ledger entry for a completed download. Ledger
// failures are logged and do not affect the batch.
func (p *Pipeline) record(ctx context.Context, project *viascan.Project, link viascan.DocumentLink, dl viascan.DownloadResult) {
	if p.Documents == nil {
		return
	}

	hash, err := hashFile(dl.LocalPath)
	if err != nil {
		p.logger().Warn("could not hash downloaded file",
			"path", dl.LocalPath,
			"error", err,
		)
	}

	doc := &viascan.Document{
		ProjectID:    project.ID,
		FileName:     filepath.Base(dl.LocalPath),
		LocalPath:    dl.LocalPath,
		SourceURL:    link.DownloadURL,
		SizeBytes:    dl.SizeBytes,
		ContentHash:  hash,
		DownloadedAt: time.Now().UTC(),
	}
	if err := p.Documents.CreateDocument(ctx, doc); err != nil {
		p.logger().Warn("could not record download in ledger",
			"path", dl.LocalPath,
			"error", err,
		)
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// hashFile computes the xxhash of a file's content, streamed.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return strconv.FormatUint(h.Sum64(), 16), nil
}
