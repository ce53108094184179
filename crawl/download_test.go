package crawl_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/crawl"
	"github.com/mlodde/viascan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// procedurePage renders a single-page documents table with the given
// rows.
func procedurePage(rows ...string) string {
	html := `<html><body><table class="Documentazione"><tr><th>h</th></tr>`
	for _, r := range rows {
		html += r
	}
	return html + `</table></body></html>`
}

func newPipeline(t *testing.T, fetcher viascan.Fetcher, downloader viascan.Downloader, docs viascan.DocumentService) *crawl.Pipeline {
	t.Helper()

	cfg := testConfig()
	cfg.DownloadDir = t.TempDir()

	d := &crawl.Discoverer{
		Config:  cfg,
		Fetcher: fetcher,
		Pager: &crawl.Pager{
			Fetcher: fetcher,
			Limiter: &countingLimiter{},
			Logger:  discardLogger(),
		},
		Logger: discardLogger(),
	}

	return &crawl.Pipeline{
		Config:     cfg,
		Discoverer: d,
		Downloader: downloader,
		Limiter:    &countingLimiter{},
		Logger:     discardLogger(),
		Documents:  docs,
	}
}

func TestPipeline_DownloadProject(t *testing.T) {
	t.Parallel()

	project := &viascan.Project{
		ID:        "10217",
		DetailURL: "https://va.example.test/it-IT/Oggetti/Info/10217",
		DocURL:    "https://va.example.test/it-IT/Oggetti/Documentazione/10217",
		Include:   true,
	}

	t.Run("counts outcomes and isolates per-file failures", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return procedurePage(
					documentTableRow("ok.pdf", "/File/1"),
					documentTableRow("broken.pdf", "/File/2"),
					documentTableRow("present.pdf", "/File/3"),
				), nil
			},
		}
		downloader := &mock.Downloader{
			DownloadFn: func(_ context.Context, link viascan.DocumentLink, destDir string) (viascan.DownloadResult, error) {
				switch link.DisplayName {
				case "broken.pdf":
					return viascan.DownloadResult{}, viascan.Errorf(viascan.EUNAVAILABLE, "connection dropped")
				case "present.pdf":
					return viascan.DownloadResult{Status: viascan.Skipped, LocalPath: filepath.Join(destDir, link.DisplayName)}, nil
				default:
					path := filepath.Join(destDir, link.DisplayName)
					require.NoError(t, os.MkdirAll(destDir, 0755))
					require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0644))
					return viascan.DownloadResult{Status: viascan.Downloaded, LocalPath: path, SizeBytes: 4}, nil
				}
			},
		}

		var recorded []*viascan.Document
		docs := &mock.DocumentService{
			CreateDocumentFn: func(_ context.Context, doc *viascan.Document) error {
				recorded = append(recorded, doc)
				return nil
			},
		}

		p := newPipeline(t, fetcher, downloader, docs)
		res := p.DownloadProject(context.Background(), project)

		assert.Equal(t, 3, res.Links)
		assert.Equal(t, 1, res.Downloaded)
		assert.Equal(t, 1, res.Skipped)
		assert.Equal(t, 1, res.Failed)

		// Only the completed download lands in the ledger, with a
		// content hash of the file that was written.
		require.Len(t, recorded, 1)
		assert.Equal(t, "10217", recorded[0].ProjectID)
		assert.Equal(t, "ok.pdf", recorded[0].FileName)
		assert.Equal(t, "https://va.example.test/File/1", recorded[0].SourceURL)
		assert.NotEmpty(t, recorded[0].ContentHash)
	})

	t.Run("duplicate download URLs within a run are fetched once", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return procedurePage(
					documentTableRow("a.pdf", "/File/1"),
					documentTableRow("a-ripetuto.pdf", "/File/1"),
				), nil
			},
		}
		downloads := 0
		downloader := &mock.Downloader{
			DownloadFn: func(_ context.Context, link viascan.DocumentLink, destDir string) (viascan.DownloadResult, error) {
				downloads++
				return viascan.DownloadResult{Status: viascan.Skipped}, nil
			},
		}

		p := newPipeline(t, fetcher, downloader, nil)
		res := p.DownloadProject(context.Background(), project)

		assert.Equal(t, 1, res.Links)
		assert.Equal(t, 1, downloads)
	})

	t.Run("falls back to detail-page procedure links when DocURL is empty", func(t *testing.T) {
		t.Parallel()

		detailOnly := &viascan.Project{
			ID:        "9",
			DetailURL: "https://va.example.test/it-IT/Oggetti/Info/9",
		}

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == detailOnly.DetailURL {
					return `<a href="/it-IT/Oggetti/Documentazione/9">doc</a>`, nil
				}
				return procedurePage(documentTableRow("x.pdf", "/File/9")), nil
			},
		}
		downloader := &mock.Downloader{
			DownloadFn: func(_ context.Context, _ viascan.DocumentLink, _ string) (viascan.DownloadResult, error) {
				return viascan.DownloadResult{Status: viascan.Skipped}, nil
			},
		}

		p := newPipeline(t, fetcher, downloader, nil)
		res := p.DownloadProject(context.Background(), detailOnly)
		assert.Equal(t, 1, res.Links)
	})
}
