package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mlodde/viascan"
	main "github.com/mlodde/viascan/cmd/viascan"
	"github.com/mlodde/viascan/crawl"
	"github.com/mlodde/viascan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentsPageHTML = `<html><body>
<table class="Documentazione">
<tr><th></th><th>Nome</th><th></th><th></th><th></th><th></th><th></th><th></th><th></th></tr>
<tr>
<td>1</td><td>relazione.pdf</td><td></td><td></td><td></td><td></td><td></td><td></td>
<td><a href="/File/Documento/55" title="Scarica il documento">scarica</a></td>
</tr>
</table>
</body></html>`

func newTestPipeline(fetcher viascan.Fetcher, downloader viascan.Downloader) *crawl.Pipeline {
	discoverer := newTestDiscoverer(fetcher)
	return &crawl.Pipeline{
		Config:     discoverer.Config,
		Discoverer: discoverer,
		Downloader: downloader,
		Limiter:    crawl.NewCourtesyLimiter(0),
	}
}

func TestDownloadCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("downloads every included project and prints a summary", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return documentsPageHTML, nil
			},
		}
		downloader := &mock.Downloader{
			DownloadFn: func(_ context.Context, link viascan.DocumentLink, destDir string) (viascan.DownloadResult, error) {
				return viascan.DownloadResult{
					Status:    viascan.Downloaded,
					LocalPath: destDir + "/" + link.DisplayName,
					SizeBytes: 10,
				}, nil
			},
		}

		projects := &mock.ProjectService{
			FindProjectsFn: func(_ context.Context, filter viascan.ProjectFilter) ([]*viascan.Project, error) {
				require.NotNil(t, filter.Include)
				require.True(t, *filter.Include)
				return []*viascan.Project{{
					ID:        "10217",
					Title:     "Parco eolico A",
					DetailURL: "https://va.example.test/it-IT/Oggetti/Info/10217",
					DocURL:    "https://va.example.test/it-IT/Oggetti/Documentazione/10217",
					Include:   true,
				}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Projects: projects,
			Pipeline: newTestPipeline(fetcher, downloader),
		}

		cmd := &main.DownloadCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Project 10217")
		assert.Contains(t, output, "1 downloaded")
		assert.Contains(t, output, "Done. 1 projects")
	})

	t.Run("downloads a single project by ID", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return documentsPageHTML, nil
			},
		}
		downloader := &mock.Downloader{
			DownloadFn: func(_ context.Context, link viascan.DocumentLink, destDir string) (viascan.DownloadResult, error) {
				return viascan.DownloadResult{Status: viascan.Skipped}, nil
			},
		}

		projects := &mock.ProjectService{
			FindProjectByIDFn: func(_ context.Context, id string) (*viascan.Project, error) {
				require.Equal(t, "10217", id)
				return &viascan.Project{
					ID:        "10217",
					DetailURL: "https://va.example.test/it-IT/Oggetti/Info/10217",
					DocURL:    "https://va.example.test/it-IT/Oggetti/Documentazione/10217",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Projects: projects,
			Pipeline: newTestPipeline(fetcher, downloader),
		}

		cmd := &main.DownloadCmd{ID: "10217"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "1 skipped")
	})

	t.Run("reports unknown project ID", func(t *testing.T) {
		t.Parallel()

		projects := &mock.ProjectService{
			FindProjectByIDFn: func(_ context.Context, id string) (*viascan.Project, error) {
				return nil, viascan.Errorf(viascan.ENOTFOUND, "project not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Projects: projects,
		}

		cmd := &main.DownloadCmd{ID: "99999"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("suggests include when nothing is selected", func(t *testing.T) {
		t.Parallel()

		projects := &mock.ProjectService{
			FindProjectsFn: func(_ context.Context, _ viascan.ProjectFilter) ([]*viascan.Project, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Projects: projects,
		}

		cmd := &main.DownloadCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No projects marked for download")
	})
}
