package sqlite_test

import (
	"context"
	"testing"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates entry with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		projects := sqlite.NewProjectService(db)
		documents := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, projects.CreateProject(ctx, testProject("10217")))

		doc := &viascan.Document{
			ProjectID:   "10217",
			FileName:    "relazione.pdf",
			LocalPath:   "downloads/10217/relazione.pdf",
			SourceURL:   "https://va.example.test/File/Documento/1",
			SizeBytes:   2048,
			ContentHash: "a1b2c3d4e5f60708",
		}
		require.NoError(t, documents.CreateDocument(ctx, doc))

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.False(t, doc.DownloadedAt.IsZero(), "DownloadedAt should be set")
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		documents := sqlite.NewDocumentService(db)

		err := documents.CreateDocument(context.Background(), &viascan.Document{})
		require.Error(t, err)
		assert.Equal(t, viascan.EINVALID, viascan.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("filters by project and source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		projects := sqlite.NewProjectService(db)
		documents := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, projects.CreateProject(ctx, testProject("1")))
		require.NoError(t, projects.CreateProject(ctx, testProject("2")))

		for _, d := range []*viascan.Document{
			{ProjectID: "1", FileName: "a.pdf", SourceURL: "https://va.example.test/File/Documento/1"},
			{ProjectID: "1", FileName: "b.pdf", SourceURL: "https://va.example.test/File/Documento/2"},
			{ProjectID: "2", FileName: "c.pdf", SourceURL: "https://va.example.test/File/Documento/3"},
		} {
			require.NoError(t, documents.CreateDocument(ctx, d))
		}

		pid := "1"
		docs, err := documents.FindDocuments(ctx, viascan.DocumentFilter{ProjectID: &pid})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a.pdf", docs[0].FileName)
		assert.Equal(t, "b.pdf", docs[1].FileName)

		src := "https://va.example.test/File/Documento/3"
		docs, err = documents.FindDocuments(ctx, viascan.DocumentFilter{SourceURL: &src})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "c.pdf", docs[0].FileName)
	})

	t.Run("returns empty result for unknown project", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		documents := sqlite.NewDocumentService(db)

		pid := "99999"
		docs, err := documents.FindDocuments(context.Background(), viascan.DocumentFilter{ProjectID: &pid})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}
