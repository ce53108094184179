package sqlite_test

import (
	"context"
	"testing"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testProject(id string) *viascan.Project {
	return &viascan.Project{
		ID:        id,
		Title:     "Parco eolico di prova",
		Proponent: "Energia SpA",
		Status:    "In corso",
		DetailURL: "https://va.example.test/it-IT/Oggetti/Info/" + id,
		DocURL:    "https://va.example.test/it-IT/Oggetti/Documentazione/" + id,
		Include:   true,
	}
}

func TestProjectService_CreateProject(t *testing.T) {
	t.Parallel()

	t.Run("creates project keyed by portal ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)
		ctx := context.Background()

		project := testProject("10217")
		require.NoError(t, svc.CreateProject(ctx, project))

		assert.False(t, project.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, project.UpdatedAt.IsZero(), "UpdatedAt should be set")

		found, err := svc.FindProjectByID(ctx, "10217")
		require.NoError(t, err)
		assert.Equal(t, "Parco eolico di prova", found.Title)
		assert.True(t, found.Include)
	})

	t.Run("rediscovery refreshes metadata but preserves include flag", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateProject(ctx, testProject("10217")))

		// User excludes the project from downloads.
		exclude := false
		_, err := svc.UpdateProject(ctx, "10217", viascan.ProjectUpdate{Include: &exclude})
		require.NoError(t, err)

		// A later search run sees the same project with an updated status.
		rediscovered := testProject("10217")
		rediscovered.Status = "Conclusa"
		require.NoError(t, svc.CreateProject(ctx, rediscovered))

		found, err := svc.FindProjectByID(ctx, "10217")
		require.NoError(t, err)
		assert.Equal(t, "Conclusa", found.Status)
		assert.False(t, found.Include, "include flag must survive rediscovery")
	})

	t.Run("returns error for invalid project", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)
		ctx := context.Background()

		err := svc.CreateProject(ctx, &viascan.Project{}) // missing required fields
		require.Error(t, err)
		assert.Equal(t, viascan.EINVALID, viascan.ErrorCode(err))
	})
}

func TestProjectService_FindProjectByID(t *testing.T) {
	t.Parallel()

	t.Run("returns project when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateProject(ctx, testProject("10217")))

		found, err := svc.FindProjectByID(ctx, "10217")
		require.NoError(t, err)
		assert.Equal(t, "10217", found.ID)
		assert.Equal(t, "Energia SpA", found.Proponent)
	})

	t.Run("returns ENOTFOUND when missing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)

		_, err := svc.FindProjectByID(context.Background(), "99999")
		require.Error(t, err)
		assert.Equal(t, viascan.ENOTFOUND, viascan.ErrorCode(err))
	})
}

func TestProjectService_FindProjects(t *testing.T) {
	t.Parallel()

	t.Run("filters by include flag", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateProject(ctx, testProject("1")))
		require.NoError(t, svc.CreateProject(ctx, testProject("2")))

		exclude := false
		_, err := svc.UpdateProject(ctx, "1", viascan.ProjectUpdate{Include: &exclude})
		require.NoError(t, err)

		include := true
		projects, err := svc.FindProjects(ctx, viascan.ProjectFilter{Include: &include})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "2", projects[0].ID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)
		ctx := context.Background()

		for _, id := range []string{"1", "2", "3"} {
			require.NoError(t, svc.CreateProject(ctx, testProject(id)))
		}

		projects, err := svc.FindProjects(ctx, viascan.ProjectFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	t.Parallel()

	t.Run("updates selected fields only", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateProject(ctx, testProject("10217")))

		status := "Conclusa"
		updated, err := svc.UpdateProject(ctx, "10217", viascan.ProjectUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, "Conclusa", updated.Status)
		assert.Equal(t, "Parco eolico di prova", updated.Title)
	})

	t.Run("returns ENOTFOUND when missing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)

		status := "Conclusa"
		_, err := svc.UpdateProject(context.Background(), "99999", viascan.ProjectUpdate{Status: &status})
		require.Error(t, err)
		assert.Equal(t, viascan.ENOTFOUND, viascan.ErrorCode(err))
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	t.Parallel()

	t.Run("deletes project and cascades to ledger", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		projects := sqlite.NewProjectService(db)
		documents := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, projects.CreateProject(ctx, testProject("10217")))
		require.NoError(t, documents.CreateDocument(ctx, &viascan.Document{
			ProjectID: "10217",
			FileName:  "doc1.pdf",
			SourceURL: "https://va.example.test/File/Documento/1",
		}))

		require.NoError(t, projects.DeleteProject(ctx, "10217"))

		_, err := projects.FindProjectByID(ctx, "10217")
		assert.Equal(t, viascan.ENOTFOUND, viascan.ErrorCode(err))

		pid := "10217"
		docs, err := documents.FindDocuments(ctx, viascan.DocumentFilter{ProjectID: &pid})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("returns ENOTFOUND when missing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)

		err := svc.DeleteProject(context.Background(), "99999")
		require.Error(t, err)
		assert.Equal(t, viascan.ENOTFOUND, viascan.ErrorCode(err))
	})
}
