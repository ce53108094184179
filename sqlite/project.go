package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mlodde/viascan"
)

// Compile-time interface verification.
var _ viascan.ProjectService = (*ProjectService)(nil)

// ProjectService implements viascan.ProjectService using SQLite.
type ProjectService struct {
	db *DB
}

// NewProjectService creates a new ProjectService.
func NewProjectService(db *DB) *ProjectService {
	return &ProjectService{db: db}
}

// CreateProject adds a project to the catalog, keyed by its portal ID.
// Re-discovering an existing project refreshes its metadata but never
// touches the include flag or the original discovery time.
func (s *ProjectService) CreateProject(ctx context.Context, project *viascan.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, title, proponent, status, detail_url, doc_url, include, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			proponent = excluded.proponent,
			status = excluded.status,
			detail_url = excluded.detail_url,
			doc_url = excluded.doc_url,
			updated_at = excluded.updated_at
	`, project.ID, project.Title, project.Proponent, project.Status, project.DetailURL,
		project.DocURL, project.Include,
		project.CreatedAt.Format(time.RFC3339), project.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindProjectByID retrieves a project by portal ID.
func (s *ProjectService) FindProjectByID(ctx context.Context, id string) (*viascan.Project, error) {
	var project viascan.Project
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, proponent, status, detail_url, doc_url, include, created_at, updated_at
		FROM projects
		WHERE id = ?
	`, id).Scan(&project.ID, &project.Title, &project.Proponent, &project.Status,
		&project.DetailURL, &project.DocURL, &project.Include, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, viascan.Errorf(viascan.ENOTFOUND, "project not found")
	}
	if err != nil {
		return nil, err
	}

	if project.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if project.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &project, nil
}

// FindProjects retrieves projects matching the filter.
func (s *ProjectService) FindProjects(ctx context.Context, filter viascan.ProjectFilter) ([]*viascan.Project, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, proponent, status, detail_url, doc_url, include, created_at, updated_at FROM projects WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Include != nil {
		query.WriteString(" AND include = ?")
		args = append(args, *filter.Include)
	}

	query.WriteString(" ORDER BY created_at DESC, id DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*viascan.Project
	for rows.Next() {
		var project viascan.Project
		var createdAt, updatedAt string

		if err := rows.Scan(&project.ID, &project.Title, &project.Proponent, &project.Status,
			&project.DetailURL, &project.DocURL, &project.Include, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if project.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if project.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		projects = append(projects, &project)
	}

	return projects, rows.Err()
}

// UpdateProject updates an existing project.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, upd viascan.ProjectUpdate) (*viascan.Project, error) {
	project, err := s.FindProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		project.Title = *upd.Title
	}
	if upd.Proponent != nil {
		project.Proponent = *upd.Proponent
	}
	if upd.Status != nil {
		project.Status = *upd.Status
	}
	if upd.DocURL != nil {
		project.DocURL = *upd.DocURL
	}
	if upd.Include != nil {
		project.Include = *upd.Include
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	project.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE projects
		SET title = ?, proponent = ?, status = ?, doc_url = ?, include = ?, updated_at = ?
		WHERE id = ?
	`, project.Title, project.Proponent, project.Status, project.DocURL, project.Include,
		project.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject permanently removes a project. Ledger entries cascade.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return viascan.Errorf(viascan.ENOTFOUND, "project not found")
	}

	return nil
}
