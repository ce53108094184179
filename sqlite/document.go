package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mlodde/viascan"
)

// Compile-time interface verification.
var _ viascan.DocumentService = (*DocumentService)(nil)

// DocumentService implements viascan.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument appends a ledger entry. The content hash is computed
// by the caller from the file on disk; the ledger stores it as given.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *viascan.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.DownloadedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, project_id, file_name, local_path, source_url, size_bytes, content_hash, downloaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.ProjectID, doc.FileName, doc.LocalPath, doc.SourceURL,
		doc.SizeBytes, doc.ContentHash, doc.DownloadedAt.Format(time.RFC3339))

	return err
}

// FindDocuments retrieves ledger entries matching the filter in
// download order, oldest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter viascan.DocumentFilter) ([]*viascan.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, project_id, file_name, local_path, source_url, size_bytes, content_hash, downloaded_at FROM documents WHERE 1=1")

	if filter.ProjectID != nil {
		query.WriteString(" AND project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY downloaded_at ASC, id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*viascan.Document
	for rows.Next() {
		var doc viascan.Document
		var downloadedAt string

		if err := rows.Scan(&doc.ID, &doc.ProjectID, &doc.FileName, &doc.LocalPath,
			&doc.SourceURL, &doc.SizeBytes, &doc.ContentHash, &downloadedAt); err != nil {
			return nil, err
		}

		if doc.DownloadedAt, err = parseRFC3339(downloadedAt, "downloaded_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}
