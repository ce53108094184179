package viascan

import (
	"context"
	"time"
)

// Document is a ledger entry for a completed download. The file on disk
// is the dedup key; the ledger exists for auditing (size and content
// hash are recorded, never verified against the source).
type Document struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	FileName     string    `json:"fileName"`
	LocalPath    string    `json:"localPath"`
	SourceURL    string    `json:"sourceUrl"`
	SizeBytes    int64     `json:"sizeBytes"`
	ContentHash  string    `json:"contentHash"`
	DownloadedAt time.Time `json:"downloadedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ProjectID == "" {
		return Errorf(EINVALID, "document project ID required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// DocumentService records and queries downloaded files.
type DocumentService interface {
	// CreateDocument appends a ledger entry.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocuments retrieves ledger entries matching the filter in
	// download order.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ProjectID *string `json:"projectId"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
