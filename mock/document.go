package mock

import (
	"context"

	"github.com/mlodde/viascan"
)

var _ viascan.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of viascan.DocumentService.
type DocumentService struct {
	CreateDocumentFn func(ctx context.Context, doc *viascan.Document) error
	FindDocumentsFn  func(ctx context.Context, filter viascan.DocumentFilter) ([]*viascan.Document, error)
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *viascan.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter viascan.DocumentFilter) ([]*viascan.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}
