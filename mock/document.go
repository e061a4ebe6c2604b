package mock

import (
	"context"

	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of cdpdoc.DocumentService.
type DocumentService struct {
	CreateDocumentFn            func(ctx context.Context, doc *cdpdoc.Document) error
	FindDocumentByIDFn          func(ctx context.Context, id string) (*cdpdoc.Document, error)
	FindDocumentsFn             func(ctx context.Context, filter cdpdoc.DocumentFilter) ([]*cdpdoc.Document, error)
	DeleteDocumentsByPlatformFn func(ctx context.Context, platform cdpdoc.Platform) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *cdpdoc.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*cdpdoc.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter cdpdoc.DocumentFilter) ([]*cdpdoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocumentsByPlatform(ctx context.Context, platform cdpdoc.Platform) error {
	return s.DeleteDocumentsByPlatformFn(ctx, platform)
}
