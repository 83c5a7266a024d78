// Package mock provides mock implementations of sveltedocs interfaces for
// testing.
package mock

import (
	"context"

	"github.com/docforge/sveltedocs"
)

var _ sveltedocs.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of sveltedocs.DocumentService.
type DocumentService struct {
	UpsertDocumentsFn          func(ctx context.Context, docs []*sveltedocs.Document) error
	IndexDocumentFn            func(ctx context.Context, id, content string, importance float64) error
	FindDocumentByIDFn         func(ctx context.Context, id string) (*sveltedocs.Document, error)
	FindDocumentsFn            func(ctx context.Context, filter sveltedocs.DocumentFilter) ([]*sveltedocs.Document, error)
	DeleteDocumentsByPackageFn func(ctx context.Context, pkg sveltedocs.Package) error
}

func (s *DocumentService) UpsertDocuments(ctx context.Context, docs []*sveltedocs.Document) error {
	return s.UpsertDocumentsFn(ctx, docs)
}

func (s *DocumentService) IndexDocument(ctx context.Context, id, content string, importance float64) error {
	return s.IndexDocumentFn(ctx, id, content, importance)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*sveltedocs.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter sveltedocs.DocumentFilter) ([]*sveltedocs.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocumentsByPackage(ctx context.Context, pkg sveltedocs.Package) error {
	return s.DeleteDocumentsByPackageFn(ctx, pkg)
}
