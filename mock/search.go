package mock

import (
	"context"

	"github.com/docforge/sveltedocs"
)

var _ sveltedocs.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of sveltedocs.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts sveltedocs.SearchOptions) (*sveltedocs.SearchResponse, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts sveltedocs.SearchOptions) (*sveltedocs.SearchResponse, error) {
	return s.SearchFn(ctx, query, opts)
}
