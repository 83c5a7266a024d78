// Package slog provides logging decorators for sveltedocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docforge/sveltedocs"
)

// Ensure LoggingSearchService implements sveltedocs.SearchService.
var _ sveltedocs.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with query logging.
type LoggingSearchService struct {
	next   sveltedocs.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next sveltedocs.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Search(ctx context.Context, query string, opts sveltedocs.SearchOptions) (resp *sveltedocs.SearchResponse, err error) {
	defer func(begin time.Time) {
		var results, suggestions int
		if resp != nil {
			results = len(resp.Results)
			suggestions = len(resp.Suggestions)
		}
		s.logger.Info("search",
			"query", query,
			"doc_type", string(opts.DocType),
			"package", string(opts.Package),
			"results", results,
			"suggestions", suggestions,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, opts)
}
