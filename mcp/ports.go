package mcp

import (
	"context"

	"github.com/docforge/sveltedocs"
	"github.com/docforge/sveltedocs/indexer"
)

// Refresher re-indexes documentation sources on demand.
type Refresher interface {
	Refresh(ctx context.Context, pkg sveltedocs.Package) (*indexer.Result, error)
}

// Ports aggregates the services the MCP server exposes. This is the single
// injection point for dependencies.
type Ports struct {
	Search    sveltedocs.SearchService
	Documents sveltedocs.DocumentService

	// Refresher is optional; without it the refresh tool reports
	// EUNAVAILABLE.
	Refresher Refresher
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	return nil
}
