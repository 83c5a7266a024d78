package mcp

import (
	"context"

	"github.com/docforge/sveltedocs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput is the input schema for the search_docs tool.
type SearchInput struct {
	Query   string `json:"query" jsonschema:"keywords or quoted phrases to search the documentation for"`
	DocType string `json:"doc_type,omitempty" jsonschema:"restrict results to a document type: api, tutorial, example, error, or all"`
	Package string `json:"package,omitempty" jsonschema:"restrict results to a package: svelte, kit, or cli"`
}

// SearchOutput is the output schema for the search_docs tool.
type SearchOutput struct {
	Results     []SearchResultOutput `json:"results"`
	Suggestions []SuggestionOutput   `json:"suggestions,omitempty"`
	Count       int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID string   `json:"document_id"`
	Package    string   `json:"package,omitempty"`
	DocType    string   `json:"doc_type"`
	Hierarchy  []string `json:"hierarchy,omitempty"`
	Category   string   `json:"category,omitempty"`
	Relevance  float64  `json:"relevance"`
	Content    string   `json:"content"`
}

// SuggestionOutput represents a related-term suggestion.
type SuggestionOutput struct {
	Term      string  `json:"term"`
	Relevance float64 `json:"relevance"`
}

// RefreshInput is the input schema for the refresh_index tool.
type RefreshInput struct {
	Package string `json:"package,omitempty" jsonschema:"re-index only this package: svelte, kit, or cli; empty re-indexes everything"`
}

// RefreshOutput is the output schema for the refresh_index tool.
type RefreshOutput struct {
	RunID   string `json:"run_id"`
	Sources int    `json:"sources"`
	Saved   int    `json:"saved"`
	Failed  int    `json:"failed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_docs",
		Description: "Search the Svelte and SvelteKit documentation index",
	}, s.handleSearchDocs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "refresh_index",
		Description: "Re-fetch and re-index the documentation sources",
	}, s.handleRefreshIndex)
}

// handleSearchDocs handles the search_docs tool invocation.
func (s *Server) handleSearchDocs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := sveltedocs.SearchOptions{
		DocType: sveltedocs.DocType(input.DocType),
		Package: sveltedocs.Package(input.Package),
	}

	resp, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(resp.Results)),
		Count:   len(resp.Results),
	}

	for i := range resp.Results {
		r := resp.Results[i]
		output.Results[i] = SearchResultOutput{
			DocumentID: r.DocumentID,
			Package:    string(r.Package),
			DocType:    string(r.Type),
			Hierarchy:  r.Hierarchy,
			Category:   r.Category,
			Relevance:  r.Relevance,
			Content:    r.Content,
		}
	}

	for _, sug := range resp.Suggestions {
		output.Suggestions = append(output.Suggestions, SuggestionOutput{
			Term:      sug.Term,
			Relevance: sug.Relevance,
		})
	}

	return nil, output, nil
}

// handleRefreshIndex handles the refresh_index tool invocation.
func (s *Server) handleRefreshIndex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RefreshInput,
) (*mcp.CallToolResult, RefreshOutput, error) {
	if s.ports.Refresher == nil {
		return nil, RefreshOutput{}, sveltedocs.Errorf(sveltedocs.EUNAVAILABLE, "no indexer configured")
	}

	result, err := s.ports.Refresher.Refresh(ctx, sveltedocs.Package(input.Package))
	if err != nil {
		return nil, RefreshOutput{}, err
	}

	return nil, RefreshOutput{
		RunID:   result.RunID,
		Sources: result.Sources,
		Saved:   result.Saved,
		Failed:  result.Failed,
	}, nil
}
