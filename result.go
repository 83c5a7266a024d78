package sveltedocs

import (
	"context"
	"sort"
)

// MaxResults caps the number of results a search returns.
const MaxResults = 10

// SearchResult represents one scored search match. Results are derived per
// query and never persisted.
type SearchResult struct {
	DocumentID string   `json:"documentId"`
	Content    string   `json:"content"`
	Type       DocType  `json:"type"`
	Package    Package  `json:"package,omitempty"`
	Hierarchy  []string `json:"hierarchy,omitempty"`
	Relevance  float64  `json:"relevance"`
	Category   string   `json:"category,omitempty"`
}

// SearchResponse is the complete payload for one query.
type SearchResponse struct {
	Results     []SearchResult `json:"results"`
	Suggestions []Suggestion   `json:"relatedSuggestions,omitempty"`
}

// SearchOptions filters a search.
type SearchOptions struct {
	// DocType restricts results to one document type. Empty or DocTypeAll
	// matches every type.
	DocType DocType `json:"docType,omitempty"`

	// Package restricts results to one documentation package.
	Package Package `json:"package,omitempty"`
}

// Validate rejects filters outside the fixed enumerations before any store
// access happens.
func (o SearchOptions) Validate() error {
	if o.DocType != "" && o.DocType != DocTypeAll && !o.DocType.Valid() {
		return Errorf(EINVALID, "invalid document type %q", o.DocType)
	}
	if o.Package != "" && !o.Package.Valid() {
		return Errorf(EINVALID, "invalid package %q", o.Package)
	}
	return nil
}

// SearchService answers ranked keyword/phrase queries over the index.
type SearchService interface {
	// Search runs a query and returns at most MaxResults results sorted
	// descending by relevance, plus related-term suggestions. Relative
	// order among equal scores is unspecified: it is stable with respect
	// to the underlying retrieval order, nothing more.
	Search(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error)
}

// AssembleResults groups results by category (uncategorized results land in
// an "other" bucket), flattens the groups, and sorts descending by
// relevance. The grouping has no effect on the final ordering; it is kept
// as an extension point for category-aware presentation.
func AssembleResults(results []SearchResult) []SearchResult {
	groups := make(map[string][]SearchResult)
	for _, r := range results {
		cat := r.Category
		if cat == "" {
			cat = "other"
		}
		groups[cat] = append(groups[cat], r)
	}

	flat := make([]SearchResult, 0, len(results))
	for _, cat := range []string{CategoryRunes, CategoryComponents, CategoryRouting, CategoryError, "other"} {
		flat = append(flat, groups[cat]...)
	}

	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].Relevance > flat[j].Relevance
	})

	return flat
}
