package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/docforge/sveltedocs"
)

// Compile-time interface verification.
var _ sveltedocs.SearchService = (*SearchService)(nil)

// SearchService implements sveltedocs.SearchService over the SQLite term
// index.
//
// Query shapes select one of four retrieval plans: phrase-only substring
// containment, weighted term aggregation over the index, a direct plan for
// the error/error collision, and an unstructured substring fallback that
// runs only when the weighted plan found nothing. The weighted plan scores
// with an OR across terms (any matching index entry contributes; documents
// need an aggregate score above zero), mirroring the fallback's OR policy.
// Relative order among equal scores follows the store's retrieval order and
// is unspecified.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// Search runs a query and returns scored, categorized results plus
// related-term suggestions. Suggestions are produced even when no results
// match.
func (s *SearchService) Search(ctx context.Context, query string, opts sveltedocs.SearchOptions) (*sveltedocs.SearchResponse, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	q := sveltedocs.ParseQuery(query)
	if q.IsEmpty() {
		return nil, sveltedocs.Errorf(sveltedocs.EINVALID, "query must contain at least one searchable term or phrase")
	}
	terms := q.UniqueTerms()

	primary := s.selectPlan(q, terms, opts)
	results, err := primary.run(ctx, s.db)
	if err != nil {
		return nil, err
	}

	// Substring fallback trades precision for recall, but only after the
	// precise term plan found nothing.
	if _, isTermPlan := primary.(termPlan); isTermPlan && len(results) == 0 {
		fb := fallbackPlan{terms: terms, phrases: q.Phrases, opts: opts}
		if results, err = fb.run(ctx, s.db); err != nil {
			return nil, err
		}
	}

	for i := range results {
		results[i].Category = sveltedocs.Categorize(results[i].Content)
	}

	return &sveltedocs.SearchResponse{
		Results:     sveltedocs.AssembleResults(results),
		Suggestions: sveltedocs.Suggest(terms),
	}, nil
}

// selectPlan picks the primary retrieval plan for the query shape.
func (s *SearchService) selectPlan(q sveltedocs.Query, terms []string, opts sveltedocs.SearchOptions) plan {
	// A lone "error" term with the error type filter would conflate the
	// term and the filter into a degenerate weighted plan; take the direct
	// path instead.
	if opts.DocType == sveltedocs.DocTypeError && len(terms) == 1 && terms[0] == "error" {
		return errorPlan{phrases: q.Phrases, opts: opts}
	}
	if q.PhraseOnly() {
		return phrasePlan{phrases: q.Phrases, opts: opts}
	}
	return termPlan{terms: terms, phrases: q.Phrases, opts: opts}
}

// plan is one retrieval strategy producing scored candidates.
type plan interface {
	run(ctx context.Context, db *DB) ([]sveltedocs.SearchResult, error)
}

// termPlan aggregates frequency × section importance × term weight over
// matching index entries.
type termPlan struct {
	terms   []string
	phrases []string
	opts    sveltedocs.SearchOptions
}

func (p termPlan) run(ctx context.Context, db *DB) ([]sveltedocs.SearchResult, error) {
	var (
		query strings.Builder
		args  []any
	)

	query.WriteString(`
		SELECT d.id, d.content, d.doc_type, d.package, d.hierarchy,
		       SUM(i.frequency * i.section_importance * CASE i.term`)
	for _, t := range p.terms {
		query.WriteString(" WHEN ? THEN ?")
		args = append(args, t, sveltedocs.TermWeight(t))
	}
	query.WriteString(` ELSE 1.0 END) AS score
		FROM documents d
		JOIN doc_index i ON i.doc_id = d.id
		WHERE i.term IN (` + placeholders(len(p.terms)) + `)`)
	for _, t := range p.terms {
		args = append(args, t)
	}

	appendSearchFilters(&query, &args, p.opts, "d")
	appendPhraseFilters(&query, &args, p.phrases, "d")

	query.WriteString(`
		GROUP BY d.id
		HAVING score > 0
		ORDER BY score DESC
		LIMIT ?`)
	args = append(args, sveltedocs.MaxResults)

	return queryResults(ctx, db, query.String(), args...)
}

// phrasePlan matches documents containing every phrase as a
// case-insensitive substring, at constant score, with no index lookup.
type phrasePlan struct {
	phrases []string
	opts    sveltedocs.SearchOptions
}

func (p phrasePlan) run(ctx context.Context, db *DB) ([]sveltedocs.SearchResult, error) {
	var (
		query strings.Builder
		args  []any
	)

	query.WriteString(`
		SELECT d.id, d.content, d.doc_type, d.package, d.hierarchy, 1.0 AS score
		FROM documents d
		WHERE 1=1`)
	appendPhraseFilters(&query, &args, p.phrases, "d")
	appendSearchFilters(&query, &args, p.opts, "d")

	query.WriteString(" LIMIT ?")
	args = append(args, sveltedocs.MaxResults)

	return queryResults(ctx, db, query.String(), args...)
}

// errorPlan is the direct plan for the error/error collision: term weight
// is implicit, so the score is frequency × section importance only. Quoted
// phrases stay mandatory substring filters on this path too.
type errorPlan struct {
	phrases []string
	opts    sveltedocs.SearchOptions
}

func (p errorPlan) run(ctx context.Context, db *DB) ([]sveltedocs.SearchResult, error) {
	var (
		query strings.Builder
		args  []any
	)

	query.WriteString(`
		SELECT d.id, d.content, d.doc_type, d.package, d.hierarchy,
		       SUM(i.frequency * i.section_importance) AS score
		FROM documents d
		JOIN doc_index i ON i.doc_id = d.id
		WHERE i.term = 'error' AND d.doc_type = 'error'`)
	if p.opts.Package != "" {
		query.WriteString(" AND d.package = ?")
		args = append(args, string(p.opts.Package))
	}
	appendPhraseFilters(&query, &args, p.phrases, "d")

	query.WriteString(`
		GROUP BY d.id
		ORDER BY score DESC
		LIMIT ?`)
	args = append(args, sveltedocs.MaxResults)

	return queryResults(ctx, db, query.String(), args...)
}

// fallbackPlan scores raw content by weighted substring containment. The
// term index can miss hits when tokenization boundaries differ from
// substring occurrence, so this path requires only one match across the
// whole weighted list.
type fallbackPlan struct {
	terms   []string
	phrases []string
	opts    sveltedocs.SearchOptions
}

func (p fallbackPlan) run(ctx context.Context, db *DB) ([]sveltedocs.SearchResult, error) {
	weighted := sveltedocs.FallbackTerms(p.terms, p.phrases)
	if len(weighted) == 0 {
		return nil, nil
	}

	var (
		query strings.Builder
		args  []any
	)

	query.WriteString(`
		SELECT id, content, doc_type, package, hierarchy, score FROM (
			SELECT d.id, d.content, d.doc_type, d.package, d.hierarchy, `)
	for i, wt := range weighted {
		if i > 0 {
			query.WriteString(" + ")
		}
		query.WriteString("CASE WHEN instr(lower(d.content), ?) > 0 THEN ? ELSE 0 END")
		args = append(args, wt.Text, wt.Weight)
	}
	query.WriteString(` AS score
			FROM documents d
			WHERE 1=1`)
	appendSearchFilters(&query, &args, p.opts, "d")

	query.WriteString(`
		)
		WHERE score > 0
		ORDER BY score DESC
		LIMIT ?`)
	args = append(args, sveltedocs.MaxResults)

	return queryResults(ctx, db, query.String(), args...)
}

// appendSearchFilters appends type and package equality constraints.
func appendSearchFilters(query *strings.Builder, args *[]any, opts sveltedocs.SearchOptions, alias string) {
	if opts.DocType != "" && opts.DocType != sveltedocs.DocTypeAll {
		query.WriteString(" AND " + alias + ".doc_type = ?")
		*args = append(*args, string(opts.DocType))
	}
	if opts.Package != "" {
		query.WriteString(" AND " + alias + ".package = ?")
		*args = append(*args, string(opts.Package))
	}
}

// appendPhraseFilters appends case-insensitive substring requirements, one
// per phrase, AND semantics.
func appendPhraseFilters(query *strings.Builder, args *[]any, phrases []string, alias string) {
	for _, phrase := range phrases {
		query.WriteString(" AND instr(lower(" + alias + ".content), ?) > 0")
		*args = append(*args, phrase)
	}
}

// placeholders renders n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// queryResults executes a plan query and scans scored results.
func queryResults(ctx context.Context, db *DB, query string, args ...any) ([]sveltedocs.SearchResult, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []sveltedocs.SearchResult
	for rows.Next() {
		var (
			r         sveltedocs.SearchResult
			pkg       sql.NullString
			hierarchy sql.NullString
		)
		if err := rows.Scan(&r.DocumentID, &r.Content, (*string)(&r.Type), &pkg, &hierarchy, &r.Relevance); err != nil {
			return nil, err
		}
		r.Package = sveltedocs.Package(pkg.String)
		r.Hierarchy = splitHierarchy(hierarchy)
		results = append(results, r)
	}

	return results, rows.Err()
}
