package sqlite_test

import (
	"context"
	"testing"

	"github.com/docforge/sveltedocs"
	"github.com/docforge/sveltedocs/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCorpus populates a small but representative corpus.
func seedCorpus(t *testing.T, db *sqlite.DB) *sqlite.DocumentService {
	t.Helper()

	svc := sqlite.NewDocumentService(db)
	err := svc.UpsertDocuments(context.Background(), []*sveltedocs.Document{
		{
			ID:        "svelte-runes-state",
			Type:      sveltedocs.DocTypeAPI,
			Package:   sveltedocs.PackageSvelte,
			Content:   "$state declares reactive state. Use $state for local state management in components.",
			Hierarchy: []string{"Runes"},
		},
		{
			ID:        "svelte-stores",
			Type:      sveltedocs.DocTypeAPI,
			Package:   sveltedocs.PackageSvelte,
			Content:   "Stores hold state outside the component tree. State management with stores predates runes.",
			Hierarchy: []string{"Runes", "Stores"},
		},
		{
			ID:        "kit-routing",
			Type:      sveltedocs.DocTypeAPI,
			Package:   sveltedocs.PackageKit,
			Content:   "Routing in SvelteKit maps files to routes. Navigation happens through links.",
			Hierarchy: []string{"Routing"},
		},
		{
			ID:        "svelte-errors-compile",
			Type:      sveltedocs.DocTypeError,
			Package:   sveltedocs.PackageSvelte,
			Content:   "This error is raised by the compiler. An error code identifies each error.",
			Hierarchy: []string{"Errors"},
		},
		{
			ID:        "kit-errors-load",
			Type:      sveltedocs.DocTypeError,
			Package:   sveltedocs.PackageKit,
			Content:   "An error thrown in load is rendered by the nearest error boundary.",
			Hierarchy: []string{"Errors", "Load"},
		},
	})
	require.NoError(t, err)
	return svc
}

func TestSearchService_Search(t *testing.T) {
	t.Parallel()

	t.Run("ranks term matches by weighted frequency", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), "state", sveltedocs.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, resp.Results, 2)

		// svelte-runes-state: freq 2 ("state" twice outside sigil tokens),
		// importance 2.0, weight 1.4.
		assert.Equal(t, "svelte-runes-state", resp.Results[0].DocumentID)
		assert.InDelta(t, 2*2.0*1.4, resp.Results[0].Relevance, 1e-9)

		// svelte-stores: freq 2, importance 1.0, weight 1.4.
		assert.Equal(t, "svelte-stores", resp.Results[1].DocumentID)
		assert.InDelta(t, 2*1.0*1.4, resp.Results[1].Relevance, 1e-9)
	})

	t.Run("results are capped and sorted non-increasing", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		var docs []*sveltedocs.Document
		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
			docs = append(docs, &sveltedocs.Document{
				ID:      "svelte-" + id,
				Type:    sveltedocs.DocTypeAPI,
				Package: sveltedocs.PackageSvelte,
				Content: "hydration notes " + id,
			})
		}
		require.NoError(t, svc.UpsertDocuments(ctx, docs))

		search := sqlite.NewSearchService(db)
		resp, err := search.Search(ctx, "hydration", sveltedocs.SearchOptions{})
		require.NoError(t, err)

		assert.Len(t, resp.Results, sveltedocs.MaxResults)
		for i := 1; i < len(resp.Results); i++ {
			assert.GreaterOrEqual(t, resp.Results[i-1].Relevance, resp.Results[i].Relevance)
		}
	})

	t.Run("phrase-only search scores a constant 1.0 with no index lookup", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), `"state management"`, sveltedocs.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, resp.Results, 2)

		for _, r := range resp.Results {
			assert.Equal(t, 1.0, r.Relevance)
		}
	})

	t.Run("phrases are mandatory substrings in term search", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), `stores "outside the component tree"`, sveltedocs.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "svelte-stores", resp.Results[0].DocumentID)
	})

	t.Run("sigil terms match below the general length floor", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), "$state", sveltedocs.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)

		// freq 2, importance 2.0, weight 1.5.
		assert.Equal(t, "svelte-runes-state", resp.Results[0].DocumentID)
		assert.InDelta(t, 2*2.0*1.5, resp.Results[0].Relevance, 1e-9)
	})

	t.Run("error term with error type filter takes the direct plan", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), "error",
			sveltedocs.SearchOptions{DocType: sveltedocs.DocTypeError})
		require.NoError(t, err)
		require.Len(t, resp.Results, 2)

		// Scored by frequency × section importance only: the 1.2 table
		// weight for "error" must not be applied on this path.
		assert.Equal(t, "svelte-errors-compile", resp.Results[0].DocumentID)
		assert.InDelta(t, 3*2.0, resp.Results[0].Relevance, 1e-9)
		assert.Equal(t, "kit-errors-load", resp.Results[1].DocumentID)
		assert.InDelta(t, 2*1.0, resp.Results[1].Relevance, 1e-9)
	})

	t.Run("phrases stay mandatory on the error direct plan", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), `error "nearest error boundary"`,
			sveltedocs.SearchOptions{DocType: sveltedocs.DocTypeError})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)

		// Only the error document containing the quoted phrase may come
		// back; the compile-errors document matches the term but not the
		// phrase.
		assert.Equal(t, "kit-errors-load", resp.Results[0].DocumentID)
		assert.InDelta(t, 2*1.0, resp.Results[0].Relevance, 1e-9)
	})

	t.Run("package filter is absolute", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), "routing",
			sveltedocs.SearchOptions{Package: sveltedocs.PackageKit})
		require.NoError(t, err)

		for _, r := range resp.Results {
			assert.Equal(t, sveltedocs.PackageKit, r.Package)
		}
	})

	t.Run("falls back to substring scoring when the index misses", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		// "navig" has no index entry (the index holds "navigation") but is
		// a substring of the routing doc's content.
		resp, err := search.Search(context.Background(), "navig", sveltedocs.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "kit-routing", resp.Results[0].DocumentID)
		assert.Equal(t, 1.0, resp.Results[0].Relevance)
	})

	t.Run("unknown terms return empty results but may still suggest", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), "xylophone", sveltedocs.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
	})

	t.Run("suggestions accompany results", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), "state", sveltedocs.SearchOptions{})
		require.NoError(t, err)

		require.NotEmpty(t, resp.Suggestions)
		assert.LessOrEqual(t, len(resp.Suggestions), 5)
		for _, s := range resp.Suggestions {
			assert.NotEqual(t, "state", s.Term)
		}
	})

	t.Run("categorizes results", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		seedCorpus(t, db)
		search := sqlite.NewSearchService(db)

		resp, err := search.Search(context.Background(), "$state", sveltedocs.SearchOptions{})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, sveltedocs.CategoryRunes, resp.Results[0].Category)
	})

	t.Run("rejects malformed filters before store access", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		search := sqlite.NewSearchService(db)

		_, err := search.Search(context.Background(), "state", sveltedocs.SearchOptions{DocType: "blog"})
		require.Error(t, err)
		assert.Equal(t, sveltedocs.EINVALID, sveltedocs.ErrorCode(err))
	})

	t.Run("rejects queries with nothing searchable", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		search := sqlite.NewSearchService(db)

		_, err := search.Search(context.Background(), "a b", sveltedocs.SearchOptions{})
		require.Error(t, err)
		assert.Equal(t, sveltedocs.EINVALID, sveltedocs.ErrorCode(err))
	})
}
