package sveltedocs_test

import (
	"testing"

	"github.com/docforge/sveltedocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	t.Run("expands a seed term into its associations", func(t *testing.T) {
		t.Parallel()

		got := sveltedocs.Suggest([]string{"snippet"})

		terms := suggestionTerms(got)
		assert.Contains(t, terms, "render")
		assert.Contains(t, terms, "children")
	})

	t.Run("relevance comes from the term weight table", func(t *testing.T) {
		t.Parallel()

		got := sveltedocs.Suggest([]string{"state"})

		for _, s := range got {
			if s.Term == "$state" {
				assert.Equal(t, 1.5, s.Relevance)
				return
			}
		}
		t.Fatalf("expected $state suggestion, got %v", got)
	})

	t.Run("never suggests a term already in the query", func(t *testing.T) {
		t.Parallel()

		got := sveltedocs.Suggest([]string{"state", "store"})

		terms := suggestionTerms(got)
		assert.NotContains(t, terms, "state")
		assert.NotContains(t, terms, "store")
	})

	t.Run("partial key matches are penalized", func(t *testing.T) {
		t.Parallel()

		// "deriv" is a substring of the "derived" key but not a key itself.
		got := sveltedocs.Suggest([]string{"deriv"})
		require.NotEmpty(t, got)

		for _, s := range got {
			if s.Term == "computed" {
				// computed has no weight entry: 1.0 * 0.8.
				assert.InDelta(t, 0.8, s.Relevance, 1e-9)
				return
			}
		}
		t.Fatalf("expected computed suggestion, got %v", got)
	})

	t.Run("caps at five sorted descending", func(t *testing.T) {
		t.Parallel()

		got := sveltedocs.Suggest([]string{"state", "routing", "component", "error"})

		assert.LessOrEqual(t, len(got), 5)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Relevance, got[i].Relevance)
		}
	})

	t.Run("ties at the cap resolve the same way on every call", func(t *testing.T) {
		t.Parallel()

		// "ing" partially matches both the "binding" and "routing" keys,
		// yielding more tied candidates than the cap admits; the survivors
		// must not depend on iteration order.
		want := []string{"$bindable", "load", "bind", "input", "navigation"}
		for i := 0; i < 20; i++ {
			assert.Equal(t, want, suggestionTerms(sveltedocs.Suggest([]string{"ing"})))
		}
	})

	t.Run("ignores terms at or below the length floor", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, sveltedocs.Suggest([]string{"st"}))
	})

	t.Run("returns nothing for unknown terms", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, sveltedocs.Suggest([]string{"zzzznope"}))
	})
}

func suggestionTerms(suggestions []sveltedocs.Suggestion) []string {
	terms := make([]string, len(suggestions))
	for i, s := range suggestions {
		terms[i] = s.Term
	}
	return terms
}
