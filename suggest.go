package sveltedocs

import (
	"sort"
	"strings"
)

// Suggestion is a related term offered for query reformulation.
type Suggestion struct {
	Term      string  `json:"term"`
	Relevance float64 `json:"relevance"`
}

// maxSuggestions caps the suggestion list length.
const maxSuggestions = 5

// partialMatchPenalty scales associations reached through a partial
// (substring) key match rather than an exact one.
const partialMatchPenalty = 0.8

// Suggest expands query terms into related terms via the static association
// table. Exact key matches contribute associations at their term weight;
// keys that are substrings of a query term (or vice versa) contribute theirs
// at a 0.8 penalty. Terms already in the query are never suggested. The
// result is sorted descending by relevance and capped at five entries.
//
// Suggest runs even when a search produced zero results, so callers can
// always offer reformulation hints.
func Suggest(queryTerms []string) []Suggestion {
	inQuery := make(map[string]bool, len(queryTerms))
	for _, t := range queryTerms {
		inQuery[t] = true
	}

	emitted := make(map[string]bool)
	var suggestions []Suggestion

	add := func(term string, relevance float64) {
		if inQuery[term] || emitted[term] {
			return
		}
		emitted[term] = true
		suggestions = append(suggestions, Suggestion{Term: term, Relevance: relevance})
	}

	// The partial-match pass walks the table keys in sorted order so ties at
	// the relevance cap resolve the same way on every call.
	keys := make([]string, 0, len(relatedTerms))
	for key := range relatedTerms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, t := range queryTerms {
		if len(t) <= minTermLength {
			continue
		}

		for _, assoc := range relatedTerms[t] {
			add(assoc, TermWeight(assoc))
		}

		for _, key := range keys {
			if key == t {
				continue
			}
			if !strings.Contains(key, t) && !strings.Contains(t, key) {
				continue
			}
			for _, assoc := range relatedTerms[key] {
				add(assoc, TermWeight(assoc)*partialMatchPenalty)
			}
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Relevance > suggestions[j].Relevance
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
