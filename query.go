package sveltedocs

import (
	"regexp"
	"strings"
)

// Sigil is the prefix marking rune identifiers in Svelte documentation.
// Sigil-prefixed tokens are first-class searchable terms regardless of the
// general length floor.
const Sigil = '$'

// minTermLength is the exclusive lower bound on general term length.
// Tokens of this length or shorter are discarded unless sigil-prefixed.
const minTermLength = 2

var (
	phraseRe = regexp.MustCompile(`"([^"]*)"`)
	splitRe  = regexp.MustCompile(`[^a-z0-9_$]+`)
)

// Query is the decomposed form of a free-text search query.
type Query struct {
	// Phrases are the double-quoted spans, lower-cased, in order of
	// appearance. Each is an exact substring requirement.
	Phrases []string

	// Terms are the remaining normalized tokens, in order, duplicates
	// preserved. Use UniqueTerms for scoring.
	Terms []string
}

// IsEmpty reports whether the query has no searchable content.
func (q Query) IsEmpty() bool {
	return len(q.Phrases) == 0 && len(q.Terms) == 0
}

// PhraseOnly reports whether the query consists solely of phrases.
// Phrase-only queries take a substring-containment search path with no
// index lookup.
func (q Query) PhraseOnly() bool {
	return len(q.Terms) == 0 && len(q.Phrases) > 0
}

// UniqueTerms returns the de-duplicated term set in first-occurrence order.
func (q Query) UniqueTerms() []string {
	seen := make(map[string]bool, len(q.Terms))
	unique := make([]string, 0, len(q.Terms))
	for _, t := range q.Terms {
		if !seen[t] {
			seen[t] = true
			unique = append(unique, t)
		}
	}
	return unique
}

// ParseQuery tokenizes raw query text. Double-quoted spans become exact
// phrases and are removed from the text; the remainder is lower-cased,
// split on non-word characters, and filtered to terms longer than two
// characters. Sigil-prefixed tokens are kept regardless of length.
func ParseQuery(text string) Query {
	var q Query

	for _, m := range phraseRe.FindAllStringSubmatch(text, -1) {
		phrase := strings.ToLower(strings.TrimSpace(m[1]))
		if phrase != "" {
			q.Phrases = append(q.Phrases, phrase)
		}
	}

	rest := strings.ToLower(phraseRe.ReplaceAllString(text, " "))
	for _, tok := range splitRe.Split(rest, -1) {
		if isTerm(tok) {
			q.Terms = append(q.Terms, tok)
		}
	}

	return q
}

// isTerm reports whether a normalized token qualifies as a searchable term.
func isTerm(tok string) bool {
	if len(tok) > minTermLength {
		return true
	}
	return len(tok) > 1 && tok[0] == Sigil
}
