package sveltedocs

// termWeights maps high-signal documentation terms to score multipliers.
// The table is fixed at compile time and never mutated at runtime; absent
// terms weigh 1.0.
var termWeights = map[string]float64{
	"$state":     1.5,
	"$derived":   1.5,
	"$effect":    1.5,
	"$props":     1.5,
	"$bindable":  1.4,
	"$inspect":   1.3,
	"$host":      1.2,
	"runes":      1.5,
	"rune":       1.5,
	"state":      1.4,
	"reactivity": 1.4,
	"component":  1.3,
	"props":      1.3,
	"lifecycle":  1.3,
	"routing":    1.3,
	"store":      1.3,
	"snippet":    1.2,
	"binding":    1.2,
	"transition": 1.2,
	"hydration":  1.2,
	"migration":  1.2,
	"load":       1.2,
}

// relatedTerms maps a seed term to an ordered list of associated terms used
// for suggestion generation. The associations carry no scoring weight of
// their own.
var relatedTerms = map[string][]string{
	"state":      {"$state", "runes", "reactivity", "store"},
	"props":      {"$props", "component", "$bindable"},
	"effect":     {"$effect", "reactivity", "lifecycle"},
	"derived":    {"$derived", "reactivity", "computed"},
	"component":  {"props", "lifecycle", "snippet"},
	"store":      {"state", "writable", "readable"},
	"routing":    {"navigation", "load", "page", "layout"},
	"load":       {"data", "server", "universal"},
	"binding":    {"bind", "$bindable", "input"},
	"transition": {"animation", "fade", "fly"},
	"snippet":    {"render", "children"},
	"error":      {"warning", "debug", "handling"},
	"migration":  {"runes", "breaking", "svelte5"},
}

// DefaultSigilWeight is the weight applied in fallback search to sigil terms
// that have no explicit table entry.
const DefaultSigilWeight = 1.5

// TermWeight returns the configured multiplier for a term, or 1.0 when the
// term is not in the weight table.
func TermWeight(term string) float64 {
	if w, ok := termWeights[term]; ok {
		return w
	}
	return 1.0
}

// WeightedTerm pairs a term or phrase with its fallback-search weight.
type WeightedTerm struct {
	Text   string
	Weight float64
	Phrase bool
}

// maxFallbackPlainTerms bounds how many unweighted plain terms join the
// fallback scoring list.
const maxFallbackPlainTerms = 3

// FallbackTerms builds the weighted list used by unstructured substring
// scoring when the structured pass found nothing.
//
// Terms containing the sigil or present in the weight table keep their
// configured weight (sigil-only terms default to DefaultSigilWeight). At
// most three additional plain terms longer than four characters join at
// weight 1.0, and every phrase joins at weight 2.0.
func FallbackTerms(terms, phrases []string) []WeightedTerm {
	var list []WeightedTerm

	plain := 0
	for _, t := range terms {
		switch {
		case containsSigil(t):
			w := DefaultSigilWeight
			if tw, ok := termWeights[t]; ok {
				w = tw
			}
			list = append(list, WeightedTerm{Text: t, Weight: w})
		case termWeights[t] != 0:
			list = append(list, WeightedTerm{Text: t, Weight: termWeights[t]})
		case len(t) > 4 && plain < maxFallbackPlainTerms:
			list = append(list, WeightedTerm{Text: t, Weight: 1.0})
			plain++
		}
	}

	for _, p := range phrases {
		list = append(list, WeightedTerm{Text: p, Weight: 2.0, Phrase: true})
	}

	return list
}

// containsSigil reports whether the term carries the rune sigil anywhere.
func containsSigil(term string) bool {
	for i := 0; i < len(term); i++ {
		if term[i] == Sigil {
			return true
		}
	}
	return false
}
