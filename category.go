package sveltedocs

import "strings"

// Result categories. Categories are mutually exclusive: classification
// checks them in priority order and the first match wins.
const (
	CategoryRunes      = "runes"
	CategoryComponents = "components"
	CategoryRouting    = "routing"
	CategoryError      = "error"
)

// runeKeywords are the sigil tokens whose presence classifies content as
// rune documentation.
var runeKeywords = []string{"$state", "$derived", "$effect", "$props", "$bindable", "$inspect"}

// Categorize classifies content into a topic category by keyword presence,
// or returns "" when no category applies.
func Categorize(content string) string {
	c := strings.ToLower(content)

	for _, kw := range runeKeywords {
		if strings.Contains(c, kw) {
			return CategoryRunes
		}
	}
	if strings.Contains(c, "component") || strings.Contains(c, "lifecycle") {
		return CategoryComponents
	}
	if strings.Contains(c, "route") || strings.Contains(c, "navigation") || strings.Contains(c, "sveltekit") {
		return CategoryRouting
	}
	if strings.Contains(c, "error") || strings.Contains(c, "warning") || strings.Contains(c, "debug") {
		return CategoryError
	}

	return ""
}
