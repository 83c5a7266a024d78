package sveltedocs

import (
	"regexp"
	"strings"
	"time"
)

var (
	sigilRe   = regexp.MustCompile(`\$[a-z0-9_]+`)
	blankLine = regexp.MustCompile(`\n\s*\n`)
)

// ParseSections splits raw documentation text for a package/variant into
// content units with hierarchy and type metadata.
//
// Sections are delimited by blank lines. A section starting with a top-level
// heading ("# ") resets the hierarchy to a single element and re-derives the
// document type by sniffing the heading; a second-level heading ("## ")
// appends or replaces the second hierarchy element; any other non-empty
// section becomes a Document.
func ParseSections(content string, pkg Package, variant Variant) []*Document {
	var (
		docs      []*Document
		hierarchy []string
		docType   = DocTypeAPI
		now       = time.Now().UTC()
	)

	for _, section := range blankLine.Split(content, -1) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		switch {
		case strings.HasPrefix(section, "## "):
			title := headingTitle(section, "## ")
			if len(hierarchy) == 0 {
				hierarchy = []string{title}
			} else {
				hierarchy = append(hierarchy[:1], title)
			}
		case strings.HasPrefix(section, "# "):
			title := headingTitle(section, "# ")
			hierarchy = []string{title}
			docType = SniffDocType(title, docType)
		default:
			doc := &Document{
				ID:          DocumentID(pkg, variant, hierarchy),
				Type:        docType,
				Package:     pkg,
				Variant:     variant,
				Content:     section,
				Hierarchy:   append([]string(nil), hierarchy...),
				LastUpdated: now,
			}
			docs = append(docs, doc)
		}
	}

	return docs
}

// headingTitle returns the first line of a heading section with the marker
// stripped. Body text under the heading in the same block is ignored.
func headingTitle(section, marker string) string {
	line, _, _ := strings.Cut(section, "\n")
	return strings.TrimSpace(strings.TrimPrefix(line, marker))
}

// SniffDocType derives a document type from a top-level heading by keyword
// presence, falling back to the previous type when nothing matches.
func SniffDocType(heading string, previous DocType) DocType {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "error") || strings.Contains(h, "warning") || strings.Contains(h, "troubleshoot"):
		return DocTypeError
	case strings.Contains(h, "tutorial") || strings.Contains(h, "getting started") || strings.Contains(h, "introduction"):
		return DocTypeTutorial
	case strings.Contains(h, "example") || strings.Contains(h, "recipe"):
		return DocTypeExample
	case strings.Contains(h, "api") || strings.Contains(h, "reference"):
		return DocTypeAPI
	}
	return previous
}

// ExtractTerms computes term frequencies for one content unit.
//
// Two term populations are extracted from the lower-cased text: general word
// tokens longer than two characters, and sigil-prefixed identifiers counted
// at any length. Where both populations produce the same term, the sigil
// count takes precedence.
func ExtractTerms(content string) map[string]int {
	lower := strings.ToLower(content)
	freq := make(map[string]int)

	for _, tok := range splitRe.Split(lower, -1) {
		if len(tok) > minTermLength {
			freq[tok]++
		}
	}

	sigils := make(map[string]int)
	for _, tok := range sigilRe.FindAllString(lower, -1) {
		sigils[tok]++
	}
	for term, n := range sigils {
		freq[term] = n
	}

	return freq
}
