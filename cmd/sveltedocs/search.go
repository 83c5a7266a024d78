package main

import (
	"fmt"
	"strings"

	"github.com/docforge/sveltedocs"
)

// contentPreviewLen bounds result content in the default listing.
const contentPreviewLen = 120

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	opts := sveltedocs.SearchOptions{
		DocType: sveltedocs.DocType(c.Type),
		Package: sveltedocs.Package(c.Package),
	}

	resp, err := deps.Search.Search(deps.Ctx, strings.Join(c.Query, " "), opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sveltedocs.ErrorMessage(err))
		return err
	}

	if len(resp.Results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found.")
	}

	for _, r := range resp.Results {
		fmt.Fprintf(deps.Stdout, "%.2f  %s", r.Relevance, r.DocumentID)
		if r.Category != "" {
			fmt.Fprintf(deps.Stdout, "  [%s]", r.Category)
		}
		fmt.Fprintln(deps.Stdout)

		if len(r.Hierarchy) > 0 {
			fmt.Fprintf(deps.Stdout, "      %s\n", strings.Join(r.Hierarchy, " > "))
		}
		if c.Full {
			fmt.Fprintln(deps.Stdout, r.Content)
		} else if preview := previewContent(r.Content); preview != "" {
			fmt.Fprintf(deps.Stdout, "      %s\n", preview)
		}
	}

	if len(resp.Suggestions) > 0 {
		terms := make([]string, len(resp.Suggestions))
		for i, s := range resp.Suggestions {
			terms[i] = s.Term
		}
		fmt.Fprintf(deps.Stdout, "Related: %s\n", strings.Join(terms, ", "))
	}

	return nil
}

// previewContent collapses content to a single truncated line.
func previewContent(content string) string {
	line := strings.Join(strings.Fields(content), " ")
	if len(line) > contentPreviewLen {
		line = line[:contentPreviewLen-3] + "..."
	}
	return line
}
