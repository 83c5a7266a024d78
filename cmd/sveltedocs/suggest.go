package main

import (
	"fmt"

	"github.com/docforge/sveltedocs"
)

// Run executes the suggest command.
func (c *SuggestCmd) Run(deps *Dependencies) error {
	suggestions := sveltedocs.Suggest(c.Terms)

	if len(suggestions) == 0 {
		fmt.Fprintln(deps.Stdout, "No suggestions.")
		return nil
	}

	for _, s := range suggestions {
		fmt.Fprintf(deps.Stdout, "%.2f  %s\n", s.Relevance, s.Term)
	}

	return nil
}
