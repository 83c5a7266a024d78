package main

import (
	"fmt"
	"strings"

	"github.com/docforge/sveltedocs"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sveltedocs.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, doc.Content)
		return nil
	}

	filter := sveltedocs.DocumentFilter{}
	if c.Package != "" {
		pkg := sveltedocs.Package(c.Package)
		if !pkg.Valid() {
			fmt.Fprintf(deps.Stderr, "error: unknown package %q\n", c.Package)
			return sveltedocs.Errorf(sveltedocs.EINVALID, "unknown package %q", c.Package)
		}
		filter.Package = &pkg
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sveltedocs.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'sveltedocs index' to build the index.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s", d.ID, d.Type)
		if len(d.Hierarchy) > 0 {
			fmt.Fprintf(deps.Stdout, "  %s", strings.Join(d.Hierarchy, " > "))
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
