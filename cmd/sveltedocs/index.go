package main

import (
	"fmt"
	"time"

	"github.com/docforge/sveltedocs"
	"github.com/docforge/sveltedocs/indexer"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Indexer.Concurrency = c.Concurrency
	}

	progress := func(event indexer.ProgressEvent) {
		switch event.Type {
		case indexer.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  %s: %d documents\n", event.Source.URL, event.Documents)
		case indexer.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Source.URL, event.Error)
		}
	}

	var result *indexer.Result
	var err error
	if c.Package != "" {
		pkg := sveltedocs.Package(c.Package)
		if !pkg.Valid() {
			fmt.Fprintf(deps.Stderr, "error: unknown package %q\n", c.Package)
			return sveltedocs.Errorf(sveltedocs.EINVALID, "unknown package %q", c.Package)
		}
		deps.Indexer.Sources = indexer.SourcesForPackage(pkg)
	}
	result, err = deps.Indexer.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error indexing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d documents from %d sources in %s (%d failed)\n",
		result.Saved, result.Sources, result.Duration.Round(time.Millisecond), result.Failed)

	return nil
}
