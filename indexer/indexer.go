// Package indexer orchestrates documentation ingestion. It fetches each
// distribution endpoint, converts HTML payloads to markdown when a host
// serves the wrong representation, splits the text into sections, and
// stores the resulting documents with their term indexes.
package indexer

import (
	"context"
	"net/url"
	"time"

	"github.com/docforge/sveltedocs"
	"github.com/docforge/sveltedocs/htmltomarkdown"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds the number of sources fetched in parallel.
const defaultConcurrency = 4

// Indexer coordinates fetching, parsing, and storage of documentation.
type Indexer struct {
	Fetcher     sveltedocs.Fetcher
	Converter   sveltedocs.Converter
	Documents   sveltedocs.DocumentService
	RateLimiter sveltedocs.HostLimiter

	// Sources overrides DefaultSources when non-nil.
	Sources []Source

	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of an indexing run.
type Result struct {
	RunID    string
	Sources  int
	Saved    int
	Failed   int
	Duration time.Duration
}

// ProgressEvent reports progress during an indexing run.
type ProgressEvent struct {
	Type      ProgressType
	Source    Source
	Documents int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting indexing progress.
type ProgressFunc func(event ProgressEvent)

// sourceResult holds the outcome of processing a single source.
type sourceResult struct {
	source Source
	docs   []*sveltedocs.Document
	err    error
}

// Run fetches and indexes every configured source. Mandatory sources that
// fail to fetch or yield no documents abort the run; optional sources are
// skipped and counted as failures.
func (ix *Indexer) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	sources := ix.Sources
	if sources == nil {
		sources = DefaultSources()
	}
	return ix.run(ctx, sources, progress)
}

// Refresh re-indexes the sources for a single package. An empty package
// refreshes everything.
func (ix *Indexer) Refresh(ctx context.Context, pkg sveltedocs.Package) (*Result, error) {
	if pkg == "" {
		return ix.Run(ctx, nil)
	}
	if !pkg.Valid() {
		return nil, sveltedocs.Errorf(sveltedocs.EINVALID, "invalid package %q", pkg)
	}

	sources := SourcesForPackage(pkg)
	if len(sources) == 0 {
		return nil, sveltedocs.Errorf(sveltedocs.ENOTFOUND, "no sources for package %q", pkg)
	}
	return ix.run(ctx, sources, nil)
}

func (ix *Indexer) run(ctx context.Context, sources []Source, progress ProgressFunc) (*Result, error) {
	start := time.Now()
	result := &Result{
		RunID:   uuid.NewString(),
		Sources: len(sources),
	}

	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted})
	}

	resultCh := make(chan sourceResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, src := range sources {
		src := src
		g.Go(func() error {
			docs, err := ix.processSource(gctx, src)
			resultCh <- sourceResult{source: src, docs: docs, err: err}
			if err != nil && src.Mandatory {
				return err
			}
			return nil
		})
	}

	err := g.Wait()
	close(resultCh)

	for sr := range resultCh {
		if sr.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Source: sr.source, Error: sr.err})
			}
			continue
		}

		if upErr := ix.Documents.UpsertDocuments(ctx, sr.docs); upErr != nil {
			if sr.source.Mandatory {
				return nil, upErr
			}
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Source: sr.source, Error: upErr})
			}
			continue
		}

		result.Saved += len(sr.docs)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Source: sr.source, Documents: len(sr.docs)})
		}
	}

	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Documents: result.Saved})
	}
	return result, nil
}

// processSource fetches one source and parses it into documents.
func (ix *Indexer) processSource(ctx context.Context, src Source) ([]*sveltedocs.Document, error) {
	if ix.RateLimiter != nil {
		u, err := url.Parse(src.URL)
		if err != nil {
			return nil, sveltedocs.Errorf(sveltedocs.EINVALID, "invalid source URL %q", src.URL)
		}
		if err := ix.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := ix.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	body, err := fetchWithRetry(ctx, src.URL, ix.Fetcher.Fetch, delays)
	if err != nil {
		return nil, err
	}

	// Some hosts answer llms.txt requests with an HTML error page.
	if htmltomarkdown.LooksLikeHTML(body) {
		if ix.Converter == nil {
			return nil, sveltedocs.Errorf(sveltedocs.EUNAVAILABLE, "HTML response from %s and no converter configured", src.URL)
		}
		body, err = ix.Converter.Convert(body)
		if err != nil {
			return nil, err
		}
	}

	docs := sveltedocs.ParseSections(body, src.Package, src.Variant)
	if len(docs) == 0 {
		return nil, sveltedocs.Errorf(sveltedocs.EUNAVAILABLE, "source %s produced no documents", src.URL)
	}

	return docs, nil
}
