package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/docforge/sveltedocs"
	main "github.com/docforge/sveltedocs/cmd/sveltedocs"
	"github.com/docforge/sveltedocs/indexer"
	"github.com/docforge/sveltedocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docsBody = "# Svelte API Reference\n\nIntro.\n\n## Runes\n\nThe $state rune declares reactive state.\n"

func testIndexer(fetch func(ctx context.Context, url string) (string, error)) *indexer.Indexer {
	return &indexer.Indexer{
		Fetcher: &mock.Fetcher{FetchFn: fetch},
		Documents: &mock.DocumentService{
			UpsertDocumentsFn: func(_ context.Context, _ []*sveltedocs.Document) error {
				return nil
			},
		},
		RetryDelays: []time.Duration{},
	}
}

func TestIndexCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("indexes all sources and prints a summary", func(t *testing.T) {
		t.Parallel()

		var urls []string
		ix := testIndexer(func(_ context.Context, url string) (string, error) {
			urls = append(urls, url)
			return docsBody, nil
		})
		ix.Concurrency = 1

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Indexer: ix,
		}

		cmd := &main.IndexCmd{Concurrency: 1}

		require.NoError(t, cmd.Run(deps))

		assert.Len(t, urls, len(indexer.DefaultSources()))
		assert.Contains(t, stdout.String(), "Indexed")
	})

	t.Run("limits indexing to one package", func(t *testing.T) {
		t.Parallel()

		var urls []string
		ix := testIndexer(func(_ context.Context, url string) (string, error) {
			urls = append(urls, url)
			return docsBody, nil
		})
		ix.Concurrency = 1

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Indexer: ix,
		}

		cmd := &main.IndexCmd{Package: "kit", Concurrency: 1}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, []string{"https://svelte.dev/docs/kit/llms.txt"}, urls)
	})

	t.Run("rejects an unknown package", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Indexer: &indexer.Indexer{},
		}

		cmd := &main.IndexCmd{Package: "react"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, sveltedocs.EINVALID, sveltedocs.ErrorCode(err))
	})

	t.Run("returns error when a mandatory source fails", func(t *testing.T) {
		t.Parallel()

		ix := testIndexer(func(_ context.Context, _ string) (string, error) {
			return "", sveltedocs.Errorf(sveltedocs.EUNAVAILABLE, "down")
		})
		ix.Concurrency = 1

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Indexer: ix,
		}

		cmd := &main.IndexCmd{Concurrency: 1}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error indexing")
	})
}
