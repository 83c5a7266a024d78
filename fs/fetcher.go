// Package fs provides a filesystem-backed implementation of
// sveltedocs.Fetcher for indexing from a local documentation snapshot.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/docforge/sveltedocs"
)

// Ensure Fetcher implements sveltedocs.Fetcher at compile time.
var _ sveltedocs.Fetcher = (*Fetcher)(nil)

// Fetcher resolves documentation URLs against a local directory. A URL
// like https://svelte.dev/docs/svelte/llms.txt maps to
// baseDir/svelte.dev/docs/svelte/llms.txt.
type Fetcher struct {
	baseDir string
}

// NewFetcher creates a Fetcher rooted at baseDir.
func NewFetcher(baseDir string) *Fetcher {
	return &Fetcher{baseDir: baseDir}
}

// Fetch reads the file the URL maps to and returns its content.
// Returns ENOTFOUND when no file exists for the URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := urlToPath(f.baseDir, rawURL)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", sveltedocs.Errorf(sveltedocs.ENOTFOUND, "no local file for %s", rawURL)
		}
		return "", err
	}

	return string(data), nil
}

// urlToPath maps a URL to a path under baseDir, rejecting anything that
// would escape the snapshot directory.
func urlToPath(baseDir, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", sveltedocs.Errorf(sveltedocs.EINVALID, "invalid URL %q", rawURL)
	}

	rel := filepath.Join(u.Host, filepath.FromSlash(strings.TrimPrefix(u.Path, "/")))
	path := filepath.Join(baseDir, rel)

	base := filepath.Clean(baseDir)
	if !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", sveltedocs.Errorf(sveltedocs.EINVALID, "URL %q escapes the snapshot directory", rawURL)
	}

	return path, nil
}
