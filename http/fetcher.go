// Package http provides an HTTP-based implementation of sveltedocs.Fetcher
// for retrieving documentation distributions from their published endpoints.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/docforge/sveltedocs"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// userAgent identifies the indexer to the documentation host.
const userAgent = "sveltedocs-indexer/1.0"

// Ensure Fetcher implements sveltedocs.Fetcher at compile time.
var _ sveltedocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw documentation text over HTTP.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET against the URL and returns the response body.
// Non-200 responses and transport failures surface as EUNAVAILABLE so
// callers can distinguish collaborator outages from their own bugs.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", sveltedocs.Errorf(sveltedocs.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", sveltedocs.Errorf(sveltedocs.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", sveltedocs.Errorf(sveltedocs.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}
