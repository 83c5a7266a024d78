package mock

import (
	"context"

	"github.com/docforge/sveltedocs"
)

var _ sveltedocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sveltedocs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ sveltedocs.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of sveltedocs.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
