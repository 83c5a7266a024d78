package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdhttp "github.com/docforge/sveltedocs/http"

	"github.com/docforge/sveltedocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("# Svelte\n\ndocs body"))
		}))
		defer srv.Close()

		f := sdhttp.NewFetcher()
		got, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "# Svelte\n\ndocs body", got)
	})

	t.Run("sends an identifying user agent", func(t *testing.T) {
		t.Parallel()

		var ua string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := sdhttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, ua, "sveltedocs")
	})

	t.Run("maps non-200 responses to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		f := sdhttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, sveltedocs.EUNAVAILABLE, sveltedocs.ErrorCode(err))
	})

	t.Run("maps transport failures to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		f := sdhttp.NewFetcher(sdhttp.WithTimeout(100 * time.Millisecond))
		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1")
		require.Error(t, err)
		assert.Equal(t, sveltedocs.EUNAVAILABLE, sveltedocs.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		f := sdhttp.NewFetcher()
		_, err := f.Fetch(ctx, srv.URL)
		assert.Error(t, err)
	})
}
