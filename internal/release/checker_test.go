package release

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, handler http.HandlerFunc) *Checker {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewChecker(WithBaseURL(server.URL))
}

func TestCheck(t *testing.T) {
	latest := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/willowed/persona/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v2.1.0","html_url":"https://example.com/v2.1.0"}`))
	}

	t.Run("update available", func(t *testing.T) {
		checker := newTestChecker(t, latest)
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.1.0", result.LatestVersion)
		assert.Equal(t, "https://example.com/v2.1.0", result.ReleaseURL)
	})

	t.Run("already latest", func(t *testing.T) {
		checker := newTestChecker(t, latest)
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.1.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("running ahead of latest", func(t *testing.T) {
		checker := newTestChecker(t, latest)
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v3.0.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("tag without v prefix", func(t *testing.T) {
		checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"2.1.0"}`))
		})
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.Equal(t, "v2.1.0", result.LatestVersion)
		assert.True(t, result.UpdateAvailable)
	})

	t.Run("dev build always offered update", func(t *testing.T) {
		checker := newTestChecker(t, latest)
		result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})

	t.Run("http error", func(t *testing.T) {
		checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("missing tag name", func(t *testing.T) {
		checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
	})
}
