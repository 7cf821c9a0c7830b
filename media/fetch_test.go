package media

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcherEncodeURLToBase64(t *testing.T) {
	body := []byte("GIF89a fake image bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write(body)
	}))
	defer server.Close()

	f := NewFetcher(Config{MaxFetchBytes: 1024, FetchTimeout: 5 * time.Second, UserAgent: "easel-test"})

	t.Run("encodes fetched body", func(t *testing.T) {
		out, err := f.EncodeURLToBase64(server.URL+"/img", WithMIME("image/gif"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "data:image/gif;base64,"))
	})

	t.Run("error status fails", func(t *testing.T) {
		_, err := f.EncodeURLToBase64(server.URL + "/missing")
		assert.ErrorContains(t, err, "unexpected status")
	})

	t.Run("oversized body fails", func(t *testing.T) {
		small := NewFetcher(Config{MaxFetchBytes: 4, FetchTimeout: 5 * time.Second})
		_, err := small.EncodeURLToBase64(server.URL + "/img")
		assert.ErrorContains(t, err, "exceeds limit")
	})

	t.Run("oversized streamed body fails at the cap", func(t *testing.T) {
		// Chunked transfer carries no Content-Length, so the limit must
		// bound the read itself.
		streaming := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			chunk := make([]byte, 1024)
			for i := 0; i < 8; i++ {
				w.Write(chunk)
				w.(http.Flusher).Flush()
			}
		}))
		defer streaming.Close()

		small := NewFetcher(Config{MaxFetchBytes: 2048, FetchTimeout: 5 * time.Second})
		_, err := small.EncodeURLToBase64(streaming.URL)
		assert.ErrorContains(t, err, "exceeds limit")
	})
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://example.com/a.png"))
	assert.True(t, IsURL("https://example.com/a.png"))
	assert.False(t, IsURL("/tmp/a.png"))
	assert.False(t, IsURL("a.png"))
}

func TestConfig(t *testing.T) {
	t.Run("default limits", func(t *testing.T) {
		cfg := Default()
		assert.Equal(t, int64(32<<20), cfg.MaxFetchBytes)
		assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("MEDIA_MAX_FETCH_BYTES", "1024")
		t.Setenv("MEDIA_FETCH_TIMEOUT", "2s")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, int64(1024), cfg.MaxFetchBytes)
		assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
	})
}
