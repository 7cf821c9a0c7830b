package media

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Fetcher downloads remote media and encodes it as base64. Fetches are
// bounded by the configured size cap and timeout and are never retried;
// retry policy belongs to the caller's request layer.
type Fetcher struct {
	client *resty.Client
	cfg    Config
}

// NewFetcher creates a fetcher with the given limits.
func NewFetcher(cfg Config) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.FetchTimeout).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Fetcher{client: client, cfg: cfg}
}

// EncodeURLToBase64 fetches a URL and encodes the body as base64, with the
// same header options as EncodeFileToBase64. The size cap bounds the read
// itself: a declared oversized Content-Length is rejected before reading,
// and bodies without one are read through a limited reader so no more than
// the cap is ever buffered.
func (f *Fetcher) EncodeURLToBase64(url string, opts ...FileOption) (string, error) {
	var o fileOptions
	for _, opt := range opts {
		opt(&o)
	}

	resp, err := f.client.R().SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return "", err
	}
	raw := resp.RawBody()
	defer raw.Close()

	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status())
	}
	if cl := resp.RawResponse.ContentLength; cl > f.cfg.MaxFetchBytes {
		return "", fmt.Errorf("fetch %s: declared size of %d bytes exceeds limit of %d", url, cl, f.cfg.MaxFetchBytes)
	}

	body, err := io.ReadAll(io.LimitReader(raw, f.cfg.MaxFetchBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(body)) > f.cfg.MaxFetchBytes {
		return "", fmt.Errorf("fetch %s: body exceeds limit of %d bytes", url, f.cfg.MaxFetchBytes)
	}
	return encodeBytes(body, o), nil
}

var (
	defaultFetcher     *Fetcher
	defaultFetcherOnce sync.Once
)

// EncodeURLToBase64 fetches a URL using a process-wide fetcher configured
// from the environment.
func EncodeURLToBase64(url string, opts ...FileOption) (string, error) {
	defaultFetcherOnce.Do(func() {
		defaultFetcher = NewFetcher(*LoadOrDefault())
	})
	return defaultFetcher.EncodeURLToBase64(url, opts...)
}

// IsURL reports whether a string path refers to a remote http(s) source.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
