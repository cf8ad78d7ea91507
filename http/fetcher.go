// Package http provides an HTTP-based implementation of legisearch.Fetcher
// for downloading legislation pages from legislation.gov.uk.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/legisearch/legisearch"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// userAgent is sent with every request; legislation.gov.uk serves reduced
// pages to clients without a browser user agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements legisearch.Fetcher at compile time.
var _ legisearch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves legislation HTML over plain HTTP. The site is static,
// so no JavaScript rendering is needed.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
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

// Fetch retrieves the HTML content of the given legislation URL. The URL is
// normalized to its "/made" variant, which carries the main content.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	target := NormalizeURL(url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", legisearch.Errorf(legisearch.EINVALID, "invalid URL %q: %v", target, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", legisearch.Errorf(legisearch.EFETCH, "fetch %s: %v", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", legisearch.Errorf(legisearch.EFETCH, "HTTP %d for %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", legisearch.Errorf(legisearch.EFETCH, "read %s: %v", target, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// NormalizeURL returns the "as made" variant of a legislation URL: any query
// string is stripped and "/made" appended when missing.
func NormalizeURL(url string) string {
	if strings.HasSuffix(url, "/made") {
		return url
	}
	if i := strings.Index(url, "?"); i >= 0 {
		url = url[:i]
	}
	return strings.TrimSuffix(url, "/") + "/made"
}
