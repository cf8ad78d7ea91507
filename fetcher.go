package legisearch

import "context"

// Fetcher retrieves raw content from legislation URLs.
type Fetcher interface {
	// Fetch downloads the document at the URL and returns the raw content.
	// Returns an EFETCH-coded error on network or HTTP failure.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (content string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
