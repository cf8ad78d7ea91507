package fs

import (
	"context"

	"github.com/legisearch/legisearch"
)

// Ensure ArchivingFetcher implements legisearch.Fetcher at compile time.
var _ legisearch.Fetcher = (*ArchivingFetcher)(nil)

// ArchivingFetcher wraps a Fetcher and saves every successfully fetched page
// to an Archive before returning it.
type ArchivingFetcher struct {
	next    legisearch.Fetcher
	archive *Archive
}

// NewArchivingFetcher creates a new ArchivingFetcher.
func NewArchivingFetcher(next legisearch.Fetcher, archive *Archive) *ArchivingFetcher {
	return &ArchivingFetcher{next: next, archive: archive}
}

// Fetch delegates to the wrapped fetcher and archives the result.
func (f *ArchivingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if err := f.archive.Save(url, html); err != nil {
		return "", err
	}
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *ArchivingFetcher) Close() error {
	return f.next.Close()
}
