package mock

import "github.com/legisearch/legisearch"

var _ legisearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of legisearch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*legisearch.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*legisearch.ExtractResult, error) {
	return e.ExtractFn(html)
}
