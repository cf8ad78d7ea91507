package legisearch

// ExtractResult holds the content extracted from a legislation page.
type ExtractResult struct {
	// Text is the cleaned plain text of the legislation body.
	// Boilerplate (navigation, scripts, footnotes, signature blocks) has
	// been removed and whitespace collapsed.
	Text string

	// Meta is the metadata extracted from the page. See the Meta* key
	// constants for the keys the pipeline consumes.
	Meta Metadata
}

// Extractor extracts cleaned text and metadata from raw legislation HTML.
type Extractor interface {
	// Extract processes raw HTML and returns cleaned text plus metadata.
	// Returns an EEXTRACT-coded error if the content cannot be parsed.
	Extract(html string) (*ExtractResult, error)
}
