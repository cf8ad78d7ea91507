package legisearch

import "context"

// VectorEntry is a document stored in the vector index.
type VectorEntry struct {
	// ID is the index key, the stringified store-assigned record ID.
	ID string `json:"id"`

	// Text is the original content, stored for retrieval display.
	Text string `json:"text"`

	// Vector is the embedding of Text.
	Vector []float32 `json:"vector"`

	// RecordID is the back-reference to the record store. Zero means the
	// entry carries no back-reference.
	RecordID int64 `json:"recordId"`
}

// VectorMatch is a nearest-neighbor query hit.
type VectorMatch struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	RecordID int64   `json:"recordId"`
	Distance float64 `json:"distance"` // cosine distance, smaller = more similar
}

// VectorIndex stores embeddings and answers nearest-neighbor queries.
type VectorIndex interface {
	// Upsert stores the entry, replacing any entry with the same ID.
	Upsert(ctx context.Context, entry VectorEntry) error

	// Query returns up to k entries ranked by ascending cosine distance
	// from the given vector.
	Query(ctx context.Context, vector []float32, k int) ([]VectorMatch, error)

	// Count returns the number of entries in the index.
	Count(ctx context.Context) (int, error)

	// Close releases index resources.
	Close() error
}
