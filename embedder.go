package legisearch

import "context"

// Embedder generates fixed-length semantic embeddings for text.
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	// Returns EINVALID if text is empty and an EEMBED-coded error if the
	// embedding cannot be generated.
	Embed(ctx context.Context, text string) ([]float32, error)
}
