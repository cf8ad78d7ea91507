// Package gemini provides a Gemini API implementation of legisearch.Embedder.
package gemini

import (
	"context"
	"strings"

	"github.com/legisearch/legisearch"
	"google.golang.org/genai"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "gemini-embedding-001"

// Ensure Embedder implements legisearch.Embedder at compile time.
var _ legisearch.Embedder = (*Embedder)(nil)

// Embedder implements legisearch.Embedder using the Gemini embedding API.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. An empty model selects DefaultModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultModel
	}
	return &Embedder{client: client, model: model}
}

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, legisearch.Errorf(legisearch.EINVALID, "text required")
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, legisearch.Errorf(legisearch.EEMBED, "embed content: %v", err)
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, legisearch.Errorf(legisearch.EEMBED, "gemini returned no embedding")
	}

	return result.Embeddings[0].Values, nil
}
