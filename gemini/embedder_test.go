package gemini_test

import (
	"context"
	"testing"

	"github.com/legisearch/legisearch"
	"github.com/legisearch/legisearch/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedder_Embed_EmptyText(t *testing.T) {
	t.Parallel()

	// Validation runs before any API call, so no client is needed.
	e := gemini.NewEmbedder(nil, "")

	_, err := e.Embed(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, legisearch.EINVALID, legisearch.ErrorCode(err))
}

func TestNewEmbedder_DefaultModel(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, gemini.NewEmbedder(nil, ""))
	assert.Equal(t, "gemini-embedding-001", gemini.DefaultModel)
}
