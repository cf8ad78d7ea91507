package legisearch_test

import (
	"testing"
	"time"

	"github.com/legisearch/legisearch"
	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		t.Setenv("LEGISLATION_YEAR", "")
		t.Setenv("LEGISEARCH_DB", "")

		cfg := legisearch.ConfigFromEnv()

		assert.Equal(t, 2024, cfg.Year)
		assert.Equal(t, "August", cfg.Month)
		assert.Equal(t, "planning", cfg.Category)
		assert.Equal(t, 500*time.Millisecond, cfg.Delay)
		assert.NotEmpty(t, cfg.DBPath)
		assert.NotEmpty(t, cfg.VectorPath)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LEGISLATION_YEAR", "2023")
		t.Setenv("LEGISLATION_MONTH", "March")
		t.Setenv("LEGISLATION_CATEGORY", "environment")
		t.Setenv("LEGISEARCH_DB", "/tmp/records.db")
		t.Setenv("LEGISEARCH_VECTOR_DB", "/tmp/vectors.db")
		t.Setenv("LEGISEARCH_EMBED_MODEL", "gemini-embedding-001")

		cfg := legisearch.ConfigFromEnv()

		assert.Equal(t, 2023, cfg.Year)
		assert.Equal(t, "March", cfg.Month)
		assert.Equal(t, "environment", cfg.Category)
		assert.Equal(t, "/tmp/records.db", cfg.DBPath)
		assert.Equal(t, "/tmp/vectors.db", cfg.VectorPath)
		assert.Equal(t, "gemini-embedding-001", cfg.EmbedModel)
	})

	t.Run("malformed year falls back to default", func(t *testing.T) {
		t.Setenv("LEGISLATION_YEAR", "twenty-twenty-four")

		cfg := legisearch.ConfigFromEnv()

		assert.Equal(t, 2024, cfg.Year)
	})
}
