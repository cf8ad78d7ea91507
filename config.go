package legisearch

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds run configuration for the pipeline and CLI. It is constructed
// by the caller and passed in explicitly; nothing in this module reads the
// environment at package scope.
type Config struct {
	// Year, Month and Category scope which legislation a run targets.
	// Month and Category are advisory: they are carried through to the
	// pipeline filter but no matching rules are currently applied.
	Year     int
	Month    string
	Category string

	// DBPath is the record store location.
	DBPath string

	// VectorPath is the vector index storage location.
	VectorPath string

	// EmbedModel names the embedding model to use.
	EmbedModel string

	// Delay is the politeness pause between items during a pipeline run.
	Delay time.Duration
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Year:       2024,
		Month:      "August",
		Category:   "planning",
		DBPath:     defaultPath("legisearch.db"),
		VectorPath: defaultPath("vectors.db"),
		Delay:      500 * time.Millisecond,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by environment variables:
// LEGISLATION_YEAR, LEGISLATION_MONTH, LEGISLATION_CATEGORY, LEGISEARCH_DB,
// LEGISEARCH_VECTOR_DB and LEGISEARCH_EMBED_MODEL.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("LEGISLATION_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			cfg.Year = year
		}
	}
	if v := os.Getenv("LEGISLATION_MONTH"); v != "" {
		cfg.Month = v
	}
	if v := os.Getenv("LEGISLATION_CATEGORY"); v != "" {
		cfg.Category = v
	}
	if v := os.Getenv("LEGISEARCH_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LEGISEARCH_VECTOR_DB"); v != "" {
		cfg.VectorPath = v
	}
	if v := os.Getenv("LEGISEARCH_EMBED_MODEL"); v != "" {
		cfg.EmbedModel = v
	}
	return cfg
}

// defaultPath places a file under ~/.legisearch, falling back to the working
// directory when the home directory is unavailable.
func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	dir := filepath.Join(home, ".legisearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, name)
}
