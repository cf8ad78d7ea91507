package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/legisearch/legisearch"
)

// Ensure LoggingEmbedder implements legisearch.Embedder.
var _ legisearch.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with per-call logging.
type LoggingEmbedder struct {
	next   legisearch.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next legisearch.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// Embed delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) Embed(ctx context.Context, text string) (vector []float32, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed",
			"chars", len(text),
			"dimensions", len(vector),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Embed(ctx, text)
}
