package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/legisearch/legisearch"
	"github.com/legisearch/legisearch/mock"
	lslog "github.com/legisearch/legisearch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := lslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://www.legislation.gov.uk/uksi/2024/1/made")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://www.legislation.gov.uk/uksi/2024/1/made")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		fetchErr := legisearch.Errorf(legisearch.EFETCH, "HTTP 503")
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", fetchErr
			},
		}

		fetcher := lslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://www.legislation.gov.uk/uksi/2024/1/made")

		require.Error(t, err)
		assert.Equal(t, fetchErr, err)
		assert.Contains(t, buf.String(), "HTTP 503")
	})

	t.Run("delegates close", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "", nil },
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		fetcher := lslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}

func TestLoggingEmbedder_Embed(t *testing.T) {
	t.Parallel()

	t.Run("logs dimensions and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Embedder{
			EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
				return []float32{1, 2, 3}, nil
			},
		}

		embedder := lslog.NewLoggingEmbedder(inner, logger)
		vector, err := embedder.Embed(context.Background(), "some text")

		require.NoError(t, err)
		assert.Len(t, vector, 3)
		output := buf.String()
		assert.Contains(t, output, "embed")
		assert.Contains(t, output, "chars=9")
		assert.Contains(t, output, "dimensions=3")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Embedder{
			EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
				return nil, legisearch.Errorf(legisearch.EEMBED, "model unavailable")
			},
		}

		embedder := lslog.NewLoggingEmbedder(inner, logger)
		_, err := embedder.Embed(context.Background(), "some text")

		assert.Equal(t, legisearch.EEMBED, legisearch.ErrorCode(err))
		assert.Contains(t, buf.String(), "model unavailable")
	})
}
