// Package pipeline orchestrates the legislation ETL run: fetch, extract,
// store, embed and index, with per-record status checkpointing so an
// interrupted run resumes where it left off.
package pipeline

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/legisearch/legisearch"
	"github.com/legisearch/legisearch/bloom"
	"golang.org/x/time/rate"
)

// DefaultDelay is the politeness pause between items when none is configured.
const DefaultDelay = 500 * time.Millisecond

// Pipeline drives legislation URLs through fetch, extract, store, embed and
// index. Each item is processed in isolation: a failure is persisted as a
// status on the record and the run moves on to the next URL.
type Pipeline struct {
	Records   legisearch.RecordService
	Fetcher   legisearch.Fetcher
	Extractor legisearch.Extractor
	Embedder  legisearch.Embedder
	Index     legisearch.VectorIndex

	// Filter carries the advisory month/category scoping.
	Filter Filter

	// Delay is the politeness pause between items.
	// Defaults to DefaultDelay.
	Delay time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Summary holds the outcome of a pipeline run.
type Summary struct {
	// Processed counts items that reached embedded status during the run
	// or were already embedded.
	Processed int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Run processes the URLs in order and returns a run summary. It fails before
// processing any item when a collaborator is missing; after that, per-item
// errors are persisted as failure statuses and never abort the run. The
// context is checked between items only.
func (p *Pipeline) Run(ctx context.Context, urls []string) (*Summary, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", uuid.New().String())

	delay := p.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	// One item per delay interval, no bursting beyond the first.
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	logger.Info("pipeline starting",
		"urls", len(urls),
		"year", p.Filter.Year,
		"month", p.Filter.Month,
		"category", p.Filter.Category,
	)

	start := time.Now()
	summary := &Summary{}
	seen := bloom.NewFilter(uint(len(urls))+1, 0.001)

	for i, url := range urls {
		itemLogger := logger.With("url", url, "position", i+1, "total", len(urls))

		if seen.Seen(url) {
			itemLogger.Info("duplicate URL in run, skipping")
			continue
		}

		processed, err := p.processURL(ctx, itemLogger, url)
		if err != nil {
			itemLogger.Error("item failed",
				"code", legisearch.ErrorCode(err),
				"error", legisearch.ErrorMessage(err),
			)
		}
		if processed {
			summary.Processed++
		}

		// Be respectful of the source's servers regardless of outcome.
		if err := limiter.Wait(ctx); err != nil {
			summary.Elapsed = time.Since(start)
			return summary, err
		}
	}

	summary.Elapsed = time.Since(start)
	logger.Info("pipeline finished", "processed", summary.Processed, "elapsed", summary.Elapsed)
	return summary, nil
}

// validate checks the preconditions that make a run fatal before any item.
func (p *Pipeline) validate() error {
	if p.Records == nil {
		return legisearch.Errorf(legisearch.EINTERNAL, "record service required")
	}
	if p.Fetcher == nil {
		return legisearch.Errorf(legisearch.EINTERNAL, "fetcher required")
	}
	if p.Extractor == nil {
		return legisearch.Errorf(legisearch.EINTERNAL, "extractor required")
	}
	if p.Embedder == nil {
		return legisearch.Errorf(legisearch.EINTERNAL, "embedder required")
	}
	if p.Index == nil {
		return legisearch.Errorf(legisearch.EINTERNAL, "vector index required")
	}
	return nil
}

// processURL advances a single URL through the pipeline. It reports whether
// the item counts as processed (reached or already had embedded status).
// Errors are mapped to a failure status on the record, when one exists, by
// the code of the failing stage.
func (p *Pipeline) processURL(ctx context.Context, logger *slog.Logger, url string) (bool, error) {
	existing, err := p.Records.FindRecordBySourceURL(ctx, url)
	if err != nil && legisearch.ErrorCode(err) != legisearch.ENOTFOUND {
		return false, err
	}

	if existing != nil {
		if existing.Status == legisearch.StatusEmbedded {
			logger.Info("already fully processed, skipping", "identifier", existing.Identifier)
			return true, nil
		}
		logger.Info("resuming", "identifier", existing.Identifier, "status", existing.Status)
	}

	rec, err := p.advance(ctx, logger, url, existing)
	if err == nil {
		if rec == nil {
			// Abandoned for missing metadata; deliberately no status write
			// so the item is retried on the next run.
			return false, nil
		}
		logger.Info("embedded", "identifier", rec.Identifier, "record_id", rec.ID)
		return true, nil
	}

	// The failing stage's error code determines the persisted status.
	if rec == nil {
		rec = existing
	}
	var status legisearch.Status
	switch legisearch.ErrorCode(err) {
	case legisearch.EFETCH:
		status = legisearch.StatusFailedDownload
	case legisearch.EEXTRACT:
		// Extraction failures are treated like missing metadata: skipped
		// without a status write.
		return false, err
	case legisearch.EEMBED:
		status = legisearch.StatusFailedEmbedding
	default:
		status = legisearch.StatusFailedPipeline
	}

	if rec == nil {
		logger.Warn("no record to mark", "code", legisearch.ErrorCode(err))
		return false, err
	}
	p.markStatus(ctx, logger, rec.ID, status)
	return false, err
}

// advance runs the pipeline stages for one URL. It returns the record the
// item ended on, which may be nil when the item was abandoned before the
// store stage (missing metadata) or failed before a record existed.
func (p *Pipeline) advance(ctx context.Context, logger *slog.Logger, url string, rec *legisearch.Record) (*legisearch.Record, error) {
	text, meta, err := p.content(ctx, logger, url, rec)
	if err != nil {
		return rec, err
	}

	if rec == nil {
		if meta[legisearch.MetaTitle] == "" || meta[legisearch.MetaIdentifier] == "" {
			logger.Warn("missing essential metadata, skipping",
				"has_title", meta[legisearch.MetaTitle] != "",
				"has_identifier", meta[legisearch.MetaIdentifier] != "",
			)
			return nil, nil
		}
		if !p.Filter.Allow(meta) {
			logger.Info("filtered out", "identifier", meta[legisearch.MetaIdentifier])
			return nil, nil
		}
	}

	// Store stage: insert-if-absent, then advance to cleaned. Committed as
	// one unit so a crash never leaves a half-written record.
	tx, err := p.Records.Begin(ctx)
	if err != nil {
		return rec, err
	}
	if rec == nil {
		rec, err = tx.CreateRecord(ctx, &legisearch.Record{
			Title:         meta[legisearch.MetaTitle],
			Identifier:    meta[legisearch.MetaIdentifier],
			Type:          meta[legisearch.MetaType],
			DateMade:      meta[legisearch.MetaDateMade],
			EffectiveDate: meta[legisearch.MetaEffectiveDate],
			SourceURL:     url,
			Content:       text,
			Metadata:      meta,
			Status:        legisearch.StatusCleaned,
		})
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	status := legisearch.StatusCleaned
	rec, err = tx.UpdateRecord(ctx, rec.ID, legisearch.RecordUpdate{Status: &status})
	if err != nil {
		tx.Rollback()
		return rec, err
	}
	if err := tx.Commit(); err != nil {
		return rec, err
	}
	logger.Info("stored", "identifier", rec.Identifier, "record_id", rec.ID)

	// Embed stage.
	vector, err := p.Embedder.Embed(ctx, text)
	if err != nil {
		return rec, legisearch.Errorf(legisearch.EEMBED, "embed %s: %v", rec.Identifier, legisearch.ErrorMessage(err))
	}

	// Index stage, keyed by the store-assigned id with a back-reference for
	// query-time resolution.
	err = p.Index.Upsert(ctx, legisearch.VectorEntry{
		ID:       strconv.FormatInt(rec.ID, 10),
		Text:     text,
		Vector:   vector,
		RecordID: rec.ID,
	})
	if err != nil {
		return rec, legisearch.Errorf(legisearch.EINDEX, "index %s: %v", rec.Identifier, legisearch.ErrorMessage(err))
	}

	// Final status update.
	tx, err = p.Records.Begin(ctx)
	if err != nil {
		return rec, err
	}
	status = legisearch.StatusEmbedded
	now := time.Now().UTC()
	rec, err = tx.UpdateRecord(ctx, rec.ID, legisearch.RecordUpdate{Status: &status, ProcessedAt: &now})
	if err != nil {
		tx.Rollback()
		return rec, err
	}
	if err := tx.Commit(); err != nil {
		return rec, err
	}
	return rec, nil
}

// content produces the cleaned text and metadata for an item. Records past
// the fetch boundary already have cleaned content persisted and reuse it
// instead of re-downloading; everything else is fetched and extracted fresh.
func (p *Pipeline) content(ctx context.Context, logger *slog.Logger, url string, rec *legisearch.Record) (string, legisearch.Metadata, error) {
	if rec != nil && rec.Content != "" && !rec.Status.NeedsFetch() {
		logger.Info("reusing stored content", "identifier", rec.Identifier)
		return rec.Content, rec.Metadata, nil
	}

	raw, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", nil, legisearch.Errorf(legisearch.EFETCH, "fetch %s: %v", url, legisearch.ErrorMessage(err))
	}

	res, err := p.Extractor.Extract(raw)
	if err != nil {
		return "", nil, legisearch.Errorf(legisearch.EEXTRACT, "extract %s: %v", url, legisearch.ErrorMessage(err))
	}
	return res.Text, res.Meta, nil
}

// markStatus persists a failure status in its own unit of work. Errors are
// logged only: the record keeps its previous status and is retried next run.
func (p *Pipeline) markStatus(ctx context.Context, logger *slog.Logger, id int64, status legisearch.Status) {
	tx, err := p.Records.Begin(ctx)
	if err != nil {
		logger.Error("failed to mark status", "record_id", id, "status", status, "error", err)
		return
	}
	if _, err := tx.UpdateRecord(ctx, id, legisearch.RecordUpdate{Status: &status}); err != nil {
		tx.Rollback()
		logger.Error("failed to mark status", "record_id", id, "status", status, "error", err)
		return
	}
	if err := tx.Commit(); err != nil {
		logger.Error("failed to mark status", "record_id", id, "status", status, "error", err)
		return
	}
	logger.Info("marked", "record_id", id, "status", status)
}
