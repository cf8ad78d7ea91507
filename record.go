package legisearch

import (
	"context"
	"time"
)

// Status tracks a record's progress through the pipeline. Failure statuses
// are re-entrant: a failed record is retried on the next run.
type Status string

// Status values for Record.
const (
	StatusNew             Status = "new"
	StatusCleaned         Status = "cleaned"
	StatusEmbedded        Status = "embedded"
	StatusFailedDownload  Status = "failed_download"
	StatusFailedEmbedding Status = "failed_embedding"
	StatusFailedPipeline  Status = "failed_pipeline"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusCleaned, StatusEmbedded,
		StatusFailedDownload, StatusFailedEmbedding, StatusFailedPipeline:
		return true
	}
	return false
}

// NeedsFetch reports whether a record in this status requires a fresh
// download. Records past the fetch boundary have cleaned content persisted
// and can resume without another network call.
func (s Status) NeedsFetch() bool {
	return s == StatusNew || s == StatusFailedDownload
}

// Metadata is an arbitrary string-to-string mapping extracted from a
// legislation page.
type Metadata map[string]string

// Metadata keys of interest produced by Extractor implementations.
const (
	MetaTitle         = "title"
	MetaIdentifier    = "identifier"
	MetaType          = "type"
	MetaDateMade      = "date_made"
	MetaEffectiveDate = "effective_date"
	MetaSourceURL     = "source_url"
)

// Record represents one distinct piece of legislation.
type Record struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Identifier    string    `json:"identifier"` // e.g. "2024 No. 76", unique business key
	Type          string    `json:"type"`       // e.g. "Statutory Instrument"
	DateMade      string    `json:"dateMade"`   // free text, as published
	EffectiveDate string    `json:"effectiveDate"`
	SourceURL     string    `json:"sourceUrl"`
	Content       string    `json:"content"` // cleaned plain text
	ContentHash   string    `json:"contentHash"`
	Metadata      Metadata  `json:"metadata,omitempty"`
	Status        Status    `json:"status"`
	ProcessedAt   time.Time `json:"processedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.Identifier == "" {
		return Errorf(EINVALID, "record identifier required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	if r.Content == "" {
		return Errorf(EINVALID, "record content required")
	}
	return nil
}

// RecordService represents a service for managing legislation records.
// Mutations go through a RecordTx so each pipeline item commits or rolls
// back as a unit.
type RecordService interface {
	// Begin starts a unit of work for record mutations.
	Begin(ctx context.Context) (RecordTx, error)

	// FindRecordByID retrieves a record by its store-assigned ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id int64) (*Record, error)

	// FindRecordBySourceURL retrieves a record by its unique source URL.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordBySourceURL(ctx context.Context, sourceURL string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordTx groups record mutations for one pipeline item. Commit makes the
// pending mutations durable; Rollback discards them. A RecordTx must not be
// used after Commit or Rollback.
type RecordTx interface {
	// FindBySourceURL retrieves a record by source URL within the unit of work.
	// Returns ENOTFOUND if the record does not exist.
	FindBySourceURL(ctx context.Context, sourceURL string) (*Record, error)

	// FindByIdentifier retrieves a record by identifier within the unit of work.
	// Returns ENOTFOUND if the record does not exist.
	FindByIdentifier(ctx context.Context, identifier string) (*Record, error)

	// CreateRecord inserts a record if no record with its identifier exists.
	// When one does, the existing record is returned unchanged; the pipeline
	// never duplicate-inserts or overwrites on conflict.
	CreateRecord(ctx context.Context, rec *Record) (*Record, error)

	// UpdateRecord applies the non-nil fields of upd to the record with the
	// given ID and returns the updated record.
	// Returns ENOTFOUND if the record does not exist.
	UpdateRecord(ctx context.Context, id int64, upd RecordUpdate) (*Record, error)

	Commit() error
	Rollback() error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID         *int64  `json:"id"`
	Identifier *string `json:"identifier"`
	SourceURL  *string `json:"sourceUrl"`
	Status     *Status `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordUpdate represents fields that can be updated on a record.
type RecordUpdate struct {
	Status      *Status    `json:"status"`
	Content     *string    `json:"content"`
	ProcessedAt *time.Time `json:"processedAt"`
}
