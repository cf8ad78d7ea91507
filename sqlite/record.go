package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/legisearch/legisearch"
)

// Compile-time interface verification.
var _ legisearch.RecordService = (*RecordService)(nil)
var _ legisearch.RecordTx = (*Tx)(nil)

// RecordService implements legisearch.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// Begin starts a unit of work for record mutations.
func (s *RecordService) Begin(ctx context.Context) (legisearch.RecordTx, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx}, nil
}

// FindRecordByID retrieves a record by its store-assigned ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id int64) (*legisearch.Record, error) {
	return findRecord(ctx, s.db, "id = ?", id)
}

// FindRecordBySourceURL retrieves a record by its unique source URL.
func (s *RecordService) FindRecordBySourceURL(ctx context.Context, sourceURL string) (*legisearch.Record, error) {
	return findRecord(ctx, s.db, "source_url = ?", sourceURL)
}

// FindRecords retrieves records matching the filter.
func (s *RecordService) FindRecords(ctx context.Context, filter legisearch.RecordFilter) ([]*legisearch.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Identifier != nil {
		query.WriteString(" AND identifier = ?")
		args = append(args, *filter.Identifier)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY id ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*legisearch.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Tx implements legisearch.RecordTx over a SQLite transaction.
type Tx struct {
	tx *sql.Tx
}

// FindBySourceURL retrieves a record by source URL within the unit of work.
func (t *Tx) FindBySourceURL(ctx context.Context, sourceURL string) (*legisearch.Record, error) {
	return findRecord(ctx, t.tx, "source_url = ?", sourceURL)
}

// FindByIdentifier retrieves a record by identifier within the unit of work.
func (t *Tx) FindByIdentifier(ctx context.Context, identifier string) (*legisearch.Record, error) {
	return findRecord(ctx, t.tx, "identifier = ?", identifier)
}

// CreateRecord inserts a record if no record with its identifier exists.
// When one does, the existing record is returned unchanged.
func (t *Tx) CreateRecord(ctx context.Context, rec *legisearch.Record) (*legisearch.Record, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	existing, err := t.FindByIdentifier(ctx, rec.Identifier)
	if err == nil {
		return existing, nil
	}
	if legisearch.ErrorCode(err) != legisearch.ENOTFOUND {
		return nil, err
	}

	if rec.Status == "" {
		rec.Status = legisearch.StatusNew
	}
	rec.ContentHash = hashContent(rec.Content)
	rec.ProcessedAt = time.Now().UTC()

	meta, err := json.Marshal(rec.Metadata)
	if err != nil {
		return nil, err
	}

	result, err := t.tx.ExecContext(ctx, `
		INSERT INTO records (title, identifier, legislation_type, date_made, effective_date,
			source_url, content, content_hash, metadata, status, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Title, rec.Identifier, rec.Type, rec.DateMade, rec.EffectiveDate,
		rec.SourceURL, rec.Content, rec.ContentHash, string(meta), string(rec.Status),
		rec.ProcessedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	rec.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateRecord applies the non-nil fields of upd to the record with the given ID.
func (t *Tx) UpdateRecord(ctx context.Context, id int64, upd legisearch.RecordUpdate) (*legisearch.Record, error) {
	rec, err := findRecord(ctx, t.tx, "id = ?", id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, legisearch.Errorf(legisearch.EINVALID, "invalid status %q", *upd.Status)
		}
		rec.Status = *upd.Status
	}
	if upd.Content != nil {
		rec.Content = *upd.Content
		rec.ContentHash = hashContent(rec.Content)
	}
	if upd.ProcessedAt != nil {
		rec.ProcessedAt = upd.ProcessedAt.UTC()
	}

	_, err = t.tx.ExecContext(ctx, `
		UPDATE records SET content = ?, content_hash = ?, status = ?, processed_at = ?
		WHERE id = ?
	`, rec.Content, rec.ContentHash, string(rec.Status),
		rec.ProcessedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Commit makes the pending mutations durable.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback discards the pending mutations.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

const recordColumns = "id, title, identifier, legislation_type, date_made, effective_date, " +
	"source_url, content, content_hash, metadata, status, processed_at"

// querier is implemented by *DB and *sql.Tx so record lookups can run inside
// or outside a unit of work.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findRecord(ctx context.Context, q querier, where string, arg any) (*legisearch.Record, error) {
	row := q.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM records WHERE "+where, arg)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, legisearch.Errorf(legisearch.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*legisearch.Record, error) {
	var rec legisearch.Record
	var meta, status, processedAt string

	err := row.Scan(&rec.ID, &rec.Title, &rec.Identifier, &rec.Type, &rec.DateMade,
		&rec.EffectiveDate, &rec.SourceURL, &rec.Content, &rec.ContentHash,
		&meta, &status, &processedAt)
	if err != nil {
		return nil, err
	}

	if meta != "" && meta != "null" {
		if err := json.Unmarshal([]byte(meta), &rec.Metadata); err != nil {
			return nil, err
		}
	}
	rec.Status = legisearch.Status(status)
	rec.ProcessedAt, err = parseRFC3339(processedAt, "processed_at")
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
