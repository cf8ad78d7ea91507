package mock

import (
	"context"

	"github.com/legisearch/legisearch"
)

var _ legisearch.RecordService = (*RecordService)(nil)
var _ legisearch.RecordTx = (*RecordTx)(nil)

// RecordService is a mock implementation of legisearch.RecordService.
type RecordService struct {
	BeginFn                 func(ctx context.Context) (legisearch.RecordTx, error)
	FindRecordByIDFn        func(ctx context.Context, id int64) (*legisearch.Record, error)
	FindRecordBySourceURLFn func(ctx context.Context, sourceURL string) (*legisearch.Record, error)
	FindRecordsFn           func(ctx context.Context, filter legisearch.RecordFilter) ([]*legisearch.Record, error)
}

func (s *RecordService) Begin(ctx context.Context) (legisearch.RecordTx, error) {
	return s.BeginFn(ctx)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id int64) (*legisearch.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecordBySourceURL(ctx context.Context, sourceURL string) (*legisearch.Record, error) {
	return s.FindRecordBySourceURLFn(ctx, sourceURL)
}

func (s *RecordService) FindRecords(ctx context.Context, filter legisearch.RecordFilter) ([]*legisearch.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

// RecordTx is a mock implementation of legisearch.RecordTx.
type RecordTx struct {
	FindBySourceURLFn  func(ctx context.Context, sourceURL string) (*legisearch.Record, error)
	FindByIdentifierFn func(ctx context.Context, identifier string) (*legisearch.Record, error)
	CreateRecordFn     func(ctx context.Context, rec *legisearch.Record) (*legisearch.Record, error)
	UpdateRecordFn     func(ctx context.Context, id int64, upd legisearch.RecordUpdate) (*legisearch.Record, error)
	CommitFn           func() error
	RollbackFn         func() error
}

func (t *RecordTx) FindBySourceURL(ctx context.Context, sourceURL string) (*legisearch.Record, error) {
	return t.FindBySourceURLFn(ctx, sourceURL)
}

func (t *RecordTx) FindByIdentifier(ctx context.Context, identifier string) (*legisearch.Record, error) {
	return t.FindByIdentifierFn(ctx, identifier)
}

func (t *RecordTx) CreateRecord(ctx context.Context, rec *legisearch.Record) (*legisearch.Record, error) {
	return t.CreateRecordFn(ctx, rec)
}

func (t *RecordTx) UpdateRecord(ctx context.Context, id int64, upd legisearch.RecordUpdate) (*legisearch.Record, error) {
	return t.UpdateRecordFn(ctx, id, upd)
}

func (t *RecordTx) Commit() error {
	if t.CommitFn == nil {
		return nil
	}
	return t.CommitFn()
}

func (t *RecordTx) Rollback() error {
	if t.RollbackFn == nil {
		return nil
	}
	return t.RollbackFn()
}
