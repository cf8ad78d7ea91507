package mock

import (
	"context"

	"github.com/legisearch/legisearch"
)

var _ legisearch.VectorIndex = (*VectorIndex)(nil)

// VectorIndex is a mock implementation of legisearch.VectorIndex.
type VectorIndex struct {
	UpsertFn func(ctx context.Context, entry legisearch.VectorEntry) error
	QueryFn  func(ctx context.Context, vector []float32, k int) ([]legisearch.VectorMatch, error)
	CountFn  func(ctx context.Context) (int, error)
	CloseFn  func() error
}

func (v *VectorIndex) Upsert(ctx context.Context, entry legisearch.VectorEntry) error {
	return v.UpsertFn(ctx, entry)
}

func (v *VectorIndex) Query(ctx context.Context, vector []float32, k int) ([]legisearch.VectorMatch, error) {
	return v.QueryFn(ctx, vector, k)
}

func (v *VectorIndex) Count(ctx context.Context) (int, error) {
	return v.CountFn(ctx)
}

func (v *VectorIndex) Close() error {
	if v.CloseFn == nil {
		return nil
	}
	return v.CloseFn()
}
