// Package search answers free-text queries against the vector index,
// resolving matches back to their stored legislation records.
package search

import (
	"context"
	"sort"

	"github.com/legisearch/legisearch"
)

// TopK is the number of nearest matches returned per query.
const TopK = 4

// Result pairs a vector match with its stored record. Record is nil when the
// match carries no back-reference or the referenced record no longer exists.
type Result struct {
	Match  legisearch.VectorMatch
	Record *legisearch.Record
}

// Searcher embeds query text and looks up the nearest indexed documents.
type Searcher struct {
	Embedder legisearch.Embedder
	Index    legisearch.VectorIndex
	Records  legisearch.RecordService
}

// Search embeds text and returns up to TopK results ordered by ascending
// distance.
func (s *Searcher) Search(ctx context.Context, text string) ([]Result, error) {
	if text == "" {
		return nil, legisearch.Errorf(legisearch.EINVALID, "Query text required.")
	}

	vector, err := s.Embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	matches, err := s.Index.Query(ctx, vector, TopK)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		result := Result{Match: match}
		if match.RecordID != 0 {
			rec, err := s.Records.FindRecordByID(ctx, match.RecordID)
			switch {
			case err == nil:
				result.Record = rec
			case legisearch.ErrorCode(err) == legisearch.ENOTFOUND:
				// Stale index entry; surface the match without a record.
			default:
				return nil, err
			}
		}
		results = append(results, result)
	}
	return results, nil
}
