package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/legisearch/legisearch"
)

// Compile-time interface verification.
var _ legisearch.VectorIndex = (*VectorIndex)(nil)

// VectorIndex implements legisearch.VectorIndex with a SQLite-backed
// persistent store and brute-force cosine ranking. The collection is small
// enough (one entry per piece of legislation) that a linear scan is fine.
type VectorIndex struct {
	db   *sql.DB
	path string
}

// NewVectorIndex creates a new VectorIndex stored at the given path.
// Use ":memory:" for an in-memory index.
func NewVectorIndex(path string) *VectorIndex {
	return &VectorIndex{path: path}
}

// Open opens the index and creates the schema if needed.
func (v *VectorIndex) Open() error {
	conn, err := openSQLite(v.path)
	if err != nil {
		return err
	}

	schema := `
		CREATE TABLE IF NOT EXISTS vectors (
			id TEXT PRIMARY KEY,
			record_id INTEGER NOT NULL DEFAULT 0,
			content TEXT NOT NULL,
			embedding BLOB NOT NULL
		);
	`
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	v.db = conn
	return nil
}

// Close closes the index.
func (v *VectorIndex) Close() error {
	if v.db != nil {
		return v.db.Close()
	}
	return nil
}

// Upsert stores the entry, replacing any entry with the same ID.
func (v *VectorIndex) Upsert(ctx context.Context, entry legisearch.VectorEntry) error {
	if entry.ID == "" {
		return legisearch.Errorf(legisearch.EINVALID, "vector entry ID required")
	}
	if len(entry.Vector) == 0 {
		return legisearch.Errorf(legisearch.EINVALID, "vector entry embedding required")
	}

	_, err := v.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO vectors (id, record_id, content, embedding)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.RecordID, entry.Text, encodeVector(entry.Vector))
	if err != nil {
		return legisearch.Errorf(legisearch.EINDEX, "upsert vector %s: %v", entry.ID, err)
	}
	return nil
}

// Query returns up to k entries ranked by ascending cosine distance.
func (v *VectorIndex) Query(ctx context.Context, vector []float32, k int) ([]legisearch.VectorMatch, error) {
	if len(vector) == 0 {
		return nil, legisearch.Errorf(legisearch.EINVALID, "query vector required")
	}
	if k <= 0 {
		return nil, legisearch.Errorf(legisearch.EINVALID, "k must be positive")
	}

	rows, err := v.db.QueryContext(ctx, "SELECT id, record_id, content, embedding FROM vectors")
	if err != nil {
		return nil, legisearch.Errorf(legisearch.EINDEX, "query vectors: %v", err)
	}
	defer rows.Close()

	var matches []legisearch.VectorMatch
	for rows.Next() {
		var m legisearch.VectorMatch
		var blob []byte
		if err := rows.Scan(&m.ID, &m.RecordID, &m.Text, &blob); err != nil {
			return nil, err
		}
		m.Distance = cosineDistance(vector, decodeVector(blob))
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// Count returns the number of entries in the index.
func (v *VectorIndex) Count(ctx context.Context) (int, error) {
	var n int
	err := v.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vectors").Scan(&n)
	return n, err
}

// encodeVector serializes a vector as little-endian float32 values.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, f := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

// decodeVector is the inverse of encodeVector.
func decodeVector(buf []byte) []float32 {
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return vec
}

// cosineDistance returns 1 - cosine similarity. Mismatched dimensions and
// zero-magnitude vectors are maximally dissimilar.
func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
