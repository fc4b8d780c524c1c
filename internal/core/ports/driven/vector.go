package driven

import (
	"context"

	"github.com/docq-labs/docq-cli/internal/core/domain"
)

// VectorStore is a persistent keyed nearest-neighbour index.
//
// Record IDs are always freshly generated, so every Add is an insert, never
// an update. Store failures are not retried at this layer; only the embedding
// collaborator carries a retry policy.
type VectorStore interface {
	// Add persists records to the index. No-op on empty input.
	Add(ctx context.Context, records []domain.Record) error

	// Query returns the k nearest stored records to the query vector,
	// ranked by ascending distance. Fewer than k hits are returned when
	// the store holds fewer records; an empty store yields no hits.
	Query(ctx context.Context, vector []float32, k int) ([]domain.Hit, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
