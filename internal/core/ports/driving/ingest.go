package driving

import (
	"context"

	"github.com/docq-labs/docq-cli/internal/core/domain"
)

// Ingestor runs the chunk-embed-store write path.
type Ingestor interface {
	// Ingest chunks, embeds and stores the given documents.
	// It returns the number of documents processed (not chunks); documents
	// that are empty after trimming are skipped and not counted.
	Ingest(ctx context.Context, docs []domain.Document) (int, error)
}
