package driven

import (
	"context"

	"github.com/docq-labs/docq-cli/internal/core/domain"
)

// DocumentSource supplies documents for ingestion.
// The core does not care how documents are discovered, only that each one
// carries a "source" metadata label usable for citation.
type DocumentSource interface {
	// Load returns all available documents.
	Load(ctx context.Context) ([]domain.Document, error)
}
