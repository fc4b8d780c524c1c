package driving

import (
	"context"

	"github.com/docq-labs/docq-cli/internal/core/domain"
)

// AskOptions configures a question round trip.
type AskOptions struct {
	// TopK is the number of nearest neighbours to retrieve.
	// Zero means the configured default.
	TopK int
}

// Answerer runs the retrieve-assemble-generate read path.
type Answerer interface {
	// Ask embeds the question, retrieves the nearest chunks, assembles a
	// deduplicated context and asks the LLM for a grounded answer.
	Ask(ctx context.Context, question string, opts AskOptions) (*domain.RetrievalResult, error)
}
