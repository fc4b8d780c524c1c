package mcp

import (
	"github.com/docq-labs/docq-cli/internal/core/ports/driven"
	"github.com/docq-labs/docq-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions from the document store.
	Ask driving.Answerer

	// Ingest feeds documents into the store.
	Ingest driving.Ingestor

	// Store exposes the vector store for status reporting.
	Store driven.VectorStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAnswerService
	}
	// Ingest and Store are optional
	return nil
}
