package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors and are checked with errors.Is.
var (
	// ErrConfiguration indicates missing or invalid startup configuration.
	// This is fatal and aborts before any pipeline work.
	ErrConfiguration = errors.New("configuration error")

	// ErrEmbedding indicates the embedding service failed after exhausting
	// its retry budget. Callers have no further local recovery.
	ErrEmbedding = errors.New("embedding failed")

	// ErrStore indicates the vector store failed. Store calls are not
	// retried; the error propagates immediately.
	ErrStore = errors.New("vector store failed")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
