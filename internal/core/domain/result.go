package domain

// NoContext is the sentinel context handed to the generator when retrieval
// returns no hits. The generator's prompt contract turns it into the fixed
// insufficient-information reply.
const NoContext = "N/A"

// RetrievalResult is the outcome of one question round trip.
// ContextDocs, ContextMetas and Distances are the raw (non-deduplicated)
// retrieval arrays, kept for debugging and transparency; the deduplicated
// view only exists inside the assembled context string.
type RetrievalResult struct {
	// Answer is the generated answer text.
	Answer string

	// ContextDocs are the retrieved chunk texts in rank order.
	ContextDocs []string

	// ContextMetas are the retrieved chunk metadatas in rank order.
	ContextMetas []map[string]any

	// Distances are the retrieval distances in rank order.
	Distances []float64

	// Sources is the unique source list in first-seen order.
	Sources []string
}
