package domain

// MetaSource is the metadata key carrying the human-readable document label
// used for citations.
const MetaSource = "source"

// MetaChunkIndex is the metadata key carrying a chunk's 0-based position
// within its parent document.
const MetaChunkIndex = "chunk_index"

// MetaLength is the metadata key carrying a chunk's character count.
const MetaLength = "length"

// UnknownSource is the citation label used when metadata carries no source.
const UnknownSource = "unknown"

// Document is a raw text document handed to ingestion.
// It is immutable once passed to the pipeline.
type Document struct {
	// Content is the full text of the document.
	Content string

	// Metadata contains arbitrary key-value pairs. The "source" key holds
	// the human-readable label used for citations.
	Metadata map[string]any
}

// Source returns the document's citation label, or "unknown" when absent.
func (d Document) Source() string {
	if s, ok := d.Metadata[MetaSource].(string); ok && s != "" {
		return s
	}
	return UnknownSource
}

// Record is an embedded chunk as persisted by the vector store.
// Records are created once at ingestion time and never mutated; the ID is a
// freshly generated UUID used only for storage addressing.
type Record struct {
	// ID is the unique storage identifier.
	ID string

	// Text is the chunk text.
	Text string

	// Metadata is the parent document metadata plus chunk_index and length.
	Metadata map[string]any

	// Embedding is the vector representation of Text.
	Embedding []float32
}

// Hit is a single query result. Hits are ephemeral; they exist only within
// one search call's response.
type Hit struct {
	// Text is the stored chunk text.
	Text string

	// Metadata is the stored record metadata.
	Metadata map[string]any

	// Distance is the store's distance to the query vector.
	// Lower means more relevant.
	Distance float64
}

// Source returns the hit's citation label, or "unknown" when the metadata
// does not carry one.
func (h Hit) Source() string {
	if s, ok := h.Metadata[MetaSource].(string); ok && s != "" {
		return s
	}
	return UnknownSource
}

// ChunkIndex returns the hit's chunk position, or -1 when the metadata does
// not carry one.
func (h Hit) ChunkIndex() int {
	switch v := h.Metadata[MetaChunkIndex].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return -1
	}
}
