package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/docq-labs/docq-cli/internal/chunker"
	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driven"
	"github.com/docq-labs/docq-cli/internal/core/ports/driving"
	"github.com/docq-labs/docq-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService runs the write path: chunk documents, embed the chunks in
// one batch, and store the records. The whole batch is embedded with a
// single upstream call and stored with a single Add so a failure leaves the
// store untouched.
type IngestService struct {
	splitter *chunker.Splitter
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewIngestService creates a new ingest service.
func NewIngestService(
	splitter *chunker.Splitter,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
) *IngestService {
	return &IngestService{
		splitter: splitter,
		embedder: embedder,
		store:    store,
	}
}

// Ingest chunks, embeds and stores the given documents. It returns the
// number of documents that contributed at least one chunk; documents that
// are empty after trimming are skipped. When nothing survives trimming,
// no embedding or store call is made.
func (s *IngestService) Ingest(ctx context.Context, docs []domain.Document) (int, error) {
	logger.Section("Ingestion")
	logger.Debug("Documents received: %d", len(docs))

	var texts []string
	var metas []map[string]any
	processed := 0

	for _, doc := range docs {
		content := strings.TrimSpace(doc.Content)
		if content == "" {
			logger.Debug("Skipping empty document (source: %s)", doc.Source())
			continue
		}

		chunks := s.splitter.Split(content)
		if len(chunks) == 0 {
			continue
		}
		processed++

		for idx, chunk := range chunks {
			meta := make(map[string]any, len(doc.Metadata)+2)
			for k, v := range doc.Metadata {
				meta[k] = v
			}
			meta[domain.MetaChunkIndex] = idx
			meta[domain.MetaLength] = utf8.RuneCountInString(chunk)

			texts = append(texts, chunk)
			metas = append(metas, meta)
		}
	}

	if len(texts) == 0 {
		logger.Debug("Nothing to ingest")
		return 0, nil
	}

	logger.Debug("Embedding %d chunk(s) from %d document(s)", len(texts), processed)

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}
	if len(vectors) != len(texts) {
		return 0, fmt.Errorf("embed chunks: got %d vectors for %d texts", len(vectors), len(texts))
	}

	records := make([]domain.Record, len(texts))
	for i := range texts {
		records[i] = domain.Record{
			ID:        uuid.NewString(),
			Text:      texts[i],
			Metadata:  metas[i],
			Embedding: vectors[i],
		}
	}

	if err := s.store.Add(ctx, records); err != nil {
		return 0, fmt.Errorf("store records: %w", err)
	}

	logger.Info("Ingested %d chunk(s) from %d document(s)", len(records), processed)
	return processed, nil
}
