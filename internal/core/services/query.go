package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driven"
	"github.com/docq-labs/docq-cli/internal/core/ports/driving"
	"github.com/docq-labs/docq-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.Answerer = (*QueryService)(nil)

// DefaultTopK is the number of chunks retrieved when nothing is configured.
const DefaultTopK = 3

// contextSeparator joins labelled chunks into the context block.
const contextSeparator = "\n\n---\n\n"

// QueryService runs the read path: embed the question, retrieve the nearest
// chunks, assemble a deduplicated context block and ask the LLM for an
// answer grounded in that context.
type QueryService struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
	llm      driven.LLMService
	prompts  driven.PromptStore
	topK     int
}

// QueryOption configures a QueryService.
type QueryOption func(*QueryService)

// WithTopK sets the default number of chunks to retrieve.
func WithTopK(k int) QueryOption {
	return func(s *QueryService) {
		if k > 0 {
			s.topK = k
		}
	}
}

// NewQueryService creates a new query service.
func NewQueryService(
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	llm driven.LLMService,
	prompts driven.PromptStore,
	opts ...QueryOption,
) *QueryService {
	s := &QueryService{
		embedder: embedder,
		store:    store,
		llm:      llm,
		prompts:  prompts,
		topK:     DefaultTopK,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask answers a question from the stored documents. The question is
// normalised for retrieval only; the prompt always carries the original
// wording. The generator is invoked even when retrieval finds nothing, so
// the model can reply with its insufficient-information sentence.
func (s *QueryService) Ask(
	ctx context.Context, question string, opts driving.AskOptions,
) (*domain.RetrievalResult, error) {
	logger.Section("Question Answering")
	logger.Debug("Question: %q", question)

	normalized := normalizeQuery(question)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}
	logger.Debug("Normalized: %q", normalized)

	// 1) Embed the normalised question
	embedding, err := s.embedder.Embed(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	logger.Debug("Question embedding: %d dimensions", len(embedding))

	// 2) Retrieve
	k := opts.TopK
	if k <= 0 {
		k = s.topK
	}
	hits, err := s.store.Query(ctx, embedding, k)
	if err != nil {
		return nil, fmt.Errorf("query store: %w", err)
	}
	logger.Debug("Retrieved %d chunk(s)", len(hits))

	contextDocs := make([]string, len(hits))
	contextMetas := make([]map[string]any, len(hits))
	distances := make([]float64, len(hits))
	for i, hit := range hits {
		contextDocs[i] = hit.Text
		contextMetas[i] = hit.Metadata
		distances[i] = hit.Distance
	}

	// 3) Assemble context, deduplicating repeated chunks
	contextBlock := assembleContext(hits)

	// 4) Generate with the original question wording
	template, err := s.prompts.Load(driven.PromptAnswer)
	if err != nil {
		return nil, fmt.Errorf("load answer prompt: %w", err)
	}
	prompt := fmt.Sprintf(template, contextBlock, question)

	answer, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{Temperature: 0})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}
	logger.Info("Answer generated (%d chars)", len(answer))

	return &domain.RetrievalResult{
		Answer:       answer,
		ContextDocs:  contextDocs,
		ContextMetas: contextMetas,
		Distances:    distances,
		Sources:      uniqueSources(contextMetas),
	}, nil
}

// normalizeQuery trims, lowercases and collapses internal whitespace.
// Retrieval works on the normalised form; the prompt keeps the original.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

// assembleContext labels each chunk with its source and joins them with a
// separator. Chunks sharing a (source, chunk index) pair appear once, first
// occurrence wins. An empty hit list yields the NoContext sentinel.
func assembleContext(hits []domain.Hit) string {
	type chunkKey struct {
		source string
		index  int
	}

	var labeled []string
	seen := make(map[chunkKey]bool)

	for _, hit := range hits {
		key := chunkKey{source: hit.Source(), index: hit.ChunkIndex()}
		if seen[key] {
			continue
		}
		seen[key] = true
		labeled = append(labeled, fmt.Sprintf("%s\n(source: %s)", hit.Text, key.source))
	}

	if len(labeled) == 0 {
		return domain.NoContext
	}
	return strings.Join(labeled, contextSeparator)
}

// uniqueSources returns source names in first-seen order from the raw,
// non-deduplicated metadata list.
func uniqueSources(metas []map[string]any) []string {
	var sources []string
	seen := make(map[string]bool)

	for _, meta := range metas {
		source := metaSource(meta)
		if seen[source] {
			continue
		}
		seen[source] = true
		sources = append(sources, source)
	}

	return sources
}

// metaSource reads the source name from chunk metadata.
func metaSource(meta map[string]any) string {
	if meta != nil {
		if s, ok := meta[domain.MetaSource].(string); ok && s != "" {
			return s
		}
	}
	return domain.UnknownSource
}
