// Package retrying decorates an embedding service with bounded
// exponential-backoff retry and optional proactive rate limiting.
//
// Only the embedding collaborator is retried; vector store calls propagate
// failures immediately. Keeping the retry at this boundary keeps the
// asymmetry in one visible place.
package retrying

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driven"
	"github.com/docq-labs/docq-cli/internal/logger"
	"github.com/docq-labs/docq-cli/internal/retry"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// EmbeddingService wraps another embedding service with a retry policy.
// All failures are treated as transient; after the attempt budget is
// exhausted the last error propagates wrapped in domain.ErrEmbedding.
type EmbeddingService struct {
	inner   driven.EmbeddingService
	policy  retry.Policy
	limiter *rate.Limiter
}

// Option configures the retrying service.
type Option func(*EmbeddingService)

// WithPolicy sets the retry policy.
func WithPolicy(p retry.Policy) Option {
	return func(s *EmbeddingService) {
		s.policy = p
	}
}

// WithRateLimit throttles embedding calls to n requests per second.
// Zero or negative disables throttling.
func WithRateLimit(n float64) Option {
	return func(s *EmbeddingService) {
		if n > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(n), 1)
		}
	}
}

// Wrap decorates inner with the default retry policy and the given options.
func Wrap(inner driven.EmbeddingService, opts ...Option) *EmbeddingService {
	s := &EmbeddingService{
		inner:  inner,
		policy: retry.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Embed generates an embedding for a single text, retrying on failure.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	var result []float32
	err := s.do(ctx, "embed query", func(ctx context.Context) error {
		var callErr error
		result, callErr = s.inner.Embed(ctx, text)
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbedding, err)
	}
	return result, nil
}

// EmbedBatch generates embeddings for multiple texts, retrying the whole
// batch on failure. The result keeps input order.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var result [][]float32
	err := s.do(ctx, fmt.Sprintf("embed batch of %d", len(texts)), func(ctx context.Context) error {
		var callErr error
		result, callErr = s.inner.EmbedBatch(ctx, texts)
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbedding, err)
	}
	return result, nil
}

func (s *EmbeddingService) do(ctx context.Context, what string, fn func(context.Context) error) error {
	attempt := 0
	return s.policy.Do(ctx, func(ctx context.Context) error {
		attempt++
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return err
			}
		}
		err := fn(ctx)
		if err != nil {
			logger.Warn("%s: attempt %d failed: %v", what, attempt, err)
		}
		return err
	})
}

// ModelName returns the inner service's model name.
func (s *EmbeddingService) ModelName() string {
	return s.inner.ModelName()
}

// Close closes the inner service.
func (s *EmbeddingService) Close() error {
	return s.inner.Close()
}
