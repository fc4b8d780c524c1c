package mcp

import (
	"context"

	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driving"
)

// mockAnswerer is a mock implementation of driving.Answerer.
type mockAnswerer struct {
	result   *domain.RetrievalResult
	err      error
	question string
	opts     driving.AskOptions
}

func (m *mockAnswerer) Ask(
	_ context.Context,
	question string,
	opts driving.AskOptions,
) (*domain.RetrievalResult, error) {
	m.question = question
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.RetrievalResult{}, nil
}

// mockIngestor is a mock implementation of driving.Ingestor.
type mockIngestor struct {
	count int
	err   error
}

func (m *mockIngestor) Ingest(_ context.Context, _ []domain.Document) (int, error) {
	return m.count, m.err
}

// mockStore is a mock implementation of driven.VectorStore.
type mockStore struct {
	count int
	err   error
}

func (m *mockStore) Add(_ context.Context, _ []domain.Record) error {
	return m.err
}

func (m *mockStore) Query(_ context.Context, _ []float32, _ int) ([]domain.Hit, error) {
	return nil, m.err
}

func (m *mockStore) Count(_ context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockStore) Close() error {
	return nil
}
