package cli

import (
	"context"

	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driving"
)

// mockIngestor is a mock implementation of driving.Ingestor.
type mockIngestor struct {
	count int
	err   error
	docs  []domain.Document
	calls int
}

func (m *mockIngestor) Ingest(_ context.Context, docs []domain.Document) (int, error) {
	m.calls++
	m.docs = docs
	return m.count, m.err
}

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

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings != nil {
		return m.settings, nil
	}
	defaults := domain.DefaultAppSettings()
	return &defaults, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) SetEmbeddingProvider(_ domain.AIProvider, _, _ string) error {
	return m.err
}

func (m *mockSettingsService) SetLLMProvider(_ domain.AIProvider, _, _ string) error {
	return m.err
}

func (m *mockSettingsService) Validate() error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// mockVectorStore is a mock implementation of driven.VectorStore.
type mockVectorStore struct {
	count int
	err   error
}

func (m *mockVectorStore) Add(_ context.Context, _ []domain.Record) error {
	return m.err
}

func (m *mockVectorStore) Query(_ context.Context, _ []float32, _ int) ([]domain.Hit, error) {
	return nil, m.err
}

func (m *mockVectorStore) Count(_ context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockVectorStore) Close() error {
	return nil
}

// withServices installs mock services for the duration of a test.
func withServices(ingest driving.Ingestor, ask driving.Answerer) func() {
	origIngest, origAsk := ingestService, askService
	ingestService, askService = ingest, ask
	return func() {
		ingestService, askService = origIngest, origAsk
	}
}
