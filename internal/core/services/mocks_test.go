package services

import (
	"context"
	"fmt"

	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbedder implements driven.EmbeddingService for testing.
type mockEmbedder struct {
	embedding  []float32
	embedErr   error
	embedCalls []string

	batchVectors [][]float32
	batchErr     error
	batchCalls   [][]string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.embedCalls = append(m.embedCalls, text)
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.embedding, nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.batchCalls = append(m.batchCalls, texts)
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	if m.batchVectors != nil {
		return m.batchVectors, nil
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = []float32{float32(i)}
	}
	return result, nil
}

func (m *mockEmbedder) ModelName() string { return "mock-embedder" }
func (m *mockEmbedder) Close() error      { return nil }

// mockVectorStore implements driven.VectorStore for testing.
type mockVectorStore struct {
	hits     []domain.Hit
	queryErr error
	addErr   error

	added   []domain.Record
	queries [][]float32
	ks      []int
}

func (m *mockVectorStore) Add(_ context.Context, records []domain.Record) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, records...)
	return nil
}

func (m *mockVectorStore) Query(_ context.Context, vector []float32, k int) ([]domain.Hit, error) {
	m.queries = append(m.queries, vector)
	m.ks = append(m.ks, k)
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if k < len(m.hits) {
		return m.hits[:k], nil
	}
	return m.hits, nil
}

func (m *mockVectorStore) Count(_ context.Context) (int, error) {
	return len(m.added), nil
}

func (m *mockVectorStore) Close() error { return nil }

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	answer      string
	generateErr error
	prompts     []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.answer, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }
func (m *mockLLM) Close() error      { return nil }

// mockPromptStore implements driven.PromptStore for testing.
type mockPromptStore struct {
	template string
	loadErr  error
}

func (m *mockPromptStore) Load(_ string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	if m.template != "" {
		return m.template, nil
	}
	return "CONTEXT:\n%s\n\nQUESTION:\n%s", nil
}

func (m *mockPromptStore) Reload() {}

// mockConfigStore implements driven.ConfigStore backed by a plain map.
type mockConfigStore struct {
	data   map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if s, ok := m.data[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.data[key].(bool)
	return b
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return fmt.Errorf("set %s: %w", key, m.setErr)
	}
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string {
	return "/tmp/mock-config.toml"
}
