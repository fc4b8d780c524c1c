// Package memory provides in-memory implementations of driven port interfaces,
// useful for tests and ephemeral sessions where nothing should touch disk.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// VectorStore is an in-memory implementation of driven.VectorStore.
type VectorStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
	order   []string
}

// NewVectorStore creates a new in-memory vector store.
func NewVectorStore() *VectorStore {
	return &VectorStore{
		records: make(map[string]domain.Record),
	}
}

// Add stores records, replacing any existing record with the same ID.
func (s *VectorStore) Add(_ context.Context, records []domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		if _, exists := s.records[rec.ID]; !exists {
			s.order = append(s.order, rec.ID)
		}
		s.records[rec.ID] = rec
	}
	return nil
}

// Query returns the k nearest records by squared Euclidean distance.
func (s *VectorStore) Query(_ context.Context, embedding []float32, k int) ([]domain.Hit, error) {
	if k <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []domain.Hit
	for _, id := range s.order {
		rec := s.records[id]
		if len(rec.Embedding) != len(embedding) {
			continue
		}
		var sum float64
		for i := range embedding {
			d := float64(embedding[i]) - float64(rec.Embedding[i])
			sum += d * d
		}
		hits = append(hits, domain.Hit{
			Text:     rec.Text,
			Metadata: rec.Metadata,
			Distance: sum,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	if len(hits) > k {
		hits = hits[:k]
	}

	return hits, nil
}

// Count returns the number of stored records.
func (s *VectorStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Close is a no-op for the in-memory store.
func (s *VectorStore) Close() error {
	return nil
}
