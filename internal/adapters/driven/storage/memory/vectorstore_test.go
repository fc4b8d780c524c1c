package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docq-labs/docq-cli/internal/core/domain"
)

func record(id, text string, embedding []float32) domain.Record {
	return domain.Record{
		ID:        id,
		Text:      text,
		Metadata:  map[string]any{domain.MetaSource: "test.txt"},
		Embedding: embedding,
	}
}

func TestVectorStore_AddAndCount(t *testing.T) {
	store := NewVectorStore()
	ctx := context.Background()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, store.Add(ctx, []domain.Record{
		record("a", "one", []float32{1, 0}),
		record("b", "two", []float32{0, 1}),
	}))

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestVectorStore_AddReplacesByID(t *testing.T) {
	store := NewVectorStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, []domain.Record{record("a", "old", []float32{1})}))
	require.NoError(t, store.Add(ctx, []domain.Record{record("a", "new", []float32{1})}))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	hits, err := store.Query(ctx, []float32{1}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "new", hits[0].Text)
}

func TestVectorStore_QueryOrdersByDistance(t *testing.T) {
	store := NewVectorStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, []domain.Record{
		record("far", "far", []float32{5, 5}),
		record("near", "near", []float32{1, 1}),
	}))

	hits, err := store.Query(ctx, []float32{1, 1}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "near", hits[0].Text)
	assert.Equal(t, "far", hits[1].Text)
	assert.InDelta(t, 0.0, hits[0].Distance, 1e-9)
	assert.InDelta(t, 32.0, hits[1].Distance, 1e-9)
}

func TestVectorStore_QueryLimitsToK(t *testing.T) {
	store := NewVectorStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, []domain.Record{
		record("a", "a", []float32{1}),
		record("b", "b", []float32{2}),
		record("c", "c", []float32{3}),
	}))

	hits, err := store.Query(ctx, []float32{0}, 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestVectorStore_QueryEmpty(t *testing.T) {
	store := NewVectorStore()

	hits, err := store.Query(context.Background(), []float32{1}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestVectorStore_QuerySkipsDimensionMismatch(t *testing.T) {
	store := NewVectorStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, []domain.Record{
		record("a", "match", []float32{1, 0}),
		record("b", "mismatch", []float32{1, 0, 0}),
	}))

	hits, err := store.Query(ctx, []float32{1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "match", hits[0].Text)
}
