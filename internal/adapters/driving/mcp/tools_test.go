package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docq-labs/docq-cli/internal/core/domain"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns answer with chunks", func(t *testing.T) {
		mockAsk := &mockAnswerer{
			result: &domain.RetrievalResult{
				Answer:      "Paris is the capital of France.",
				ContextDocs: []string{"Paris is the capital."},
				ContextMetas: []map[string]any{
					{domain.MetaSource: "france.txt", domain.MetaChunkIndex: 0},
				},
				Distances: []float64{0.12},
				Sources:   []string{"france.txt"},
			},
		}

		ports := &Ports{Ask: mockAsk}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := AskInput{Question: "What is the capital of France?", TopK: 5}
		_, output, err := server.handleAsk(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "Paris is the capital of France.", output.Answer)
		assert.Equal(t, []string{"france.txt"}, output.Sources)
		require.Len(t, output.Chunks, 1)
		assert.Equal(t, "france.txt", output.Chunks[0].Source)
		assert.Equal(t, 0, output.Chunks[0].ChunkIndex)
		assert.Equal(t, 0.12, output.Chunks[0].Distance)
		assert.Equal(t, "Paris is the capital.", output.Chunks[0].Text)

		assert.Equal(t, "What is the capital of France?", mockAsk.question)
		assert.Equal(t, 5, mockAsk.opts.TopK)
	})

	t.Run("zero top_k passes through for default", func(t *testing.T) {
		mockAsk := &mockAnswerer{}
		ports := &Ports{Ask: mockAsk}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := AskInput{Question: "anything"}
		_, _, err = server.handleAsk(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 0, mockAsk.opts.TopK)
	})

	t.Run("returns error on ask failure", func(t *testing.T) {
		mockAsk := &mockAnswerer{
			err: errors.New("ask failed"),
		}

		ports := &Ports{Ask: mockAsk}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := AskInput{Question: "anything"}
		_, _, err = server.handleAsk(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ask failed")
	})
}

func TestServer_handleStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("returns chunk count", func(t *testing.T) {
		ports := &Ports{
			Ask:   &mockAnswerer{},
			Store: &mockStore{count: 42},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleStatus(ctx, nil, StatusInput{})

		require.NoError(t, err)
		assert.Equal(t, 42, output.Chunks)
	})

	t.Run("nil store reports zero", func(t *testing.T) {
		ports := &Ports{Ask: &mockAnswerer{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleStatus(ctx, nil, StatusInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Chunks)
	})

	t.Run("returns error on count failure", func(t *testing.T) {
		ports := &Ports{
			Ask:   &mockAnswerer{},
			Store: &mockStore{err: errors.New("count failed")},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleStatus(ctx, nil, StatusInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "count failed")
	})
}
