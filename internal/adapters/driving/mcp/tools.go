package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docq-labs/docq-cli/internal/core/domain"
	"github.com/docq-labs/docq-cli/internal/core/ports/driving"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the document store"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"number of chunks to retrieve (default 3)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string        `json:"answer"`
	Sources []string      `json:"sources,omitempty"`
	Chunks  []ChunkOutput `json:"chunks,omitempty"`
}

// ChunkOutput represents a single retrieved chunk.
type ChunkOutput struct {
	Source     string  `json:"source"`
	ChunkIndex int     `json:"chunk_index"`
	Distance   float64 `json:"distance"`
	Text       string  `json:"text"`
}

// StatusInput is the input schema for the status tool. It has no fields.
type StatusInput struct{}

// StatusOutput is the output schema for the status tool.
type StatusOutput struct {
	Chunks int `json:"chunks"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question grounded in the indexed documents",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "status",
		Description: "Report how many chunks are stored",
	}, s.handleStatus)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	result, err := s.ports.Ask.Ask(ctx, input.Question, driving.AskOptions{TopK: input.TopK})
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:  result.Answer,
		Sources: result.Sources,
		Chunks:  make([]ChunkOutput, len(result.ContextDocs)),
	}

	for i := range result.ContextDocs {
		hit := domain.Hit{Metadata: result.ContextMetas[i]}
		distance := 0.0
		if i < len(result.Distances) {
			distance = result.Distances[i]
		}
		output.Chunks[i] = ChunkOutput{
			Source:     hit.Source(),
			ChunkIndex: hit.ChunkIndex(),
			Distance:   distance,
			Text:       result.ContextDocs[i],
		}
	}

	return nil, output, nil
}

// handleStatus handles the status tool invocation.
func (s *Server) handleStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StatusInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if s.ports.Store == nil {
		return nil, StatusOutput{}, nil
	}

	count, err := s.ports.Store.Count(ctx)
	if err != nil {
		return nil, StatusOutput{}, err
	}

	return nil, StatusOutput{Chunks: count}, nil
}
