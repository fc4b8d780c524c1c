package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Docq resources.
	uriScheme = "docq://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the store status.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "store",
		Name:        "store",
		Description: "Status of the local vector store",
		MIMEType:    "application/json",
	}, s.handleStoreResource)
}

// handleStoreResource returns the store status as JSON.
func (s *Server) handleStoreResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type storeInfo struct {
		Chunks int `json:"chunks"`
	}

	info := storeInfo{}
	if s.ports.Store != nil {
		count, err := s.ports.Store.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting records: %w", err)
		}
		info.Chunks = count
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling store status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
