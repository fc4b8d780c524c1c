// Package mcp provides an MCP (Model Context Protocol) server adapter for Docq.
// It lets AI assistants ask questions grounded in the local document store.
package mcp

import "errors"

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")
