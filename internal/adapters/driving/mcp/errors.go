// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants fetch RNA family alignments, parse Stockholm text
// and decode secondary structure consensus lines.
package mcp

import "errors"

// ErrMissingFamilyService is returned when the family service is not provided.
var ErrMissingFamilyService = errors.New("mcp: family service is required")
