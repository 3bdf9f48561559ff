package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for alignment resources.
	uriScheme = "rnamsa://"

	// stockholmMIME is the media type used for raw alignments.
	stockholmMIME = "text/x-stockholm"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "families",
		Name:        "families",
		Description: "Identifiers of the RNA families available from the configured source",
		MIMEType:    "application/json",
	}, s.handleFamiliesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "families/{identifier}",
		Name:        "family-alignment",
		Description: "Raw Stockholm alignment of an RNA family",
		MIMEType:    stockholmMIME,
	}, s.handleFamilyResource)
}

// handleFamiliesResource returns the list of available families.
func (s *Server) handleFamiliesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ids, err := s.ports.Family.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing families: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}

	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling families: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFamilyResource returns the raw Stockholm text of one family.
func (s *Server) handleFamilyResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractIdentifier(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	raw, err := s.ports.Family.GetRaw(ctx, id)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching family: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: stockholmMIME,
			Text:     raw,
		}},
	}, nil
}

// extractIdentifier extracts the identifier from a URI like rnamsa://families/{identifier}.
func extractIdentifier(uri string) string {
	const prefix = uriScheme + "families/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
