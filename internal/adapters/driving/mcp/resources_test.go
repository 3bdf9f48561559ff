package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestHandleFamiliesResource(t *testing.T) {
	s := newTestServer(&mockFamilyService{ids: []string{"rf00001", "rf03116"}})

	result, err := s.handleFamiliesResource(context.Background(), readRequest("rnamsa://families"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.JSONEq(t, `["rf00001","rf03116"]`, result.Contents[0].Text)
}

func TestHandleFamiliesResource_Empty(t *testing.T) {
	s := newTestServer(&mockFamilyService{})

	result, err := s.handleFamiliesResource(context.Background(), readRequest("rnamsa://families"))

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, result.Contents[0].Text)
}

func TestHandleFamiliesResource_Error(t *testing.T) {
	s := newTestServer(&mockFamilyService{err: domain.ErrSourceUnavailable})

	_, err := s.handleFamiliesResource(context.Background(), readRequest("rnamsa://families"))

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestHandleFamilyResource(t *testing.T) {
	svc := &mockFamilyService{raw: "# STOCKHOLM 1.0\nseqA ACGU\n//\n"}
	s := newTestServer(svc)

	result, err := s.handleFamilyResource(context.Background(), readRequest("rnamsa://families/RF03116"))

	require.NoError(t, err)
	assert.Equal(t, "RF03116", svc.lastID)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, stockholmMIME, result.Contents[0].MIMEType)
	assert.Equal(t, svc.raw, result.Contents[0].Text)
	assert.Equal(t, "rnamsa://families/RF03116", result.Contents[0].URI)
}

func TestHandleFamilyResource_NotFound(t *testing.T) {
	s := newTestServer(&mockFamilyService{err: domain.ErrNotFound})

	_, err := s.handleFamilyResource(context.Background(), readRequest("rnamsa://families/RF99999"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestHandleFamilyResource_SourceError(t *testing.T) {
	s := newTestServer(&mockFamilyService{err: errors.New("bucket offline")})

	_, err := s.handleFamilyResource(context.Background(), readRequest("rnamsa://families/RF03116"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket offline")
}

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"rnamsa://families/RF03116", "RF03116"},
		{"rnamsa://families/", ""},
		{"rnamsa://families/a/b", ""},
		{"rnamsa://other/RF03116", ""},
		{"https://example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, extractIdentifier(tt.uri))
		})
	}
}
