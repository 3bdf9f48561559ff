package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectClient(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ss, err := s.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })
	return cs
}

func TestSession_ListsToolsAndResources(t *testing.T) {
	cs := connectClient(t, newTestServer(&mockFamilyService{}))
	ctx := context.Background()

	tools, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"get_family", "parse_stockholm", "decode_structure"}, names)

	resources, err := cs.ListResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resources.Resources, 1)
	assert.Equal(t, "rnamsa://families", resources.Resources[0].URI)

	templates, err := cs.ListResourceTemplates(ctx, nil)
	require.NoError(t, err)
	require.Len(t, templates.ResourceTemplates, 1)
	assert.Equal(t, "rnamsa://families/{identifier}", templates.ResourceTemplates[0].URITemplate)
}

func TestSession_DecodeStructure(t *testing.T) {
	svc := &mockFamilyService{structure: sampleDocument().Structure}
	cs := connectClient(t, newTestServer(svc))

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "decode_structure",
		Arguments: map[string]any{"consensus": "<__>"},
	})

	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.True(t, svc.lastFeatures)
}
