package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// GetFamilyInput is the input schema for the get_family tool.
type GetFamilyInput struct {
	Identifier string `json:"identifier" jsonschema:"the RNA family identifier, e.g. RF03116"`
	Features   *bool  `json:"features,omitempty" jsonschema:"segment the consensus into stems and loops (default true)"`
	Strict     bool   `json:"strict,omitempty" jsonschema:"reject alignments whose rows differ in column count"`
}

// ParseInput is the input schema for the parse_stockholm tool.
type ParseInput struct {
	Content  string `json:"content" jsonschema:"complete Stockholm alignment text"`
	Features *bool  `json:"features,omitempty" jsonschema:"segment the consensus into stems and loops (default true)"`
	Strict   bool   `json:"strict,omitempty" jsonschema:"reject alignments whose rows differ in column count"`
}

// DecodeInput is the input schema for the decode_structure tool.
type DecodeInput struct {
	Consensus string `json:"consensus" jsonschema:"dot-bracket secondary structure line, e.g. <<<___>>>"`
	Features  *bool  `json:"features,omitempty" jsonschema:"segment the consensus into stems and loops (default true)"`
}

// AlignmentSummary is the output schema for the alignment tools.
type AlignmentSummary struct {
	Identifier   string            `json:"identifier,omitempty"`
	Title        string            `json:"title,omitempty"`
	Sequences    int               `json:"sequences"`
	Columns      int               `json:"columns"`
	Names        []string          `json:"names"`
	HasReference bool              `json:"has_reference"`
	HasStructure bool              `json:"has_structure"`
	Consensus    string            `json:"consensus,omitempty"`
	BasePairs    []domain.BasePair `json:"base_pairs"`
	Features     []domain.Feature  `json:"features,omitempty"`
}

// StructureOutput is the output schema for the decode_structure tool.
type StructureOutput struct {
	Consensus string            `json:"consensus"`
	BasePairs []domain.BasePair `json:"base_pairs"`
	Features  []domain.Feature  `json:"features,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_family",
		Description: "Fetch an RNA family alignment and summarise its sequences and secondary structure",
	}, s.handleGetFamily)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_stockholm",
		Description: "Parse Stockholm alignment text and summarise its sequences and secondary structure",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "decode_structure",
		Description: "Decode a dot-bracket consensus line into base pairs and stem/loop features",
	}, s.handleDecode)
}

func featuresOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// handleGetFamily handles the get_family tool invocation.
func (s *Server) handleGetFamily(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetFamilyInput,
) (*mcp.CallToolResult, AlignmentSummary, error) {
	opts := domain.ParseOptions{Features: featuresOrDefault(input.Features), Strict: input.Strict}
	family, err := s.ports.Family.Get(ctx, input.Identifier, opts)
	if err != nil {
		return nil, AlignmentSummary{}, err
	}

	out := summarise(family.Document)
	out.Identifier = family.Identifier
	out.Title = family.Metadata().Title
	return nil, out, nil
}

// handleParse handles the parse_stockholm tool invocation.
func (s *Server) handleParse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, AlignmentSummary, error) {
	opts := domain.ParseOptions{Features: featuresOrDefault(input.Features), Strict: input.Strict}
	doc, err := s.ports.Family.Parse(ctx, input.Content, opts)
	if err != nil {
		return nil, AlignmentSummary{}, err
	}
	return nil, summarise(doc), nil
}

// handleDecode handles the decode_structure tool invocation.
func (s *Server) handleDecode(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DecodeInput,
) (*mcp.CallToolResult, StructureOutput, error) {
	ann, err := s.ports.Family.DecodeStructure(ctx, input.Consensus, featuresOrDefault(input.Features))
	if err != nil {
		return nil, StructureOutput{}, err
	}
	return nil, StructureOutput{
		Consensus: ann.Consensus,
		BasePairs: ann.BasePairs,
		Features:  ann.Features,
	}, nil
}

func summarise(doc *domain.AlignmentDocument) AlignmentSummary {
	out := AlignmentSummary{
		Sequences:    doc.Len(),
		Columns:      doc.Columns(),
		Names:        make([]string, 0, doc.Len()),
		HasReference: doc.Reference != "",
		HasStructure: doc.Structure != nil,
		BasePairs:    []domain.BasePair{},
	}
	for _, rec := range doc.Sequences {
		out.Names = append(out.Names, rec.Name)
	}
	if doc.Structure != nil {
		out.Consensus = doc.Structure.Consensus
		out.BasePairs = doc.Structure.BasePairs
		out.Features = doc.Structure.Features
	}
	return out
}
