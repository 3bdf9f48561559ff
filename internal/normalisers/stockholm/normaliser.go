package stockholm

import (
	"context"
	"fmt"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
	"github.com/custodia-labs/rna-msa/internal/logger"
)

// Ensure Normaliser implements the interface.
var _ driven.AlignmentParser = (*Normaliser)(nil)

// Normaliser handles Stockholm alignments.
type Normaliser struct{}

// New creates a new Stockholm normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Format returns the alignment format this normaliser reads.
func (n *Normaliser) Format() string {
	return "stockholm"
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".sto", ".stk", ".stockholm"}
}

// Parse converts fetched Stockholm bytes into an alignment document.
func (n *Normaliser) Parse(
	ctx context.Context,
	raw *domain.RawAlignment,
	opts domain.ParseOptions,
) (*domain.AlignmentDocument, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := Parse(raw.Text(), OptionsFrom(opts)...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", raw.Identifier, err)
	}

	logger.Debug("parsed %s: %d sequences, %d columns, structure=%t",
		raw.Identifier, doc.Len(), doc.Columns(), doc.Structure != nil)
	return doc, nil
}

// DecodeStructure decodes a dot-bracket consensus on its own.
func (n *Normaliser) DecodeStructure(consensus string, withFeatures bool) domain.StructureAnnotation {
	return DecodeStructure(consensus, withFeatures)
}
