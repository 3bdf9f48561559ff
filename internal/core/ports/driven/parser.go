package driven

import (
	"context"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// AlignmentParser transforms raw alignment bytes into a parsed document.
type AlignmentParser interface {
	// Format returns the alignment format handled (e.g., "stockholm").
	Format() string

	// Parse interprets the raw alignment. It never returns a partial
	// document alongside an error.
	Parse(ctx context.Context, raw *domain.RawAlignment, opts domain.ParseOptions) (*domain.AlignmentDocument, error)

	// DecodeStructure turns a dot-bracket consensus into base pairs and,
	// when withFeatures is set, feature segments.
	DecodeStructure(consensus string, withFeatures bool) domain.StructureAnnotation
}
