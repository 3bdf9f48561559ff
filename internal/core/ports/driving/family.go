package driving

import (
	"context"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// FamilyService serves RNA family alignments to viewers.
type FamilyService interface {
	// Get fetches and parses the alignment for a family.
	Get(ctx context.Context, identifier string, opts domain.ParseOptions) (*domain.Family, error)

	// GetRaw returns the fetched Stockholm text unmodified.
	GetRaw(ctx context.Context, identifier string) (string, error)

	// List returns the family identifiers available from the source.
	List(ctx context.Context) ([]string, error)

	// Parse interprets Stockholm text supplied directly by the caller.
	Parse(ctx context.Context, content string, opts domain.ParseOptions) (*domain.AlignmentDocument, error)

	// DecodeStructure decodes a dot-bracket consensus on its own.
	DecodeStructure(ctx context.Context, consensus string, withFeatures bool) (*domain.StructureAnnotation, error)

	// Health reports the state of the service.
	Health(ctx context.Context) domain.Health
}
