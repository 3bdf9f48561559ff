package driven

import (
	"context"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// SourceBuilder creates an AlignmentSource from application settings.
type SourceBuilder func(ctx context.Context, settings domain.AppSettings) (AlignmentSource, error)

// SourceFactory creates alignment sources from configuration.
// It maintains a registry of source types and their builders.
type SourceFactory interface {
	// Create returns a source for settings.Source.Type.
	// Returns domain.ErrUnsupportedType if the type is unknown.
	Create(ctx context.Context, settings domain.AppSettings) (AlignmentSource, error)

	// Register adds a builder for the given source type.
	Register(sourceType domain.SourceType, builder SourceBuilder)

	// SupportedTypes returns all registered source types.
	SupportedTypes() []domain.SourceType
}
