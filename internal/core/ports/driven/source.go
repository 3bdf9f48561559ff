package driven

import (
	"context"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// AlignmentSource fetches Stockholm text for a family identifier.
// Implementations are constructed explicitly and handed to the services
// that need them.
type AlignmentSource interface {
	// Type returns the source type identifier.
	Type() string

	// Fetch returns the alignment for the identifier.
	// Returns domain.ErrNotFound if the source has no such alignment.
	Fetch(ctx context.Context, identifier string) (*domain.RawAlignment, error)

	// List returns the identifiers available from the source.
	List(ctx context.Context) ([]string, error)

	// Close releases resources.
	Close() error
}

// WatchableSource is implemented by sources that can report changes.
type WatchableSource interface {
	AlignmentSource

	// Watch calls onChange with the identifier of every alignment that is
	// written or removed. It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func(identifier string)) error
}
