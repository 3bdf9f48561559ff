package connectors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
)

// Ensure Unavailable implements the interface.
var _ driven.AlignmentSource = (*Unavailable)(nil)

// Unavailable stands in for a source that could not be built.
// Every Fetch and List reports domain.ErrSourceUnavailable along with the
// reason, so commands that only parse local text keep working.
type Unavailable struct {
	sourceType domain.SourceType
	cause      error
}

// NewUnavailable wraps the error that prevented a source from being built.
func NewUnavailable(sourceType domain.SourceType, cause error) *Unavailable {
	return &Unavailable{sourceType: sourceType, cause: cause}
}

// Type returns the configured source type.
func (u *Unavailable) Type() string {
	return string(u.sourceType)
}

// Fetch always fails.
func (u *Unavailable) Fetch(_ context.Context, identifier string) (*domain.RawAlignment, error) {
	return nil, u.err(identifier)
}

// List always fails.
func (u *Unavailable) List(_ context.Context) ([]string, error) {
	return nil, u.err("")
}

// Close is a no-op.
func (u *Unavailable) Close() error {
	return nil
}

func (u *Unavailable) err(identifier string) error {
	if u.cause == nil {
		return fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, u.sourceType)
	}
	if identifier == "" {
		return fmt.Errorf("%w: %s: %w", domain.ErrSourceUnavailable, u.sourceType, u.cause)
	}
	return fmt.Errorf("%w: %s %s: %w", domain.ErrSourceUnavailable, u.sourceType, identifier, u.cause)
}
