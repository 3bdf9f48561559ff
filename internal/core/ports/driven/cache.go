package driven

import "github.com/custodia-labs/rna-msa/internal/core/domain"

// AlignmentCache keeps recently fetched alignments keyed by identifier.
type AlignmentCache interface {
	// Get returns a cached alignment if present and not expired.
	Get(identifier string) (*domain.RawAlignment, bool)

	// Put stores an alignment under its identifier.
	Put(raw *domain.RawAlignment)

	// Invalidate drops the entry for an identifier.
	Invalidate(identifier string)

	// Len returns the number of live entries.
	Len() int
}
