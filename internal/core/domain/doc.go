// Package domain defines the core entities for the RNA alignment service.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - AlignmentDocument: A parsed Stockholm alignment
//   - StructureAnnotation: A decoded secondary-structure consensus
//   - RawAlignment: Opaque bytes fetched by an alignment source
//   - Family: An alignment plus the metadata served to viewers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
