// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - AlignmentParser: Turns fetched Stockholm bytes into an AlignmentDocument
//   - AlignmentSource: Fetches alignment text (local directory, S3, GitHub)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - AlignmentCache: Keeps recently fetched alignments. Without it every request hits the source.
//   - WatchableSource: Sources that can report changes, used to invalidate the cache.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
