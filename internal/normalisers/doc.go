// Package normalisers provides implementations of the AlignmentParser interface
// for alignment text formats. Each normaliser knows how to turn the raw bytes
// fetched by an alignment source into a domain.AlignmentDocument.
//
// Normalisers are handed to the family service at startup.
package normalisers
