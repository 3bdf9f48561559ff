// Package connectors provides implementations of the AlignmentSource
// interface. Each subpackage knows how to fetch Stockholm text from one
// backend (local directory, S3-compatible store, GitHub repository).
//
// Sources are created by the Factory from application settings at startup.
package connectors
