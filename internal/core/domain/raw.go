package domain

import "time"

// RawAlignment represents opaque Stockholm bytes fetched by an alignment source.
// It is the source's output before parsing.
type RawAlignment struct {
	// Identifier is the family identifier the alignment was fetched for (e.g., "RF03116").
	Identifier string

	// URI is the original location (file path, s3:// or github:// URI).
	URI string

	// Content is the raw Stockholm text.
	Content []byte

	// FetchedAt is when the source returned the content.
	FetchedAt time.Time

	// Metadata contains source-specific key-value pairs (etag, size, sha).
	Metadata map[string]any
}

// Text returns the content as a string.
func (r *RawAlignment) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}
