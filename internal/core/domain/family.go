package domain

import "fmt"

// Family is a parsed alignment together with the metadata shown by viewers.
type Family struct {
	// Identifier is the family accession (e.g., "RF03116").
	Identifier string

	// Source is the location the alignment was read from.
	Source string

	// Document is the parsed alignment.
	Document *AlignmentDocument
}

// FamilyMetadata is the descriptive block returned alongside an alignment.
type FamilyMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Count       int    `json:"count"`
	Identifier  string `json:"identifier"`
}

// Metadata builds the descriptive block for the family.
func (f *Family) Metadata() FamilyMetadata {
	return FamilyMetadata{
		Title:       fmt.Sprintf("%s RNA Family", f.Identifier),
		Description: fmt.Sprintf("Multiple sequence alignment for RNA family %s", f.Identifier),
		Source:      fmt.Sprintf("Stockholm file: %s", f.Source),
		Count:       f.Document.Len(),
		Identifier:  f.Identifier,
	}
}

// Health describes the running service.
type Health struct {
	Service    string `json:"service"`
	Version    string `json:"version"`
	SourceType string `json:"source_type"`
	Cached     int    `json:"cached_alignments"`
}
