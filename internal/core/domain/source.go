package domain

// SourceType identifies where alignments are fetched from.
type SourceType string

// Available source types.
const (
	// SourceFilesystem reads Stockholm files from a local directory.
	SourceFilesystem SourceType = "filesystem"

	// SourceS3 reads objects from an S3-compatible object store.
	SourceS3 SourceType = "s3"

	// SourceGitHub reads files from a GitHub repository.
	SourceGitHub SourceType = "github"
)

// IsValid returns true if the source type is recognised.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceFilesystem, SourceS3, SourceGitHub:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t SourceType) String() string {
	return string(t)
}

// Description returns a human-readable description of the source type.
func (t SourceType) Description() string {
	switch t {
	case SourceFilesystem:
		return "Local directory"
	case SourceS3:
		return "S3-compatible object store"
	case SourceGitHub:
		return "GitHub repository"
	default:
		return unknownDescription
	}
}
