package domain

import "errors"

// Parse errors. Every failure from the Stockholm parser wraps exactly one of these.
var (
	// ErrEmptyInput indicates the alignment text is empty or whitespace only.
	ErrEmptyInput = errors.New("empty alignment content")

	// ErrFormat indicates the text does not carry the "# STOCKHOLM" header token.
	ErrFormat = errors.New("not stockholm format")

	// ErrMalformedBlock indicates records disagree on column count.
	// Only raised when strict parsing is requested.
	ErrMalformedBlock = errors.New("malformed alignment block")
)

// Service errors.
var (
	// ErrNotFound indicates a requested family does not exist in the source.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown alignment source type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrSourceUnavailable indicates no alignment source is configured
	// or the configured source cannot be reached.
	ErrSourceUnavailable = errors.New("alignment source unavailable")
)

// IsParseError reports whether err originates from parsing alignment text.
func IsParseError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrFormat) ||
		errors.Is(err, ErrMalformedBlock)
}
