package tui

import "errors"

// ErrMissingFamilyService is returned when the family service is not provided.
var ErrMissingFamilyService = errors.New("tui: family service is required")
