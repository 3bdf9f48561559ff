// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewFamilies lists the families available from the source.
	ViewFamilies ViewType = iota
	// ViewAlignment shows one alignment.
	ViewAlignment
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewFamilies:
		return "families"
	case ViewAlignment:
		return "alignment"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// FamiliesLoaded carries the identifiers listed by the source.
type FamiliesLoaded struct {
	Families []string
	Err      error
}

// FamilySelected is sent when a family is picked from the list.
type FamilySelected struct {
	Identifier string
}

// FamilyLoaded carries a fetched and parsed family.
type FamilyLoaded struct {
	Identifier string
	Family     *domain.Family
	Err        error
}

// ColumnRequested asks the alignment view to move the cursor to a column.
type ColumnRequested struct {
	Column int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
