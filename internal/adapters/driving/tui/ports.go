// Package tui provides an interactive terminal viewer for RNA alignments.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/rna-msa/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Family fetches, lists and parses alignments.
	Family driving.FamilyService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Family == nil {
		return ErrMissingFamilyService
	}
	return nil
}
