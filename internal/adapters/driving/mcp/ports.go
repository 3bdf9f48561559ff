package mcp

import (
	"github.com/custodia-labs/rna-msa/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Family fetches and parses alignments.
	Family driving.FamilyService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Family == nil {
		return ErrMissingFamilyService
	}
	return nil
}
