package tui

import (
	"context"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driving"
)

// MockFamilyService implements driving.FamilyService for testing.
type MockFamilyService struct {
	family *domain.Family
	ids    []string
	err    error

	lastID   string
	lastOpts domain.ParseOptions
}

var _ driving.FamilyService = (*MockFamilyService)(nil)

func (m *MockFamilyService) Get(_ context.Context, id string, opts domain.ParseOptions) (*domain.Family, error) {
	m.lastID, m.lastOpts = id, opts
	return m.family, m.err
}

func (m *MockFamilyService) GetRaw(_ context.Context, _ string) (string, error) {
	return "", m.err
}

func (m *MockFamilyService) List(_ context.Context) ([]string, error) {
	return m.ids, m.err
}

func (m *MockFamilyService) Parse(_ context.Context, _ string, _ domain.ParseOptions) (*domain.AlignmentDocument, error) {
	return nil, m.err
}

func (m *MockFamilyService) DecodeStructure(_ context.Context, _ string, _ bool) (*domain.StructureAnnotation, error) {
	return nil, m.err
}

func (m *MockFamilyService) Health(_ context.Context) domain.Health {
	return domain.Health{}
}

func hairpin() *domain.Family {
	return &domain.Family{
		Identifier: "RF03116",
		Source:     "file:///data/rf03116.sto",
		Document: &domain.AlignmentDocument{
			Sequences: []domain.SequenceRecord{
				{Name: "seqA", Sequence: "ACGUUACGU"},
				{Name: "seqB", Sequence: "ACG-UACGA"},
			},
			Structure: &domain.StructureAnnotation{
				Consensus: "<<<___>>>",
				BasePairs: []domain.BasePair{
					{X: 3, Y: 7, Score: 1},
					{X: 2, Y: 8, Score: 1},
					{X: 1, Y: 9, Score: 1},
				},
			},
		},
	}
}
