package mcp

import (
	"context"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driving"
)

// mockFamilyService implements driving.FamilyService for testing.
type mockFamilyService struct {
	family    *domain.Family
	raw       string
	ids       []string
	doc       *domain.AlignmentDocument
	structure *domain.StructureAnnotation
	err       error

	lastID       string
	lastOpts     domain.ParseOptions
	lastFeatures bool
}

var _ driving.FamilyService = (*mockFamilyService)(nil)

func (m *mockFamilyService) Get(_ context.Context, id string, opts domain.ParseOptions) (*domain.Family, error) {
	m.lastID, m.lastOpts = id, opts
	return m.family, m.err
}

func (m *mockFamilyService) GetRaw(_ context.Context, id string) (string, error) {
	m.lastID = id
	return m.raw, m.err
}

func (m *mockFamilyService) List(_ context.Context) ([]string, error) {
	return m.ids, m.err
}

func (m *mockFamilyService) Parse(_ context.Context, _ string, opts domain.ParseOptions) (*domain.AlignmentDocument, error) {
	m.lastOpts = opts
	return m.doc, m.err
}

func (m *mockFamilyService) DecodeStructure(_ context.Context, _ string, withFeatures bool) (*domain.StructureAnnotation, error) {
	m.lastFeatures = withFeatures
	return m.structure, m.err
}

func (m *mockFamilyService) Health(_ context.Context) domain.Health {
	return domain.Health{Service: "rna-msa", Version: "test"}
}

func sampleDocument() *domain.AlignmentDocument {
	return &domain.AlignmentDocument{
		Sequences: []domain.SequenceRecord{
			{Name: "seqA", Sequence: "ACGU"},
			{Name: "seqB", Sequence: "ACGA"},
		},
		Reference: "xxxx",
		Structure: &domain.StructureAnnotation{
			Consensus: "<__>",
			BasePairs: []domain.BasePair{{X: 1, Y: 4, Score: domain.BasePairScore}},
			Features: []domain.Feature{
				domain.NewFeature(1, 1, domain.FeatureStem),
				domain.NewFeature(2, 3, domain.FeatureLoop),
				domain.NewFeature(4, 4, domain.FeatureStem),
			},
		},
	}
}

func newTestServer(svc *mockFamilyService) *Server {
	s, err := NewServer(&Ports{Family: svc})
	if err != nil {
		panic(err)
	}
	return s
}
