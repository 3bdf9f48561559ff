package connectors

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/rna-msa/internal/connectors/filesystem"
	"github.com/custodia-labs/rna-msa/internal/connectors/github"
	"github.com/custodia-labs/rna-msa/internal/connectors/s3"
	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.SourceFactory = (*Factory)(nil)

// Factory builds alignment sources by type.
type Factory struct {
	mu       sync.RWMutex
	builders map[domain.SourceType]driven.SourceBuilder
}

// NewFactory creates a factory with the built-in sources registered.
func NewFactory() *Factory {
	f := &Factory{builders: make(map[domain.SourceType]driven.SourceBuilder)}
	f.Register(domain.SourceFilesystem, buildFilesystem)
	f.Register(domain.SourceS3, buildS3)
	f.Register(domain.SourceGitHub, buildGitHub)
	return f
}

// Register adds a builder for the given source type, replacing any existing one.
func (f *Factory) Register(sourceType domain.SourceType, builder driven.SourceBuilder) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.builders[sourceType] = builder
}

// SupportedTypes returns all registered source types, sorted.
func (f *Factory) SupportedTypes() []domain.SourceType {
	f.mu.RLock()
	defer f.mu.RUnlock()
	types := make([]domain.SourceType, 0, len(f.builders))
	for t := range f.builders {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Create returns a source for settings.Source.Type.
func (f *Factory) Create(ctx context.Context, settings domain.AppSettings) (driven.AlignmentSource, error) {
	f.mu.RLock()
	builder, ok := f.builders[settings.Source.Type]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: source type %q", domain.ErrUnsupportedType, settings.Source.Type)
	}

	source, err := builder(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("create %s source: %w", settings.Source.Type, err)
	}
	return source, nil
}

func buildFilesystem(_ context.Context, settings domain.AppSettings) (driven.AlignmentSource, error) {
	root := settings.Source.Path
	if root == "" {
		root = "."
	}
	return filesystem.New(root, settings.Source.KeyFormat), nil
}

func buildS3(_ context.Context, settings domain.AppSettings) (driven.AlignmentSource, error) {
	return s3.New(settings.S3, settings.Source)
}

func buildGitHub(ctx context.Context, settings domain.AppSettings) (driven.AlignmentSource, error) {
	cfg, err := github.ParseConfig(settings.GitHub, settings.Source)
	if err != nil {
		return nil, err
	}
	return github.New(cfg, github.NewClientWithToken(ctx, cfg.Token)), nil
}
