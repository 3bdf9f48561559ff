package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driving"
	"github.com/custodia-labs/rna-msa/internal/logger"
)

// Ensure FamilyService implements the interface.
var _ driving.FamilyService = (*FamilyService)(nil)

// ServiceName identifies the service in health reports.
const ServiceName = "rna-msa"

// inlineIdentifier names alignments supplied directly by the caller.
const inlineIdentifier = "inline"

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

var log = logger.Named("family")

// FamilyService fetches, caches and parses RNA family alignments.
type FamilyService struct {
	source  driven.AlignmentSource
	parser  driven.AlignmentParser
	cache   driven.AlignmentCache
	version string
}

// NewFamilyService creates a new family service.
// The cache parameter is optional (can be nil).
func NewFamilyService(
	source driven.AlignmentSource,
	parser driven.AlignmentParser,
	cache driven.AlignmentCache,
) *FamilyService {
	return &FamilyService{
		source:  source,
		parser:  parser,
		cache:   cache,
		version: "dev",
	}
}

// SetVersion sets the version reported by Health.
func (s *FamilyService) SetVersion(version string) {
	s.version = version
}

// ValidateIdentifier checks a family identifier before it reaches a source.
func ValidateIdentifier(identifier string) error {
	if identifier == "" {
		return fmt.Errorf("%w: identifier is required", domain.ErrInvalidInput)
	}
	if !identifierPattern.MatchString(identifier) ||
		strings.HasPrefix(identifier, ".") || strings.Contains(identifier, "..") {
		return fmt.Errorf("%w: invalid identifier %q", domain.ErrInvalidInput, identifier)
	}
	return nil
}

// Get fetches and parses the alignment for a family.
func (s *FamilyService) Get(
	ctx context.Context, identifier string, opts domain.ParseOptions,
) (*domain.Family, error) {
	raw, err := s.fetch(ctx, identifier)
	if err != nil {
		return nil, err
	}

	doc, err := s.parser.Parse(ctx, raw, opts)
	if err != nil {
		return nil, err
	}

	return &domain.Family{
		Identifier: raw.Identifier,
		Source:     raw.URI,
		Document:   doc,
	}, nil
}

// GetRaw returns the fetched Stockholm text unmodified.
func (s *FamilyService) GetRaw(ctx context.Context, identifier string) (string, error) {
	raw, err := s.fetch(ctx, identifier)
	if err != nil {
		return "", err
	}
	return raw.Text(), nil
}

// List returns the family identifiers available from the source, sorted.
func (s *FamilyService) List(ctx context.Context) ([]string, error) {
	ids, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}
	ids = slices.Clone(ids)
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// Parse interprets Stockholm text supplied directly by the caller.
func (s *FamilyService) Parse(
	ctx context.Context, content string, opts domain.ParseOptions,
) (*domain.AlignmentDocument, error) {
	raw := &domain.RawAlignment{
		Identifier: inlineIdentifier,
		Content:    []byte(content),
	}
	return s.parser.Parse(ctx, raw, opts)
}

// DecodeStructure decodes a dot-bracket consensus on its own.
func (s *FamilyService) DecodeStructure(
	ctx context.Context, consensus string, withFeatures bool,
) (*domain.StructureAnnotation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	consensus = strings.TrimSpace(consensus)
	if consensus == "" {
		return nil, fmt.Errorf("%w: consensus is required", domain.ErrInvalidInput)
	}
	ann := s.parser.DecodeStructure(consensus, withFeatures)
	return &ann, nil
}

// Health reports the state of the service.
func (s *FamilyService) Health(_ context.Context) domain.Health {
	h := domain.Health{
		Service:    ServiceName,
		Version:    s.version,
		SourceType: s.source.Type(),
	}
	if s.cache != nil {
		h.Cached = s.cache.Len()
	}
	return h
}

// StartWatching invalidates cache entries whenever the source reports a change.
// It returns domain.ErrUnsupportedType when the source cannot be watched.
// Watching stops when ctx is cancelled.
func (s *FamilyService) StartWatching(ctx context.Context) error {
	ws, ok := s.source.(driven.WatchableSource)
	if !ok {
		return fmt.Errorf("%w: %s source cannot be watched", domain.ErrUnsupportedType, s.source.Type())
	}
	if s.cache == nil {
		return nil
	}

	go func() {
		err := ws.Watch(ctx, func(identifier string) {
			log.Debug("source changed: %s", identifier)
			s.cache.Invalidate(identifier)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("watch stopped: %v", err)
		}
	}()
	return nil
}

// fetch returns the raw alignment from the cache or the source.
func (s *FamilyService) fetch(ctx context.Context, identifier string) (*domain.RawAlignment, error) {
	identifier = strings.TrimSpace(identifier)
	if err := ValidateIdentifier(identifier); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, ok := s.cache.Get(identifier); ok {
			log.Debug("cache hit: %s", identifier)
			return raw, nil
		}
	}

	raw, err := s.source.Fetch(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", identifier, err)
	}
	if raw.Identifier == "" {
		raw.Identifier = identifier
	}

	if s.cache != nil {
		s.cache.Put(raw)
	}
	log.Debug("fetched %s from %s (%d bytes)", identifier, raw.URI, len(raw.Content))
	return raw, nil
}
