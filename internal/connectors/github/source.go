package github

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.AlignmentSource = (*Source)(nil)

// Source reads alignments from a directory of a GitHub repository.
type Source struct {
	cfg    *Config
	client *Client
}

// New creates a GitHub source.
func New(cfg *Config, client *Client) *Source {
	return &Source{cfg: cfg, client: client}
}

// Type returns the source type identifier.
func (s *Source) Type() string {
	return domain.SourceGitHub.String()
}

// Fetch downloads the alignment file for an identifier on the configured ref.
func (s *Source) Fetch(ctx context.Context, identifier string) (*domain.RawAlignment, error) {
	path := s.cfg.FilePath(identifier)

	rc, err := s.client.DownloadContents(ctx, s.cfg.Owner, s.cfg.Repo, path, s.cfg.Ref)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrSourceUnavailable, path, err)
	}

	return &domain.RawAlignment{
		Identifier: identifier,
		URI:        fmt.Sprintf("github://%s/%s/blob/%s/%s", s.cfg.Owner, s.cfg.Repo, s.cfg.Ref, path),
		Content:    content,
		FetchedAt:  time.Now(),
		Metadata: map[string]any{
			"owner": s.cfg.Owner,
			"repo":  s.cfg.Repo,
			"ref":   s.cfg.Ref,
			"path":  path,
		},
	}, nil
}

// List returns identifiers for the Stockholm files in the directory.
func (s *Source) List(ctx context.Context) ([]string, error) {
	entries, err := s.client.ListDirectory(ctx, s.cfg.Owner, s.cfg.Repo, s.cfg.Dir, s.cfg.Ref)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.GetType() != "file" {
			continue
		}
		if id, ok := domain.IdentifierFromKey(entry.GetName()); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Close releases resources.
func (s *Source) Close() error {
	return nil
}
