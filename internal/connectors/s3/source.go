package s3

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
	"github.com/custodia-labs/rna-msa/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.AlignmentSource = (*Source)(nil)

const (
	// MaxRetries is the maximum number of retries for transient errors.
	MaxRetries = 3

	// RetryDelay is the initial delay between retries.
	RetryDelay = 500 * time.Millisecond
)

var log = logger.Named("s3")

// Source reads alignments from a bucket.
type Source struct {
	api         objectAPI
	bucket      string
	prefix      string
	keyFormat   string
	rateLimiter *RateLimiter
	retryDelay  time.Duration
}

// New creates an S3 source from settings.
// source.path is used as the key prefix inside the bucket.
func New(cfg domain.S3Settings, src domain.SourceSettings) (*Source, error) {
	if !cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	api, err := newMinioAPI(cfg)
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}
	return newSource(api, cfg.Bucket, src), nil
}

func newSource(api objectAPI, bucket string, src domain.SourceSettings) *Source {
	prefix := strings.Trim(src.Path, "/")
	if prefix == "." {
		prefix = ""
	}
	return &Source{
		api:         api,
		bucket:      bucket,
		prefix:      prefix,
		keyFormat:   src.KeyFormat,
		rateLimiter: NewRateLimiter(DefaultRate, DefaultBurst),
		retryDelay:  RetryDelay,
	}
}

// Type returns the source type identifier.
func (s *Source) Type() string {
	return domain.SourceS3.String()
}

// Key returns the object key an identifier maps to.
func (s *Source) Key(identifier string) string {
	key := domain.SourceSettings{KeyFormat: s.keyFormat}.Key(identifier)
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

// Fetch downloads the object for an identifier.
func (s *Source) Fetch(ctx context.Context, identifier string) (*domain.RawAlignment, error) {
	key := s.Key(identifier)

	var (
		content []byte
		info    objectInfo
	)
	err := s.withRetry(ctx, "get "+key, func() error {
		var err error
		content, info, err = s.api.GetObject(ctx, s.bucket, key)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &domain.RawAlignment{
		Identifier: identifier,
		URI:        fmt.Sprintf("s3://%s/%s", s.bucket, key),
		Content:    content,
		FetchedAt:  time.Now(),
		Metadata: map[string]any{
			"endpoint":      s.api.Endpoint(),
			"etag":          info.ETag,
			"size":          info.Size,
			"last_modified": info.LastModified,
		},
	}, nil
}

// List returns identifiers for the Stockholm objects under the prefix.
func (s *Source) List(ctx context.Context) ([]string, error) {
	prefix := s.prefix
	if prefix != "" {
		prefix += "/"
	}

	var keys []string
	err := s.withRetry(ctx, "list "+prefix, func() error {
		var err error
		keys, err = s.api.ListKeys(ctx, s.bucket, prefix)
		return err
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.Contains(strings.TrimPrefix(key, prefix), "/") {
			continue
		}
		if id, ok := domain.IdentifierFromKey(key); ok {
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

// withRetry runs op, retrying transient failures with doubling delays.
func (s *Source) withRetry(ctx context.Context, operation string, op func() error) error {
	delay := s.retryDelay
	var err error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			log.Debug("retrying %s (attempt %d) after %v: %v", operation, attempt+1, delay, err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		if waitErr := s.rateLimiter.Wait(ctx); waitErr != nil {
			return fmt.Errorf("rate limit wait: %w", waitErr)
		}

		err = op()
		if err == nil || !isTransient(err) || errors.Is(err, context.Canceled) {
			return err
		}
	}
	return fmt.Errorf("%s: giving up after %d retries: %w", operation, MaxRetries, err)
}
