package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
	"github.com/custodia-labs/rna-msa/internal/logger"
)

// Ensure Source implements the interfaces.
var (
	_ driven.AlignmentSource = (*Source)(nil)
	_ driven.WatchableSource = (*Source)(nil)
)

var log = logger.Named("filesystem")

// Source reads Stockholm files from a local directory.
type Source struct {
	rootPath  string
	keyFormat string

	mu       sync.Mutex
	watchers []*fsnotify.Watcher
	closed   bool
}

// New creates a filesystem source rooted at rootPath.
// keyFormat maps identifiers to file names (see domain.SourceSettings.Key).
func New(rootPath, keyFormat string) *Source {
	return &Source{
		rootPath:  rootPath,
		keyFormat: keyFormat,
	}
}

// Type returns the source type identifier.
func (s *Source) Type() string {
	return domain.SourceFilesystem.String()
}

// RootPath returns the directory alignments are read from.
func (s *Source) RootPath() string {
	return s.rootPath
}

// Path returns the file path an identifier maps to.
func (s *Source) Path(identifier string) string {
	key := domain.SourceSettings{KeyFormat: s.keyFormat}.Key(identifier)
	return filepath.Join(s.rootPath, filepath.FromSlash(key))
}

// Fetch reads the alignment file for an identifier.
func (s *Source) Fetch(ctx context.Context, identifier string) (*domain.RawAlignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(identifier)
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrSourceUnavailable, path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	info, statErr := os.Stat(path)
	metadata := map[string]any{"path": absPath}
	if statErr == nil {
		metadata["size"] = info.Size()
		metadata["modified"] = info.ModTime()
	}

	return &domain.RawAlignment{
		Identifier: identifier,
		URI:        "file://" + absPath,
		Content:    content,
		FetchedAt:  time.Now(),
		Metadata:   metadata,
	}, nil
}

// List enumerates the Stockholm files directly under the root directory.
func (s *Source) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.rootPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrSourceUnavailable, s.rootPath, err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id, ok := IdentifierFromPath(entry.Name()); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Watch reports written, created, renamed and removed Stockholm files.
// It blocks until ctx is cancelled or the source is closed.
func (s *Source) Watch(ctx context.Context, onChange func(identifier string)) error {
	watcher, err := s.newWatcher()
	if err != nil {
		return err
	}
	defer s.dropWatcher(watcher)

	if err := watcher.Add(s.rootPath); err != nil {
		return fmt.Errorf("watch %s: %w", s.rootPath, err)
	}
	log.Debug("watching %s", s.rootPath)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if id, changed := s.handleFsEvent(event); changed {
				onChange(id)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// handleFsEvent maps an fsnotify event to the identifier it affects.
func (s *Source) handleFsEvent(event fsnotify.Event) (string, bool) {
	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	if event.Op&relevant == 0 {
		return "", false
	}
	id, ok := IdentifierFromPath(event.Name)
	if !ok {
		return "", false
	}
	if !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return "", false
		}
	}
	return id, true
}

func (s *Source) newWatcher() (*fsnotify.Watcher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("%w: source is closed", domain.ErrSourceUnavailable)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	s.watchers = append(s.watchers, watcher)
	return watcher, nil
}

func (s *Source) dropWatcher(w *fsnotify.Watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.watchers {
		if existing == w {
			s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
			break
		}
	}
	_ = w.Close()
}

// Close stops all active watchers.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	var errs []string
	for _, w := range s.watchers {
		if err := w.Close(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	s.watchers = nil
	if len(errs) > 0 {
		return fmt.Errorf("close watchers: %s", strings.Join(errs, "; "))
	}
	return nil
}
