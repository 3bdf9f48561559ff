package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
)

// Ensure AlignmentCache implements the interface.
var _ driven.AlignmentCache = (*AlignmentCache)(nil)

type cacheEntry struct {
	raw       domain.RawAlignment
	expiresAt time.Time
}

// AlignmentCache is an in-memory implementation of driven.AlignmentCache.
// Entries expire after the configured TTL; a zero TTL keeps them until
// they are invalidated. Identifiers are compared case-insensitively, so
// "RF00005" and "rf00005" share an entry.
type AlignmentCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewAlignmentCache creates a new in-memory alignment cache.
func NewAlignmentCache(ttl time.Duration) *AlignmentCache {
	return &AlignmentCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns a copy of the cached alignment if present and not expired.
func (c *AlignmentCache) Get(identifier string) (*domain.RawAlignment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[cacheKey(identifier)]
	if !ok || c.expired(entry) {
		return nil, false
	}
	raw := entry.raw
	return &raw, true
}

// Put stores an alignment under its identifier.
func (c *AlignmentCache) Put(raw *domain.RawAlignment) {
	if raw == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := cacheEntry{raw: *raw}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.entries[cacheKey(raw.Identifier)] = entry
}

// Invalidate drops the entry for an identifier.
func (c *AlignmentCache) Invalidate(identifier string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cacheKey(identifier))
}

// Len returns the number of live entries.
func (c *AlignmentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, entry := range c.entries {
		if !c.expired(entry) {
			n++
		}
	}
	return n
}

// Purge removes expired entries and returns how many were dropped.
func (c *AlignmentCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := 0
	for id, entry := range c.entries {
		if c.expired(entry) {
			delete(c.entries, id)
			dropped++
		}
	}
	return dropped
}

// expired reports whether an entry is past its deadline (caller must hold lock).
func (c *AlignmentCache) expired(entry cacheEntry) bool {
	return !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt)
}

func cacheKey(identifier string) string {
	return strings.ToLower(identifier)
}
