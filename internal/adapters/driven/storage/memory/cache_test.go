package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestCache(ttl time.Duration) (*AlignmentCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cache := NewAlignmentCache(ttl)
	cache.now = clock.Now
	return cache, clock
}

func TestNewAlignmentCache(t *testing.T) {
	cache := NewAlignmentCache(time.Minute)
	require.NotNil(t, cache)
	assert.Equal(t, 0, cache.Len())
}

func TestAlignmentCache_PutGet(t *testing.T) {
	cache, _ := newTestCache(time.Minute)

	cache.Put(&domain.RawAlignment{Identifier: "RF00001", Content: []byte("# STOCKHOLM 1.0\n")})

	raw, ok := cache.Get("RF00001")
	require.True(t, ok)
	assert.Equal(t, "# STOCKHOLM 1.0\n", raw.Text())
	assert.Equal(t, 1, cache.Len())
}

func TestAlignmentCache_GetMissing(t *testing.T) {
	cache, _ := newTestCache(time.Minute)

	raw, ok := cache.Get("RF00001")
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestAlignmentCache_PutNil(t *testing.T) {
	cache, _ := newTestCache(time.Minute)
	cache.Put(nil)
	assert.Equal(t, 0, cache.Len())
}

func TestAlignmentCache_GetReturnsCopy(t *testing.T) {
	cache, _ := newTestCache(time.Minute)
	cache.Put(&domain.RawAlignment{Identifier: "RF00001", URI: "a"})

	raw, ok := cache.Get("RF00001")
	require.True(t, ok)
	raw.URI = "mutated"

	again, ok := cache.Get("RF00001")
	require.True(t, ok)
	assert.Equal(t, "a", again.URI)
}

func TestAlignmentCache_Expiry(t *testing.T) {
	cache, clock := newTestCache(time.Minute)
	cache.Put(&domain.RawAlignment{Identifier: "RF00001"})

	clock.Advance(59 * time.Second)
	_, ok := cache.Get("RF00001")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = cache.Get("RF00001")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestAlignmentCache_ZeroTTLNeverExpires(t *testing.T) {
	cache, clock := newTestCache(0)
	cache.Put(&domain.RawAlignment{Identifier: "RF00001"})

	clock.Advance(24 * time.Hour)
	_, ok := cache.Get("RF00001")
	assert.True(t, ok)
}

func TestAlignmentCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(time.Minute)
	cache.Put(&domain.RawAlignment{Identifier: "RF00001"})
	cache.Put(&domain.RawAlignment{Identifier: "RF00002"})

	cache.Invalidate("RF00001")
	cache.Invalidate("does-not-exist")

	_, ok := cache.Get("RF00001")
	assert.False(t, ok)
	_, ok = cache.Get("RF00002")
	assert.True(t, ok)
}

func TestAlignmentCache_CaseInsensitive(t *testing.T) {
	cache, _ := newTestCache(time.Minute)
	cache.Put(&domain.RawAlignment{Identifier: "RF00005", URI: "a"})

	raw, ok := cache.Get("rf00005")
	require.True(t, ok)
	assert.Equal(t, "a", raw.URI)
	assert.Equal(t, "RF00005", raw.Identifier)

	cache.Invalidate("rf00005")
	_, ok = cache.Get("RF00005")
	assert.False(t, ok)
}

func TestAlignmentCache_Purge(t *testing.T) {
	cache, clock := newTestCache(time.Minute)
	cache.Put(&domain.RawAlignment{Identifier: "old"})
	clock.Advance(2 * time.Minute)
	cache.Put(&domain.RawAlignment{Identifier: "new"})

	assert.Equal(t, 1, cache.Purge())
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 0, cache.Purge())
}

func TestAlignmentCache_ConcurrentAccess(t *testing.T) {
	cache := NewAlignmentCache(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("RF%05d", i%5)
			cache.Put(&domain.RawAlignment{Identifier: id})
			cache.Get(id)
			cache.Len()
			if i%3 == 0 {
				cache.Invalidate(id)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 5)
}
