package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Seed(t *testing.T) {
	store := NewConfigStore(
		map[string]any{"source.type": "s3", "server.port": 8080},
		map[string]any{"server.port": 9090},
	)

	assert.Equal(t, "s3", store.GetString("source.type"))
	assert.Equal(t, 9090, store.GetInt("server.port"))
	assert.Equal(t, 0, store.Writes())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"str":       "value",
		"int":       42,
		"int64":     int64(7),
		"float":     3.0,
		"bool":      true,
		"strings":   []string{"a", "b"},
		"anys":      []any{"x", 1, "y"},
		"wrongtype": 12,
	})

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("str"), "value"},
		{"string wrong type", store.GetString("wrongtype"), ""},
		{"string missing", store.GetString("missing"), ""},
		{"int", store.GetInt("int"), 42},
		{"int64", store.GetInt("int64"), 7},
		{"float", store.GetInt("float"), 3},
		{"int wrong type", store.GetInt("str"), 0},
		{"bool", store.GetBool("bool"), true},
		{"bool wrong type", store.GetBool("str"), false},
		{"string slice", store.GetStringSlice("strings"), []string{"a", "b"}},
		{"any slice drops non-strings", store.GetStringSlice("anys"), []string{"x", "y"}},
		{"slice missing", store.GetStringSlice("missing"), []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_SetAndSnapshot(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("cache.ttl", "1m"))
	require.NoError(t, store.Set("cache.ttl", "2m"))

	snap := store.Snapshot()
	assert.Equal(t, map[string]any{"cache.ttl": "2m"}, snap)
	assert.Equal(t, 2, store.Writes())

	snap["cache.ttl"] = "mutated"
	assert.Equal(t, "2m", store.GetString("cache.ttl"))
}

func TestConfigStore_NoopPersistence(t *testing.T) {
	store := NewConfigStore()
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrent(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key.%d", n)
			_ = store.Set(key, n)
			_ = store.GetInt(key)
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Snapshot(), 20)
}
