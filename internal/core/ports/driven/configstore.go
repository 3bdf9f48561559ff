package driven

// ConfigStore holds the raw settings behind the SettingsService.
// Keys are dot paths such as "s3.bucket" or "server.port". Typed getters
// return the zero value when a key is missing or holds another type, so
// callers fall back to domain defaults without checking.
type ConfigStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool

	// GetStringSlice returns nil for a missing key.
	GetStringSlice(key string) []string

	// Set stores one value and persists it.
	Set(key string, value any) error

	// Save writes every value back to storage.
	Save() error

	// Load replaces the in-memory values with the stored ones.
	Load() error

	// Path locates the backing file, or ":memory:" for stores without one.
	Path() string
}
