package file

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
)

// Ensure EnvStore implements the interface.
var _ driven.ConfigStore = (*EnvStore)(nil)

// EnvBindings maps environment variables onto configuration keys.
var EnvBindings = map[string]string{
	"S3_HOST":            "s3.endpoint",
	"S3_KEY":             "s3.access_key",
	"S3_SECRET":          "s3.secret_key",
	"S3_BUCKET":          "s3.bucket",
	"S3_REGION":          "s3.region",
	"S3_USE_SSL":         "s3.use_ssl",
	"GITHUB_TOKEN":       "github.token",
	"PORT":               "server.port",
	"DEBUG":              "server.debug",
	"RNAMSA_SOURCE":      "source.type",
	"RNAMSA_SOURCE_PATH": "source.path",
	"RNAMSA_KEY_FORMAT":  "source.key_format",
	"RNAMSA_CACHE_TTL":   "cache.ttl",
}

// EnvStore layers environment variables (and an optional .env file) over
// another ConfigStore. Process environment wins over the .env file, which
// wins over the wrapped store. Writes go to the wrapped store.
type EnvStore struct {
	driven.ConfigStore

	overrides map[string]string
}

// NewEnvStore builds the overlay from the process environment and the given
// .env files. Missing .env files are skipped.
func NewEnvStore(base driven.ConfigStore, envFiles ...string) (*EnvStore, error) {
	return newEnvStore(base, os.LookupEnv, envFiles...)
}

func newEnvStore(
	base driven.ConfigStore,
	lookup func(string) (string, bool),
	envFiles ...string,
) (*EnvStore, error) {
	dotenv := make(map[string]string)
	for _, path := range envFiles {
		values, err := godotenv.Read(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for k, v := range values {
			if _, seen := dotenv[k]; !seen {
				dotenv[k] = v
			}
		}
	}

	overrides := make(map[string]string)
	for env, key := range EnvBindings {
		if v, ok := lookup(env); ok {
			overrides[key] = v
		} else if v, ok := dotenv[env]; ok {
			overrides[key] = v
		}
	}

	return &EnvStore{ConfigStore: base, overrides: overrides}, nil
}

// Overridden reports whether a key comes from the environment.
func (s *EnvStore) Overridden(key string) bool {
	_, ok := s.overrides[key]
	return ok
}

// Get retrieves a configuration value, preferring the environment.
func (s *EnvStore) Get(key string) (any, bool) {
	if v, ok := s.overrides[key]; ok {
		return v, true
	}
	return s.ConfigStore.Get(key)
}

// GetString retrieves a string configuration value.
func (s *EnvStore) GetString(key string) string {
	if v, ok := s.overrides[key]; ok {
		return v
	}
	return s.ConfigStore.GetString(key)
}

// GetInt retrieves an integer configuration value.
// Non-numeric environment values read as 0.
func (s *EnvStore) GetInt(key string) int {
	if v, ok := s.overrides[key]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return s.ConfigStore.GetInt(key)
}

// GetBool retrieves a boolean configuration value.
// Environment values are compared case-insensitively ("True", "1", "yes").
func (s *EnvStore) GetBool(key string) bool {
	if v, ok := s.overrides[key]; ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "t", "true", "yes", "on":
			return true
		default:
			return false
		}
	}
	return s.ConfigStore.GetBool(key)
}

// GetStringSlice retrieves a string slice configuration value.
// Environment values are split on commas.
func (s *EnvStore) GetStringSlice(key string) []string {
	if v, ok := s.overrides[key]; ok {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return s.ConfigStore.GetStringSlice(key)
}
