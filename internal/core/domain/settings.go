package domain

import (
	"path"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// Default setting values.
const (
	DefaultKeyFormat   = "{id_lower}.sto"
	DefaultServerHost  = "0.0.0.0"
	DefaultServerPort  = 5000
	DefaultCacheTTL    = 5 * time.Minute
	DefaultGitHubRef   = "main"
	DefaultS3Region    = "us-east-1"
	DefaultAllowOrigin = "*"
)

// SourceSettings selects and locates the alignment source.
type SourceSettings struct {
	// Type is the source backend.
	Type SourceType

	// Path is the root directory (filesystem) or key prefix (s3, github).
	Path string

	// KeyFormat maps an identifier to an object key.
	// Supports the {id} and {id_lower} placeholders.
	KeyFormat string
}

// Key applies the key format to an identifier.
func (s SourceSettings) Key(identifier string) string {
	format := s.KeyFormat
	if format == "" {
		format = DefaultKeyFormat
	}
	r := strings.NewReplacer(
		"{id_lower}", strings.ToLower(identifier),
		"{id}", identifier,
	)
	return r.Replace(format)
}

// StockholmExtensions are the file extensions sources list and watch.
var StockholmExtensions = []string{".sto", ".stk", ".stockholm"}

// IdentifierFromKey derives a family identifier from an object key or
// slash-separated path. Hidden and non-Stockholm names yield false.
func IdentifierFromKey(key string) (string, bool) {
	base := path.Base(key)
	if base == "" || base == "." || base == "/" || strings.HasPrefix(base, ".") {
		return "", false
	}
	ext := path.Ext(base)
	known := false
	for _, e := range StockholmExtensions {
		if strings.EqualFold(ext, e) {
			known = true
			break
		}
	}
	if !known {
		return "", false
	}
	id := strings.TrimSuffix(base, ext)
	return id, id != ""
}

// S3Settings holds credentials and location for an S3-compatible store.
type S3Settings struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// IsConfigured returns true if the store can be reached.
func (s S3Settings) IsConfigured() bool {
	return s.Endpoint != "" && s.Bucket != ""
}

// GitHubSettings locates a repository holding Stockholm files.
type GitHubSettings struct {
	Owner string
	Repo  string
	Ref   string
	Token string
}

// IsConfigured returns true if a repository is named.
func (g GitHubSettings) IsConfigured() bool {
	return g.Owner != "" && g.Repo != ""
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Host           string
	Port           int
	Debug          bool
	AllowedOrigins []string
}

// CacheSettings configures the alignment cache.
type CacheSettings struct {
	// TTL is how long a fetched alignment is reused. Zero disables expiry.
	TTL time.Duration
}

// AppSettings contains all user-configurable application settings.
type AppSettings struct {
	Source SourceSettings
	S3     S3Settings
	GitHub GitHubSettings
	Server ServerSettings
	Cache  CacheSettings
	Parser ParseOptions
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Source: SourceSettings{
			Type:      SourceFilesystem,
			Path:      ".",
			KeyFormat: DefaultKeyFormat,
		},
		S3: S3Settings{
			Region: DefaultS3Region,
			UseSSL: true,
		},
		GitHub: GitHubSettings{
			Ref: DefaultGitHubRef,
		},
		Server: ServerSettings{
			Host:           DefaultServerHost,
			Port:           DefaultServerPort,
			AllowedOrigins: []string{DefaultAllowOrigin},
		},
		Cache: CacheSettings{
			TTL: DefaultCacheTTL,
		},
		Parser: ParseOptions{
			Features: true,
		},
	}
}

// AllSourceTypes returns all supported source types.
func AllSourceTypes() []SourceType {
	return []SourceType{SourceFilesystem, SourceS3, SourceGitHub}
}
