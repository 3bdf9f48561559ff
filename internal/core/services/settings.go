package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeySourceType      = "source.type"
	KeySourcePath      = "source.path"
	KeySourceKeyFormat = "source.key_format"
	KeyS3Endpoint      = "s3.endpoint"
	KeyS3AccessKey     = "s3.access_key"
	KeyS3SecretKey     = "s3.secret_key"
	KeyS3Bucket        = "s3.bucket"
	KeyS3Region        = "s3.region"
	KeyS3UseSSL        = "s3.use_ssl"
	KeyGitHubOwner     = "github.owner"
	KeyGitHubRepo      = "github.repo"
	KeyGitHubRef       = "github.ref"
	KeyGitHubToken     = "github.token"
	KeyServerHost      = "server.host"
	KeyServerPort      = "server.port"
	KeyServerDebug     = "server.debug"
	KeyServerOrigins   = "server.allowed_origins"
	KeyCacheTTL        = "cache.ttl"
	KeyParserFeatures  = "parser.features"
	KeyParserStrict    = "parser.strict"
)

// SettingKeys returns every key understood by the settings service.
func SettingKeys() []string {
	return []string{
		KeySourceType, KeySourcePath, KeySourceKeyFormat,
		KeyS3Endpoint, KeyS3AccessKey, KeyS3SecretKey, KeyS3Bucket, KeyS3Region, KeyS3UseSSL,
		KeyGitHubOwner, KeyGitHubRepo, KeyGitHubRef, KeyGitHubToken,
		KeyServerHost, KeyServerPort, KeyServerDebug, KeyServerOrigins,
		KeyCacheTTL, KeyParserFeatures, KeyParserStrict,
	}
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// LoadSettings reads settings from a config store, applying defaults
// for anything missing or invalid.
func LoadSettings(configStore driven.ConfigStore) domain.AppSettings {
	settings, _ := NewSettingsService(configStore).Get()
	return *settings
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Source: domain.SourceSettings{
			Type:      s.getSourceType(defaults.Source.Type),
			Path:      s.getString(KeySourcePath, defaults.Source.Path),
			KeyFormat: s.getString(KeySourceKeyFormat, defaults.Source.KeyFormat),
		},
		S3: domain.S3Settings{
			Endpoint:  s.configStore.GetString(KeyS3Endpoint),
			AccessKey: s.configStore.GetString(KeyS3AccessKey),
			SecretKey: s.configStore.GetString(KeyS3SecretKey),
			Bucket:    s.configStore.GetString(KeyS3Bucket),
			Region:    s.getString(KeyS3Region, defaults.S3.Region),
			UseSSL:    s.getBool(KeyS3UseSSL, defaults.S3.UseSSL),
		},
		GitHub: domain.GitHubSettings{
			Owner: s.configStore.GetString(KeyGitHubOwner),
			Repo:  s.configStore.GetString(KeyGitHubRepo),
			Ref:   s.getString(KeyGitHubRef, defaults.GitHub.Ref),
			Token: s.configStore.GetString(KeyGitHubToken),
		},
		Server: domain.ServerSettings{
			Host:           s.getString(KeyServerHost, defaults.Server.Host),
			Port:           s.getInt(KeyServerPort, defaults.Server.Port),
			Debug:          s.getBool(KeyServerDebug, defaults.Server.Debug),
			AllowedOrigins: s.getStringSlice(KeyServerOrigins, defaults.Server.AllowedOrigins),
		},
		Cache: domain.CacheSettings{
			TTL: s.getDuration(KeyCacheTTL, defaults.Cache.TTL),
		},
		Parser: domain.ParseOptions{
			Features: s.getBool(KeyParserFeatures, defaults.Parser.Features),
			Strict:   s.getBool(KeyParserStrict, defaults.Parser.Strict),
		},
	}

	return settings, nil
}

// Save persists application settings.
// Credentials are only written when set so that environment-provided
// secrets are never copied into the config file.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}

	values := []struct {
		key   string
		value any
	}{
		{KeySourceType, settings.Source.Type.String()},
		{KeySourcePath, settings.Source.Path},
		{KeySourceKeyFormat, settings.Source.KeyFormat},
		{KeyS3Endpoint, settings.S3.Endpoint},
		{KeyS3Bucket, settings.S3.Bucket},
		{KeyS3Region, settings.S3.Region},
		{KeyS3UseSSL, settings.S3.UseSSL},
		{KeyGitHubOwner, settings.GitHub.Owner},
		{KeyGitHubRepo, settings.GitHub.Repo},
		{KeyGitHubRef, settings.GitHub.Ref},
		{KeyServerHost, settings.Server.Host},
		{KeyServerPort, settings.Server.Port},
		{KeyServerDebug, settings.Server.Debug},
		{KeyServerOrigins, settings.Server.AllowedOrigins},
		{KeyCacheTTL, settings.Cache.TTL.String()},
		{KeyParserFeatures, settings.Parser.Features},
		{KeyParserStrict, settings.Parser.Strict},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	secrets := []struct {
		key   string
		value string
	}{
		{KeyS3AccessKey, settings.S3.AccessKey},
		{KeyS3SecretKey, settings.S3.SecretKey},
		{KeyGitHubToken, settings.GitHub.Token},
	}
	for _, v := range secrets {
		if v.value == "" {
			continue
		}
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set stores a single setting from its textual form.
func (s *SettingsService) Set(key, value string) error {
	var stored any
	switch key {
	case KeySourceType:
		st := domain.SourceType(strings.ToLower(value))
		if !st.IsValid() {
			return fmt.Errorf("%w: unknown source type %q", domain.ErrInvalidInput, value)
		}
		stored = st.String()
	case KeyServerPort:
		port, err := strconv.Atoi(value)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("%w: invalid port %q", domain.ErrInvalidInput, value)
		}
		stored = port
	case KeyS3UseSSL, KeyServerDebug, KeyParserFeatures, KeyParserStrict:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = b
	case KeyCacheTTL:
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%w: invalid duration %q", domain.ErrInvalidInput, value)
		}
		stored = value
	case KeyServerOrigins:
		stored = splitList(value)
	default:
		if !isSettingKey(key) {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
		}
		stored = value
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if val := s.configStore.GetStringSlice(key); len(val) > 0 {
		return val
	}
	return defaultVal
}

// getDuration accepts Go duration strings ("90s", "5m") or whole seconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	if str := s.configStore.GetString(key); str != "" {
		if d, err := time.ParseDuration(str); err == nil && d >= 0 {
			return d
		}
		if secs, err := strconv.Atoi(str); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
		return defaultVal
	}
	if secs := s.configStore.GetInt(key); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}

func (s *SettingsService) getSourceType(defaultVal domain.SourceType) domain.SourceType {
	st := domain.SourceType(strings.ToLower(s.configStore.GetString(KeySourceType)))
	if st.IsValid() {
		return st
	}
	return defaultVal
}

func isSettingKey(key string) bool {
	for _, k := range SettingKeys() {
		if k == key {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
