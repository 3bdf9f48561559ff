package github

import (
	"strings"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// Config locates alignments inside a repository.
type Config struct {
	Owner     string
	Repo      string
	Ref       string
	Dir       string
	KeyFormat string
	Token     string
}

// ParseConfig builds a Config from application settings.
// source.path names the directory inside the repository.
func ParseConfig(gh domain.GitHubSettings, src domain.SourceSettings) (*Config, error) {
	if !gh.IsConfigured() {
		return nil, ErrRepoNotConfigured
	}
	cfg := &Config{
		Owner:     gh.Owner,
		Repo:      gh.Repo,
		Ref:       gh.Ref,
		Dir:       strings.Trim(src.Path, "/"),
		KeyFormat: src.KeyFormat,
		Token:     gh.Token,
	}
	if cfg.Ref == "" {
		cfg.Ref = domain.DefaultGitHubRef
	}
	if cfg.Dir == "." {
		cfg.Dir = ""
	}
	return cfg, nil
}

// FilePath returns the repository path an identifier maps to.
func (c *Config) FilePath(identifier string) string {
	key := domain.SourceSettings{KeyFormat: c.KeyFormat}.Key(identifier)
	if c.Dir == "" {
		return key
	}
	return c.Dir + "/" + key
}
