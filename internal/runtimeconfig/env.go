package runtimeconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// homepageEnv holds raw env values. Pointer fields distinguish unset
// variables from explicit zero values so defaults survive.
type homepageEnv struct {
	NotionToken      string         `env:"NOTION_TOKEN"`
	NotionDatabaseID string         `env:"NOTION_DATABASE_ID"`
	NotionAPIURL     string         `env:"NOTION_API_URL"`
	NotionVersion    string         `env:"NOTION_VERSION"`
	NotionMaxPages   *int           `env:"NOTION_MAX_PAGES"`
	Source           string         `env:"HOMEPAGE_SOURCE"`
	MarkdownDir      string         `env:"HOMEPAGE_MARKDOWN_DIR"`
	MarkdownPattern  string         `env:"HOMEPAGE_MARKDOWN_PATTERN"`
	Addr             string         `env:"HOMEPAGE_ADDR"`
	UpstreamTimeout  *time.Duration `env:"HOMEPAGE_UPSTREAM_TIMEOUT"`
	LogProvider      string         `env:"HOMEPAGE_LOG_PROVIDER"`
	LogLevel         string         `env:"HOMEPAGE_LOG_LEVEL"`
	LogFormat        string         `env:"HOMEPAGE_LOG_FORMAT"`
}

// FromEnv returns DefaultConfig overlaid with environment variables.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overlays set environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var raw homepageEnv
	if err := env.Parse(&raw); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	raw.apply(cfg)
	return nil
}

func (raw homepageEnv) apply(cfg *Config) {
	setString(&cfg.Notion.Token, raw.NotionToken)
	setString(&cfg.Notion.DatabaseID, raw.NotionDatabaseID)
	setString(&cfg.Notion.BaseURL, raw.NotionAPIURL)
	setString(&cfg.Notion.Version, raw.NotionVersion)
	if raw.NotionMaxPages != nil {
		cfg.Notion.MaxPages = *raw.NotionMaxPages
	}
	setString(&cfg.Source, raw.Source)
	setString(&cfg.Markdown.ContentDir, raw.MarkdownDir)
	setString(&cfg.Markdown.Pattern, raw.MarkdownPattern)
	setString(&cfg.HTTP.Addr, raw.Addr)
	if raw.UpstreamTimeout != nil {
		cfg.Upstream.Timeout = *raw.UpstreamTimeout
	}
	setString(&cfg.Logging.Provider, raw.LogProvider)
	setString(&cfg.Logging.Level, raw.LogLevel)
	setString(&cfg.Logging.Format, raw.LogFormat)
}

func setString(target *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*target = trimmed
	}
}
