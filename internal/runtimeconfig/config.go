package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	SourceNotion   = "notion"
	SourceMarkdown = "markdown"
)

var ErrSourceUnknown = errors.New("homepage config: source is invalid")
var ErrMarkdownContentDirRequired = errors.New("homepage config: markdown content directory is required when the markdown source is selected")
var ErrUpstreamTimeoutInvalid = errors.New("homepage config: upstream timeout must be zero or positive")
var ErrNotionMaxPagesInvalid = errors.New("homepage config: notion max pages must be zero or positive")
var ErrLoggingProviderRequired = errors.New("homepage config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("homepage config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("homepage config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("homepage config: logging format is invalid")

// Config aggregates runtime settings for the homepage content service.
// Notion credentials are deliberately not validated here: a server without
// them still starts and reports the problem on every content request.
type Config struct {
	Source   string
	Notion   NotionConfig
	Markdown MarkdownConfig
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	Logging  LoggingConfig
}

// NotionConfig carries the database credentials and API endpoint.
type NotionConfig struct {
	Token      string
	DatabaseID string
	BaseURL    string
	Version    string
	MaxPages   int
}

// MarkdownConfig captures the local directory source.
type MarkdownConfig struct {
	ContentDir string
	Pattern    string
	Recursive  bool
}

// HTTPConfig configures the API listener.
type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// UpstreamConfig bounds a single fetch.
type UpstreamConfig struct {
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns defaults suitable for the production Notion source.
func DefaultConfig() Config {
	return Config{
		Source: SourceNotion,
		Notion: NotionConfig{
			BaseURL:  "https://api.notion.com",
			Version:  "2022-06-28",
			MaxPages: 10,
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		HTTP: HTTPConfig{
			Addr:              ":3000",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Upstream: UpstreamConfig{
			Timeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch NormalizeSource(cfg.Source) {
	case SourceNotion:
	case SourceMarkdown:
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrSourceUnknown, cfg.Source)
	}
	if cfg.Upstream.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrUpstreamTimeoutInvalid, cfg.Upstream.Timeout)
	}
	if cfg.Notion.MaxPages < 0 {
		return fmt.Errorf("%w: %d", ErrNotionMaxPagesInvalid, cfg.Notion.MaxPages)
	}

	provider := NormalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// NormalizeSource lower-cases the source name; empty means notion.
func NormalizeSource(source string) string {
	source = strings.ToLower(strings.TrimSpace(source))
	if source == "" {
		return SourceNotion
	}
	return source
}

// NormalizeProvider lower-cases the logging provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
