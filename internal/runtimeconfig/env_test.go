package runtimeconfig_test

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-homepage/internal/runtimeconfig"
)

func TestFromEnvOverlaysDefaults(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "secret")
	t.Setenv("NOTION_DATABASE_ID", " db-1 ")
	t.Setenv("NOTION_MAX_PAGES", "0")
	t.Setenv("HOMEPAGE_SOURCE", "markdown")
	t.Setenv("HOMEPAGE_MARKDOWN_DIR", "./site")
	t.Setenv("HOMEPAGE_ADDR", ":8080")
	t.Setenv("HOMEPAGE_UPSTREAM_TIMEOUT", "3s")
	t.Setenv("HOMEPAGE_LOG_PROVIDER", "gologger")
	t.Setenv("HOMEPAGE_LOG_FORMAT", "json")

	cfg, err := runtimeconfig.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Notion.Token != "secret" || cfg.Notion.DatabaseID != "db-1" {
		t.Fatalf("unexpected notion config %#v", cfg.Notion)
	}
	if cfg.Notion.MaxPages != 0 {
		t.Fatalf("expected explicit zero max pages, got %d", cfg.Notion.MaxPages)
	}
	if cfg.Source != "markdown" || cfg.Markdown.ContentDir != "./site" {
		t.Fatalf("unexpected source config %q %#v", cfg.Source, cfg.Markdown)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.Upstream.Timeout != 3*time.Second {
		t.Fatalf("unexpected http/upstream config %#v %#v", cfg.HTTP, cfg.Upstream)
	}
	if cfg.Logging.Provider != "gologger" || cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Notion.Version != runtimeconfig.DefaultConfig().Notion.Version {
		t.Fatalf("expected default notion version to survive, got %q", cfg.Notion.Version)
	}
}

func TestFromEnvParseError(t *testing.T) {
	t.Setenv("HOMEPAGE_UPSTREAM_TIMEOUT", "soon")

	_, err := runtimeconfig.FromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
