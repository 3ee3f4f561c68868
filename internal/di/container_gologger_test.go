package di

import (
	"testing"

	"github.com/goliatone/go-homepage/internal/logging/gologger"
	"github.com/goliatone/go-homepage/internal/notion"
	"github.com/goliatone/go-homepage/internal/runtimeconfig"
)

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	provider, ok := container.loggerProvider.(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}

	logger := provider.GetLogger("homepage.test")
	if logger == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}

func TestConfigureSourceDefaultsToNotion(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if _, ok := container.source.(*notion.Client); !ok {
		t.Fatalf("expected notion client, got %T", container.source)
	}
	if container.SourceName() != notion.SourceName {
		t.Fatalf("unexpected source name %q", container.SourceName())
	}
}
