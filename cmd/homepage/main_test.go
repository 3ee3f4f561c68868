package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-homepage"
	"github.com/goliatone/go-homepage/internal/rows"
)

func staticRows() rows.Static {
	return rows.Static{
		{Cells: map[string]rows.Cell{
			"title": rows.TitleCell(rows.Plain("name")),
			"value": rows.RichTextCell(rows.Plain("Ada")),
		}},
		{Cells: map[string]rows.Cell{
			"title": rows.TitleCell(rows.Plain("Compiler")),
			"tags":  rows.MultiSelectCell("projects"),
			"value": rows.RichTextCell(rows.Plain("A small compiler")),
			"link":  rows.URLCell("https://example.com/compiler"),
		}},
	}
}

// useStaticModule replaces the module builder with one backed by static rows
// and records the configuration it was given.
func useStaticModule(t *testing.T) *homepage.Config {
	t.Helper()
	captured := &homepage.Config{}
	previous := moduleBuilder
	moduleBuilder = func(cfg homepage.Config, opts ...homepage.Option) (*homepage.Module, error) {
		*captured = cfg
		cfg.Logging.Level = "error"
		opts = append(opts, homepage.WithRowSource("static", staticRows()))
		return homepage.New(cfg, opts...)
	}
	t.Cleanup(func() { moduleBuilder = previous })
	return captured
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestPreviewPrintsDocument(t *testing.T) {
	useStaticModule(t)

	stdout, stderr, err := run(t, "preview", "--stats")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("decode preview output: %v\n%s", err, stdout)
	}
	if payload["name"] != "Ada" {
		t.Fatalf("expected config key in output, got %#v", payload)
	}
	if projects, ok := payload["projects"].([]any); !ok || len(projects) != 1 {
		t.Fatalf("unexpected projects %#v", payload["projects"])
	}
	if !strings.Contains(stderr, "source=static") || !strings.Contains(stderr, "projects=1") {
		t.Fatalf("unexpected stats line %q", stderr)
	}
}

func TestSnapshotWritesFile(t *testing.T) {
	useStaticModule(t)
	output := filepath.Join(t.TempDir(), "profile.json")

	if _, _, err := run(t, "snapshot", "--output", output, "--indent"); err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !strings.Contains(string(data), `"text": "Compiler"`) {
		t.Fatalf("unexpected snapshot %s", data)
	}
}

func TestSnapshotRejectsEmptyOutput(t *testing.T) {
	useStaticModule(t)

	if _, _, err := run(t, "snapshot", "--output", " "); err == nil {
		t.Fatal("expected validation error for blank output")
	}
}

func TestContentDirFlagSelectsMarkdownSource(t *testing.T) {
	captured := useStaticModule(t)
	dir := t.TempDir()

	if _, _, err := run(t, "preview", "--content-dir", dir, "--log-level", "warn"); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if captured.Source != "markdown" || captured.Markdown.ContentDir != dir {
		t.Fatalf("expected markdown source over %s, got %#v", dir, captured)
	}
	if captured.Logging.Level != "warn" {
		t.Fatalf("expected log level flag applied, got %q", captured.Logging.Level)
	}
}

func TestInvalidSourceFails(t *testing.T) {
	previous := moduleBuilder
	moduleBuilder = homepage.New
	t.Cleanup(func() { moduleBuilder = previous })

	_, _, err := run(t, "preview", "--source", "ftp")
	if !errors.Is(err, homepage.ErrSourceUnknown) {
		t.Fatalf("expected ErrSourceUnknown, got %v", err)
	}
}
