package markdown

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-homepage/internal/content"
	"github.com/goliatone/go-homepage/internal/errs"
	"github.com/goliatone/go-homepage/internal/identity"
	"github.com/goliatone/go-homepage/internal/rows"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"name.md": {Data: []byte("---\ntitle: name\nvalue: Ada\n---\n")},
		"myself.md": {Data: []byte("---\ntitle: myself\n---\nI build **tools** for `go`.\n")},
		"projects/cli.md": {Data: []byte("---\ntitle: CLI\ntags: [projects]\nlink: https://example.com/cli\nicon: \"🛠\"\n---\nA *small* tool.\n")},
		"talk.md": {Data: []byte("---\ntitle: Keynote\ntags: talks\ndate: 2024-01-01\nyears: 0\n---\n")},
		"notes.txt": {Data: []byte("ignored")},
	}
}

func TestSourceFetchConvertsFiles(t *testing.T) {
	source := NewSource(testFS(), SourceConfig{}, nil)

	got, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 root rows, got %d", len(got))
	}

	byTitle := map[string]rows.Row{}
	for _, row := range got {
		title, _ := row.Cell("title")
		byTitle[title.Text[0].Text] = row
	}

	name := byTitle["name"]
	if name.ID != identity.RowUUID(SourceName, "name.md").String() {
		t.Fatalf("unexpected row id %q", name.ID)
	}
	if value, _ := name.Cell("value"); len(value.Text) != 1 || value.Text[0].Text != "Ada" {
		t.Fatalf("expected frontmatter value to win, got %#v", value)
	}

	talk := byTitle["Keynote"]
	if tags, _ := talk.Cell("tags"); tags.Type != rows.CellSelect || tags.Select.Name != "talks" {
		t.Fatalf("unexpected tags %#v", tags)
	}
	if date, _ := talk.Cell("date"); date.Date == nil || date.Date.Start != "2024-01-01" {
		t.Fatalf("unexpected date %#v", date)
	}
	if years, _ := talk.Cell("years"); years.Number == nil || *years.Number != 0 {
		t.Fatalf("expected numeric zero, got %#v", years)
	}
}

func TestSourceFetchBodyBecomesValueColumn(t *testing.T) {
	got, err := NewSource(testFS(), SourceConfig{}, nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	doc := content.Normalize(got)
	if doc.Config["myself"] != `I build <strong>tools</strong> for <code style="background:rgba(255,255,255,0.15); padding: 0.1em 0.3em; border-radius: 3px; font-family: monospace;">go</code>.` {
		t.Fatalf("unexpected rendered body %q", doc.Config["myself"])
	}
	if doc.Config["name"] != "Ada" {
		t.Fatalf("unexpected name %q", doc.Config["name"])
	}
	if len(doc.Talks) != 1 || doc.Talks[0].Date != "2024-01-01" {
		t.Fatalf("unexpected talks %#v", doc.Talks)
	}
}

func TestSourceFetchRecursiveProjectWithPageIcon(t *testing.T) {
	got, err := NewSource(testFS(), SourceConfig{Recursive: true}, nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(got))
	}

	doc := content.Normalize(got)
	if len(doc.Projects) != 1 {
		t.Fatalf("expected one project, got %#v", doc.Projects)
	}
	project := doc.Projects[0]
	if project.Href != "https://example.com/cli" {
		t.Fatalf("unexpected href %q", project.Href)
	}
	if project.Description != "A <em>small</em> tool." {
		t.Fatalf("unexpected description %q", project.Description)
	}
	if project.Icon == nil || project.Icon.Type != content.IconEmoji || project.Icon.Value != "🛠" {
		t.Fatalf("unexpected icon %#v", project.Icon)
	}
}

func TestSourceFetchParseFailureIsUpstreamError(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.md": {Data: []byte("---\ntitle: [unterminated\n---\nbody\n")},
	}
	_, err := NewSource(fsys, SourceConfig{}, nil).Fetch(context.Background())
	if !errs.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestSourceFetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSource(testFS(), SourceConfig{}, nil).Fetch(ctx)
	if errs.TextCode(err) != errs.CodeTimeout {
		t.Fatalf("expected timeout code, got %v", err)
	}
}

func TestSourceFetchIconKinds(t *testing.T) {
	cases := []struct {
		name  string
		icon  string
		want  content.IconType
		value string
	}{
		{name: "emoji", icon: `"🎤"`, want: content.IconEmoji, value: "🎤"},
		{name: "url", icon: "https://example.com/i.png", want: content.IconImage, value: "https://example.com/i.png"},
		{name: "path", icon: "/icons/i.svg", want: content.IconImage, value: "/icons/i.svg"},
		{name: "data uri", icon: `"data:image/png;base64,AAAA"`, want: content.IconImage, value: "data:image/png;base64,AAAA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"item.md": {Data: []byte("---\ntitle: Item\ntags: projects\nicon: " + tc.icon + "\n---\n")},
			}
			got, err := NewSource(fsys, SourceConfig{}, nil).Fetch(context.Background())
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			doc := content.Normalize(got)
			if len(doc.Projects) != 1 {
				t.Fatalf("expected one project, got %#v", doc.Projects)
			}
			icon := doc.Projects[0].Icon
			if icon == nil || icon.Type != tc.want || icon.Value != tc.value {
				t.Fatalf("unexpected icon %#v", icon)
			}
		})
	}
}
