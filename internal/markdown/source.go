package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-homepage/internal/content"
	"github.com/goliatone/go-homepage/internal/errs"
	"github.com/goliatone/go-homepage/internal/identity"
	"github.com/goliatone/go-homepage/internal/logging"
	"github.com/goliatone/go-homepage/internal/rows"
	"github.com/goliatone/go-homepage/pkg/interfaces"
)

const (
	// SourceName identifies rows produced by this package in logs and ids.
	SourceName = "markdown"

	// bodyColumn receives the Markdown body unless frontmatter already
	// defines it.
	bodyColumn = "value"
	// iconKey is read as the row's page icon instead of a column.
	iconKey = "icon"

	dateLayout = "2006-01-02"
)

// SourceConfig configures a Source.
type SourceConfig struct {
	Pattern   string
	Recursive bool
}

// Source serves the Markdown files of a filesystem as rows.
type Source struct {
	loader *Loader
	inline *InlineParser
	logger interfaces.Logger
}

var _ interfaces.RowSource = (*Source)(nil)

// NewSource builds a source over filesystem.
func NewSource(filesystem fs.FS, cfg SourceConfig, logger interfaces.Logger) *Source {
	return &Source{
		loader: NewLoader(filesystem, LoaderConfig{Pattern: cfg.Pattern, Recursive: cfg.Recursive}),
		inline: NewInlineParser(),
		logger: logging.EnsureLogger(logger),
	}
}

// NewDirSource builds a source over a directory on disk.
func NewDirSource(dir string, cfg SourceConfig, logger interfaces.Logger) *Source {
	return NewSource(os.DirFS(dir), cfg, logger)
}

// Fetch loads every matching file and converts it into a row. Read and
// parse failures are reported as upstream errors.
func (s *Source) Fetch(ctx context.Context) ([]rows.Row, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := s.logger.WithContext(ctx)

	files, err := s.loader.LoadDirectory(ctx, ".")
	if err != nil {
		logger.Error("markdown.load.failed", "error", err)
		return nil, errs.Upstream(err, errs.CodeRequestFailed, "markdown source failed: "+err.Error())
	}

	out := make([]rows.Row, 0, len(files))
	for _, file := range files {
		out = append(out, s.fileRow(file, logger))
	}
	logger.Debug("markdown.load.completed", "files", len(files))
	return out, nil
}

func (s *Source) fileRow(file *File, logger interfaces.Logger) rows.Row {
	row := rows.Row{
		ID:    identity.RowUUID(SourceName, file.Path).String(),
		Cells: make(map[string]rows.Cell, len(file.FrontMatter)+1),
	}

	keys := make([]string, 0, len(file.FrontMatter))
	for key := range file.FrontMatter {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := file.FrontMatter[key]
		if strings.EqualFold(key, iconKey) {
			if icon := pageIcon(value); icon != nil {
				row.Icon = icon
				continue
			}
		}
		cell, ok := s.cellFor(key, value)
		if !ok {
			logger.Debug("markdown.column.skipped", "path", file.Path, "column", key)
			continue
		}
		row.Cells[key] = cell
	}

	if !hasColumn(row, bodyColumn) {
		if fragments := s.inline.Parse(file.Body); len(fragments) > 0 {
			row.Cells[bodyColumn] = rows.RichTextCell(fragments...)
		}
	}
	return row
}

// cellFor maps a frontmatter value onto a cell. Key columns stay plain so
// the title is never split by inline styling.
func (s *Source) cellFor(key string, value any) (rows.Cell, bool) {
	role := roleOf(key)
	switch v := value.(type) {
	case nil:
		return rows.EmptyCell(rows.CellRichText), true
	case string:
		switch role {
		case content.RoleKey:
			return rows.TitleCell(rows.Plain(v)), true
		case content.RoleLink:
			return rows.URLCell(strings.TrimSpace(v)), true
		case content.RoleTag:
			return rows.SelectCell(v), true
		case content.RoleDate:
			return rows.DateCell(strings.TrimSpace(v)), true
		}
		return rows.RichTextCell(s.inline.Parse([]byte(v))...), true
	case bool:
		return rows.RichTextCell(rows.Plain(strconv.FormatBool(v))), true
	case int:
		return rows.NumberCell(float64(v)), true
	case int64:
		return rows.NumberCell(float64(v)), true
	case uint64:
		return rows.NumberCell(float64(v)), true
	case float64:
		return rows.NumberCell(v), true
	case time.Time:
		return rows.DateCell(formatDate(v)), true
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			names = append(names, fmt.Sprint(item))
		}
		return rows.MultiSelectCell(names...), true
	case []string:
		return rows.MultiSelectCell(v...), true
	default:
		return rows.Cell{}, false
	}
}

func roleOf(key string) content.Role {
	cols, _ := content.ResolveNames([]string{key})
	for _, role := range []content.Role{content.RoleKey, content.RoleLink, content.RoleTag, content.RoleDate} {
		if cols.Name(role) != "" {
			return role
		}
	}
	return ""
}

func pageIcon(value any) *rows.PageIcon {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil
	case content.IsImageRef(s):
		return &rows.PageIcon{Type: rows.PageIconExternal, URL: s}
	default:
		return &rows.PageIcon{Type: rows.PageIconEmoji, Emoji: s}
	}
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(dateLayout)
	}
	return t.Format(time.RFC3339)
}

func hasColumn(row rows.Row, name string) bool {
	for existing := range row.Cells {
		if strings.EqualFold(existing, name) {
			return true
		}
	}
	return false
}
