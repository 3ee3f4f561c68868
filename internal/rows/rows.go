// Package rows models the loosely typed records returned by external
// row/column data sources. A Row is a sparse set of named cells; a Cell is a
// tagged union whose payload is selected by its Type.
package rows

import (
	"sort"
	"strings"
)

// CellType discriminates the payload carried by a Cell.
type CellType string

const (
	CellTitle       CellType = "title"
	CellRichText    CellType = "rich_text"
	CellURL         CellType = "url"
	CellEmail       CellType = "email"
	CellPhone       CellType = "phone_number"
	CellNumber      CellType = "number"
	CellSelect      CellType = "select"
	CellMultiSelect CellType = "multi_select"
	CellDate        CellType = "date"
	CellFiles       CellType = "files"
)

// Known reports whether the type is one of the supported variants.
func (t CellType) Known() bool {
	switch t {
	case CellTitle, CellRichText, CellURL, CellEmail, CellPhone, CellNumber,
		CellSelect, CellMultiSelect, CellDate, CellFiles:
		return true
	default:
		return false
	}
}

// IsText reports whether the payload lives in Cell.Text.
func (t CellType) IsText() bool {
	return t == CellTitle || t == CellRichText
}

// Annotations holds the independent style flags of a text fragment.
type Annotations struct {
	Bold          bool `json:"bold"`
	Italic        bool `json:"italic"`
	Underline     bool `json:"underline"`
	Strikethrough bool `json:"strikethrough"`
	Code          bool `json:"code"`
}

// Fragment is a run of plain text with style flags and an optional link.
type Fragment struct {
	Text        string      `json:"text"`
	Annotations Annotations `json:"annotations"`
	Href        string      `json:"href,omitempty"`
}

// Plain builds an unstyled fragment.
func Plain(text string) Fragment {
	return Fragment{Text: text}
}

// Option is a select or multi-select label.
type Option struct {
	Name string `json:"name"`
}

// DateRange is the payload of a date cell. End is optional.
type DateRange struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// File is one attachment of a files cell. Exactly one of HostedURL or
// ExternalURL is normally set.
type File struct {
	Name        string `json:"name,omitempty"`
	HostedURL   string `json:"hosted_url,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

// URL returns the resolvable address of the attachment, preferring the
// hosted copy.
func (f File) URL() string {
	if f.HostedURL != "" {
		return f.HostedURL
	}
	return f.ExternalURL
}

// Cell is a single typed value. Only the payload field matching Type is
// meaningful; nil pointers and nil slices mean the value is absent.
type Cell struct {
	Type        CellType   `json:"type"`
	Text        []Fragment `json:"text,omitempty"`
	Scalar      *string    `json:"scalar,omitempty"`
	Number      *float64   `json:"number,omitempty"`
	Select      *Option    `json:"select,omitempty"`
	MultiSelect []Option   `json:"multi_select,omitempty"`
	Date        *DateRange `json:"date,omitempty"`
	Files       []File     `json:"files,omitempty"`
}

// PageIconType enumerates the page-level icon variants.
type PageIconType string

const (
	PageIconEmoji    PageIconType = "emoji"
	PageIconFile     PageIconType = "file"
	PageIconExternal PageIconType = "external"
)

// PageIcon is the optional icon annotation attached to a whole row.
type PageIcon struct {
	Type  PageIconType `json:"type"`
	Emoji string       `json:"emoji,omitempty"`
	URL   string       `json:"url,omitempty"`
}

// Row is one external record.
type Row struct {
	ID    string          `json:"id,omitempty"`
	Cells map[string]Cell `json:"cells"`
	Icon  *PageIcon       `json:"icon,omitempty"`
}

// ColumnNames returns the row's column names in a stable order. Sources
// differ in how they order properties, so callers get a sorted view.
func (r Row) ColumnNames() []string {
	names := make([]string, 0, len(r.Cells))
	for name := range r.Cells {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li == lj {
			return names[i] < names[j]
		}
		return li < lj
	})
	return names
}

// Cell returns the named cell.
func (r Row) Cell(name string) (Cell, bool) {
	if r.Cells == nil || name == "" {
		return Cell{}, false
	}
	cell, ok := r.Cells[name]
	return cell, ok
}
