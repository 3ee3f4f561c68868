package content

import (
	"strings"

	"github.com/goliatone/go-homepage/internal/rows"
)

// Role is the semantic part a column or cell plays in a row.
type Role string

const (
	RoleKey         Role = "key"
	RoleValue       Role = "value"
	RoleTag         Role = "tag"
	RoleLink        Role = "link"
	RoleIcon        Role = "icon"
	RoleDate        Role = "date"
	RoleDescription Role = "description"
)

// columnAliases lists, per role, the lower-cased column names that bind it.
var columnAliases = map[Role][]string{
	RoleKey:   {"title", "key", "name"},
	RoleValue: {"value", "text", "content", "description", "desc"},
	RoleTag:   {"tags", "tag"},
	RoleLink:  {"link", "url", "href", "website"},
	RoleIcon:  {"icon", "image", "img"},
	RoleDate:  {"date", "time", "when", "day"},
}

var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]Role {
	index := make(map[string]Role)
	for role, aliases := range columnAliases {
		for _, alias := range aliases {
			index[alias] = role
		}
	}
	return index
}

// Columns maps each role to the column name bound to it. Unbound roles are "".
type Columns struct {
	Key   string
	Value string
	Tag   string
	Link  string
	Icon  string
	Date  string
}

// Name returns the column bound to role.
func (c Columns) Name(role Role) string {
	switch role {
	case RoleKey:
		return c.Key
	case RoleValue, RoleDescription:
		return c.Value
	case RoleTag:
		return c.Tag
	case RoleLink:
		return c.Link
	case RoleIcon:
		return c.Icon
	case RoleDate:
		return c.Date
	default:
		return ""
	}
}

func (c *Columns) bind(role Role, name string) {
	if c.Name(role) != "" {
		return
	}
	switch role {
	case RoleKey:
		c.Key = name
	case RoleValue:
		c.Value = name
	case RoleTag:
		c.Tag = name
	case RoleLink:
		c.Link = name
	case RoleIcon:
		c.Icon = name
	case RoleDate:
		c.Date = name
	}
}

// Cell returns the row's cell bound to role, or nil.
func (c Columns) Cell(row rows.Row, role Role) *rows.Cell {
	name := c.Name(role)
	if name == "" {
		return nil
	}
	cell, ok := row.Cell(name)
	if !ok {
		return nil
	}
	return &cell
}

// ResolveColumns binds column names to roles by case-insensitive exact
// match against the alias table. The first matching column in
// row.ColumnNames order wins. ok is false when no key column exists.
func ResolveColumns(row rows.Row) (Columns, bool) {
	return ResolveNames(row.ColumnNames())
}

// ResolveNames is ResolveColumns over an explicit ordered name list.
func ResolveNames(names []string) (Columns, bool) {
	var cols Columns
	for _, name := range names {
		role, ok := aliasIndex[strings.ToLower(name)]
		if !ok {
			continue
		}
		cols.bind(role, name)
	}
	return cols, cols.Key != ""
}
