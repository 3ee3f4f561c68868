package notion

import (
	"github.com/goliatone/go-homepage/internal/rows"
)

func convertPages(pages []page) []rows.Row {
	out := make([]rows.Row, 0, len(pages))
	for _, p := range pages {
		out = append(out, convertPage(p))
	}
	return out
}

func convertPage(p page) rows.Row {
	row := rows.Row{
		ID:    p.ID,
		Cells: make(map[string]rows.Cell, len(p.Properties)),
		Icon:  convertIcon(p.Icon),
	}
	for name, prop := range p.Properties {
		row.Cells[name] = convertProperty(prop)
	}
	return row
}

// convertProperty maps a property onto a cell. Unsupported property types
// keep their type name and carry no payload, so they still take part in
// column resolution but never yield a value.
func convertProperty(prop property) rows.Cell {
	cell := rows.Cell{Type: rows.CellType(prop.Type)}
	switch cell.Type {
	case rows.CellTitle:
		cell.Text = convertRichText(prop.Title)
	case rows.CellRichText:
		cell.Text = convertRichText(prop.RichText)
	case rows.CellURL:
		cell.Scalar = nonEmpty(prop.URL)
	case rows.CellEmail:
		cell.Scalar = nonEmpty(prop.Email)
	case rows.CellPhone:
		cell.Scalar = nonEmpty(prop.PhoneNumber)
	case rows.CellNumber:
		cell.Number = prop.Number
	case rows.CellSelect:
		if prop.Select != nil {
			cell.Select = &rows.Option{Name: prop.Select.Name}
		}
	case rows.CellMultiSelect:
		for _, option := range prop.MultiSelect {
			cell.MultiSelect = append(cell.MultiSelect, rows.Option{Name: option.Name})
		}
	case rows.CellDate:
		if prop.Date != nil {
			cell.Date = &rows.DateRange{Start: prop.Date.Start, End: prop.Date.End}
		}
	case rows.CellFiles:
		for _, f := range prop.Files {
			cell.Files = append(cell.Files, convertFile(f))
		}
	}
	return cell
}

func convertRichText(chunks []richText) []rows.Fragment {
	if len(chunks) == 0 {
		return nil
	}
	out := make([]rows.Fragment, 0, len(chunks))
	for _, chunk := range chunks {
		fragment := rows.Fragment{
			Text: chunk.PlainText,
			Annotations: rows.Annotations{
				Bold:          chunk.Annotations.Bold,
				Italic:        chunk.Annotations.Italic,
				Underline:     chunk.Annotations.Underline,
				Strikethrough: chunk.Annotations.Strikethrough,
				Code:          chunk.Annotations.Code,
			},
		}
		if chunk.Href != nil {
			fragment.Href = *chunk.Href
		}
		out = append(out, fragment)
	}
	return out
}

func convertFile(f fileObject) rows.File {
	out := rows.File{Name: f.Name}
	if f.File != nil {
		out.HostedURL = f.File.URL
	}
	if f.External != nil {
		out.ExternalURL = f.External.URL
	}
	return out
}

func convertIcon(i *icon) *rows.PageIcon {
	if i == nil {
		return nil
	}
	switch i.Type {
	case "emoji":
		if i.Emoji == "" {
			return nil
		}
		return &rows.PageIcon{Type: rows.PageIconEmoji, Emoji: i.Emoji}
	case "file":
		if i.File == nil || i.File.URL == "" {
			return nil
		}
		return &rows.PageIcon{Type: rows.PageIconFile, URL: i.File.URL}
	case "external":
		if i.External == nil || i.External.URL == "" {
			return nil
		}
		return &rows.PageIcon{Type: rows.PageIconExternal, URL: i.External.URL}
	default:
		return nil
	}
}

func nonEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
