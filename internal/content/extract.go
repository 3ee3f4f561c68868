package content

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-homepage/internal/richtext"
	"github.com/goliatone/go-homepage/internal/rows"
)

// photosFileKey names the config row that lists photo URLs separated by
// semicolons. Its value is always plain text.
const photosFileKey = "photosfile"

// ExtractValue normalises a cell for role. Text cells render to markup for
// the value and description roles and to the first fragment's plain text
// otherwise. ok is false when the cell carries no value; a present numeric
// zero is reported as "0".
func ExtractValue(cell rows.Cell, role Role) (string, bool) {
	switch cell.Type {
	case rows.CellTitle, rows.CellRichText:
		if len(cell.Text) == 0 {
			return "", false
		}
		if role == RoleValue || role == RoleDescription {
			return richtext.Render(cell.Text), true
		}
		return richtext.FirstPlainText(cell.Text), true
	case rows.CellURL, rows.CellEmail, rows.CellPhone:
		if cell.Scalar == nil {
			return "", false
		}
		return *cell.Scalar, true
	case rows.CellNumber:
		if cell.Number == nil {
			return "", false
		}
		return strconv.FormatFloat(*cell.Number, 'f', -1, 64), true
	case rows.CellFiles:
		return firstFileURL(cell.Files)
	default:
		return "", false
	}
}

// ExtractTitle returns the plain text of a key cell's first fragment.
// Cells of other types produce "".
func ExtractTitle(cell rows.Cell) string {
	if !cell.Type.IsText() {
		return ""
	}
	return richtext.FirstPlainText(cell.Text)
}

// ExtractConfigValue extracts the value of a config row titled key. The
// photosFile row bypasses markup rendering for text cells.
func ExtractConfigValue(key string, cell rows.Cell) string {
	if strings.EqualFold(key, photosFileKey) && cell.Type.IsText() {
		return richtext.PlainText(cell.Text)
	}
	value, _ := ExtractValue(cell, RoleValue)
	return value
}

// ExtractDescription extracts the description of a project or talk.
func ExtractDescription(cell *rows.Cell) string {
	if cell == nil {
		return ""
	}
	value, _ := ExtractValue(*cell, RoleDescription)
	return value
}

// ExtractLink returns a trimmed link from url, text or files cells.
func ExtractLink(cell *rows.Cell) string {
	if cell == nil {
		return ""
	}
	var link string
	switch cell.Type {
	case rows.CellURL, rows.CellTitle, rows.CellRichText, rows.CellFiles:
		link, _ = ExtractValue(*cell, RoleLink)
	}
	return strings.TrimSpace(link)
}

// ExtractDate returns the start of a date cell or the joined text of a text
// cell.
func ExtractDate(cell *rows.Cell) string {
	if cell == nil {
		return ""
	}
	switch cell.Type {
	case rows.CellDate:
		if cell.Date == nil {
			return ""
		}
		return cell.Date.Start
	case rows.CellTitle, rows.CellRichText:
		return richtext.PlainText(cell.Text)
	default:
		return ""
	}
}

// ExtractIcon reads the icon cell and falls back to the row's page icon.
// It returns nil when neither yields a value.
func ExtractIcon(cell *rows.Cell, page *rows.PageIcon) *Icon {
	if value := strings.TrimSpace(iconCellValue(cell)); value != "" {
		return classifyIcon(value)
	}
	return pageIcon(page)
}

func iconCellValue(cell *rows.Cell) string {
	if cell == nil {
		return ""
	}
	switch cell.Type {
	case rows.CellTitle, rows.CellRichText:
		return richtext.PlainText(cell.Text)
	case rows.CellURL:
		if cell.Scalar == nil {
			return ""
		}
		return *cell.Scalar
	case rows.CellFiles:
		value, _ := firstFileURL(cell.Files)
		return value
	default:
		return ""
	}
}

// IsImageRef reports whether an icon value points at an image (http(s) URL,
// absolute path or data URI) rather than being an emoji.
func IsImageRef(value string) bool {
	return strings.HasPrefix(value, "http") || strings.HasPrefix(value, "/") || strings.HasPrefix(value, "data:")
}

func classifyIcon(value string) *Icon {
	if IsImageRef(value) {
		return &Icon{Type: IconImage, Value: value}
	}
	return &Icon{Type: IconEmoji, Value: value}
}

func pageIcon(page *rows.PageIcon) *Icon {
	if page == nil {
		return nil
	}
	switch page.Type {
	case rows.PageIconEmoji:
		if page.Emoji == "" {
			return nil
		}
		return &Icon{Type: IconEmoji, Value: page.Emoji}
	case rows.PageIconFile, rows.PageIconExternal:
		if page.URL == "" {
			return nil
		}
		return &Icon{Type: IconImage, Value: page.URL}
	default:
		return nil
	}
}

func firstFileURL(files []rows.File) (string, bool) {
	if len(files) == 0 {
		return "", false
	}
	url := files[0].URL()
	return url, url != ""
}
