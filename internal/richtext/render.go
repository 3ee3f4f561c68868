// Package richtext converts styled text fragments into inline HTML markup.
package richtext

import (
	"strings"

	"github.com/goliatone/go-homepage/internal/rows"
)

const (
	codeStyle   = `background:rgba(255,255,255,0.15); padding: 0.1em 0.3em; border-radius: 3px; font-family: monospace;`
	anchorStyle = `text-decoration: underline; text-underline-offset: 4px;`
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces the five HTML-reserved characters with entities.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Render produces inline markup for the fragments, concatenated in order.
func Render(fragments []rows.Fragment) string {
	if len(fragments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, fragment := range fragments {
		b.WriteString(RenderFragment(fragment))
	}
	return b.String()
}

// RenderFragment escapes the fragment text and wraps it, innermost first, in
// bold, italic, underline, strikethrough, code and finally link markup.
func RenderFragment(fragment rows.Fragment) string {
	text := Escape(fragment.Text)
	a := fragment.Annotations

	if a.Bold {
		text = "<strong>" + text + "</strong>"
	}
	if a.Italic {
		text = "<em>" + text + "</em>"
	}
	if a.Underline {
		text = "<u>" + text + "</u>"
	}
	if a.Strikethrough {
		text = "<s>" + text + "</s>"
	}
	if a.Code {
		text = `<code style="` + codeStyle + `">` + text + "</code>"
	}
	if fragment.Href != "" {
		text = `<a href="` + Escape(fragment.Href) + `" target="_blank" rel="noopener noreferrer" style="` + anchorStyle + `">` + text + "</a>"
	}
	return text
}

// PlainText joins the unstyled text of every fragment.
func PlainText(fragments []rows.Fragment) string {
	if len(fragments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, fragment := range fragments {
		b.WriteString(fragment.Text)
	}
	return b.String()
}

// FirstPlainText returns the text of the first fragment, or "".
func FirstPlainText(fragments []rows.Fragment) string {
	if len(fragments) == 0 {
		return ""
	}
	return fragments[0].Text
}
