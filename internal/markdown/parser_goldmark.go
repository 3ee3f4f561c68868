package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-homepage/internal/rows"
)

// InlineParser converts Markdown into styled text fragments. Only inline
// styling survives: emphasis, strong, strikethrough, code spans and links.
// Block structure collapses into newline separated runs.
type InlineParser struct {
	engine goldmark.Markdown
}

// NewInlineParser builds a parser with the named goldmark extensions. An
// empty list enables strikethrough and linkify.
func NewInlineParser(extensions ...string) *InlineParser {
	return &InlineParser{
		engine: goldmark.New(goldmark.WithExtensions(collectExtensions(extensions)...)),
	}
}

// Parse returns the fragments of source in document order.
func (p *InlineParser) Parse(source []byte) []rows.Fragment {
	if len(strings.TrimSpace(string(source))) == 0 {
		return nil
	}
	doc := p.engine.Parser().Parse(text.NewReader(source))

	w := &fragmentWriter{source: source}
	first := true
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if !first {
			w.write("\n", rows.Annotations{}, "")
		}
		first = false
		w.walk(block, rows.Annotations{}, "")
	}
	return w.fragments
}

type fragmentWriter struct {
	source    []byte
	fragments []rows.Fragment
}

func (w *fragmentWriter) walk(node ast.Node, style rows.Annotations, href string) {
	switch n := node.(type) {
	case *ast.Text:
		w.write(string(n.Segment.Value(w.source)), style, href)
		if n.HardLineBreak() {
			w.write("\n", style, href)
		} else if n.SoftLineBreak() {
			w.write(" ", style, href)
		}
		return
	case *ast.String:
		w.write(string(n.Value), style, href)
		return
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			segment := n.Segments.At(i)
			w.write(string(segment.Value(w.source)), style, href)
		}
		return
	case *ast.AutoLink:
		w.write(string(n.Label(w.source)), style, string(n.URL(w.source)))
		return
	case *ast.Image:
		return
	case *ast.Emphasis:
		if n.Level >= 2 {
			style.Bold = true
		} else {
			style.Italic = true
		}
	case *extast.Strikethrough:
		style.Strikethrough = true
	case *ast.CodeSpan:
		style.Code = true
	case *ast.Link:
		href = string(n.Destination)
	}

	first := true
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if !first && node.Type() == ast.TypeBlock && child.Type() == ast.TypeBlock {
			w.write("\n", rows.Annotations{}, "")
		}
		first = false
		w.walk(child, style, href)
	}
}

// write appends text, merging it into the previous fragment when the style
// and link match.
func (w *fragmentWriter) write(value string, style rows.Annotations, href string) {
	if value == "" {
		return
	}
	if last := len(w.fragments) - 1; last >= 0 {
		prev := &w.fragments[last]
		if prev.Annotations == style && prev.Href == href {
			prev.Text += value
			return
		}
	}
	w.fragments = append(w.fragments, rows.Fragment{Text: value, Annotations: style, Href: href})
}

var extensionRegistry = map[string]goldmark.Extender{
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.Strikethrough,
			extension.Linkify,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
