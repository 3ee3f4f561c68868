// Package markdown reads a directory of Markdown files as a row source.
// Each file is one row: frontmatter keys become columns and the body, when
// present, becomes the value column with inline styling preserved.
package markdown
