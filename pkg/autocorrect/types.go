package autocorrect

import "github.com/edgard/autocorrect/pkg/autocorrect/extract"

// These aliases re-export the extract package's span/document vocabulary
// under the top-level package, so callers of FormatFor/LintFor never need
// to import extract directly themselves.
type (
	Kind         = extract.Kind
	Span         = extract.Span
	DocumentKind = extract.DocumentKind
	Document     = extract.Document
)

const (
	Text         = extract.Text
	InlineString = extract.InlineString
	Comment      = extract.Comment
	Code         = extract.Code

	PlainText = extract.PlainText
	HTML      = extract.HTML
	Markdown  = extract.Markdown
	YAML      = extract.YAML
	JSON      = extract.JSON
	CodeLike  = extract.CodeLike
)

// Dispatch maps a file extension (with or without a leading dot) to the
// Document it selects. ok is false for unknown extensions, which callers
// must treat as "skip this file".
func Dispatch(raw []byte, ext string) (Document, bool) {
	return extract.Dispatch(raw, ext)
}
