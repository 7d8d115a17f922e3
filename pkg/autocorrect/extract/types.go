// Package extract splits a document into spans of prose versus code and
// syntax, so the plain-text formatter can rewrite the former while leaving
// the latter byte-identical.
package extract

// Kind classifies a Span by how its text should be treated during
// format-aware rewriting.
type Kind int

const (
	// Text is prose: Markdown paragraphs, HTML text nodes, plain-text
	// documents. The formatter rewrites these spans.
	Text Kind = iota
	// InlineString is a quoted string literal embedded in source code. It
	// is prose for rewriting purposes, but tracked separately so callers
	// can tell the two apart.
	InlineString
	// Comment is a source-code comment.
	Comment
	// Code is everything else: keywords, operators, punctuation,
	// identifiers and any syntax that must stay byte-identical.
	Code
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case InlineString:
		return "inline_string"
	case Comment:
		return "comment"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}

// Rewritable reports whether spans of this kind are candidates for
// format-aware rewriting.
func (k Kind) Rewritable() bool {
	return k == Text || k == InlineString || k == Comment
}

// Span is a single byte-range slice of a Document, tagged with how it
// should be treated. Start and End are byte offsets into the original
// input; Text is raw[Start:End] decoded as a string. Concatenating every
// Span's Text in order must reproduce the document's original content
// exactly — an extractor that violates this invariant corrupts output.
type Span struct {
	Kind  Kind
	Start int
	End   int
	Text  string
}

// DocumentKind identifies the file format used to select an extractor.
type DocumentKind int

const (
	// PlainText has no syntax: the whole document is a single Text span.
	PlainText DocumentKind = iota
	HTML
	Markdown
	YAML
	JSON
	// CodeLike covers the many programming-language dialects handled by
	// the shared comment/string tokenizer (see Syntax).
	CodeLike
)

// Document is a unit of input to be split into spans: raw bytes plus the
// format used to decide how that happens.
type Document struct {
	Raw []byte
	Kind DocumentKind
	// Lang disambiguates a CodeLike document (the specific dialect: "go",
	// "rust", "python", ...), used to look up its entry in Syntaxes.
	Lang string
}
