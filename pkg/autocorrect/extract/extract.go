package extract

import "fmt"

// cjkRe is a minimal local copy of the \p{CJK} test used to decide whether
// a string literal's interior is worth treating as prose. It's kept here
// rather than imported from the parent package to avoid a cycle (the
// parent imports extract, not the other way around).
var cjkRe = compileCJK()

// Extract splits doc into a gap-free, in-order cover of spans according to
// its Kind. It returns an error when the document's syntax could not be
// parsed at all (currently: YAML/JSON documents that fail to parse) or when
// doc.Kind is not a known DocumentKind; code-like, HTML, Markdown and
// plain-text extraction never fail since their tokenizers recover at the
// next token boundary instead of erroring.
func Extract(doc Document) ([]Span, error) {
	switch doc.Kind {
	case PlainText:
		return extractText(doc.Raw), nil
	case HTML:
		return extractHTML(doc.Raw), nil
	case Markdown:
		return extractMarkdown(doc.Raw), nil
	case YAML:
		return extractYAML(doc.Raw)
	case JSON:
		return extractJSON(doc.Raw)
	case CodeLike:
		return tokenizeCode(doc.Raw, doc.Lang), nil
	default:
		return nil, fmt.Errorf("extract: unknown document kind %d", doc.Kind)
	}
}
