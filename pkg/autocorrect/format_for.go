package autocorrect

import (
	"strings"

	"github.com/edgard/autocorrect/pkg/autocorrect/extract"
)

// FormatFor rewrites a document whose format is named by filetype (a file
// extension, with or without its leading dot). It extracts the document
// into spans, applies Format to every rewritable span (Text, InlineString,
// Comment) and passes Code spans through untouched, then reassembles the
// result in order.
//
// An unrecognized filetype or a document containing the ignore directive
// is returned unchanged, with no error: both are "don't touch this"
// signals rather than failures. An extraction failure is reported in
// Err, with Out left equal to the original input.
func FormatFor(raw string, filetype string) FormatResult {
	return FormatForRules(raw, filetype, DefaultRules())
}

// FormatForRules is FormatFor parameterized by which rule families run.
func FormatForRules(raw string, filetype string, rules RuleSet) FormatResult {
	if HasIgnoreDirective(raw) {
		return FormatResult{Out: raw}
	}

	doc, ok := Dispatch([]byte(raw), filetype)
	if !ok {
		return FormatResult{Out: raw}
	}

	spans, err := extract.Extract(doc)
	if err != nil {
		return FormatResult{Out: raw, Err: err.Error()}
	}

	return FormatResult{Out: rewriteSpans(spans, rules)}
}

func rewriteSpans(spans []Span, rules RuleSet) string {
	var b strings.Builder

	for _, s := range spans {
		if s.Kind.Rewritable() {
			b.WriteString(FormatRules(s.Text, rules))
		} else {
			b.WriteString(s.Text)
		}
	}

	return b.String()
}
