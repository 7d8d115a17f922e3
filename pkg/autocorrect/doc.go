// Package autocorrect normalizes the spacing and punctuation of mixed
// CJK/half-width text: it inserts a single space between adjacent CJK and
// ASCII letters, digits and a handful of symbols, and swaps ASCII-style
// punctuation for its full-width counterpart when it sits next to CJK.
//
// Format works on plain text. FormatFor and LintFor are format-aware: they
// split a document into spans of prose versus code/syntax before rewriting
// only the prose, so that string literals, comments, HTML text nodes,
// Markdown paragraphs, YAML scalars and similar content types are rewritten
// while the surrounding code/syntax is left byte-identical.
package autocorrect
