package extract

import "strings"

// StringDelim describes one string-literal form a dialect accepts: an
// opening and closing delimiter, and whether it is raw (Raw true: backslash
// escapes are not honored inside it, as in backtick strings).
type StringDelim struct {
	Open, Close string
	Raw         bool
}

// Syntax is a per-dialect comment/string table: the data a single generic
// tokenizer needs to split a CodeLike document into Code, Comment and
// InlineString spans, without hand-writing one tokenizer per language.
// This mirrors the way linters such as vale key a shared core off a
// per-extension comment/format table instead of one engine per format.
type Syntax struct {
	LineComments  []string
	BlockComments [][2]string
	Strings       []StringDelim
}

// Syntaxes holds one entry per CodeLike dialect named in the format
// dispatch table, keyed by Document.Lang.
var Syntaxes = map[string]Syntax{
	"go": {
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: "`", Close: "`", Raw: true},
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"rust": {
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"javascript": {
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: "`", Close: "`", Raw: true},
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"python": {
		LineComments: []string{"#"},
		Strings: []StringDelim{
			{Open: `"""`, Close: `"""`},
			{Open: "'''", Close: "'''"},
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"ruby": {
		LineComments:  []string{"#"},
		BlockComments: [][2]string{{"=begin", "=end"}},
		Strings: []StringDelim{
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"java": {
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"kotlin": {
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"""`, Close: `"""`, Raw: true},
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"swift": {
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"""`, Close: `"""`},
			{Open: `"`, Close: `"`},
		},
	},
	"dart": {
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"""`, Close: `"""`},
			{Open: "'''", Close: "'''"},
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"php": {
		LineComments:  []string{"//", "#"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"csharp": {
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"objective_c": {
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	"sql": {
		LineComments:  []string{"--"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: "'", Close: "'"},
			{Open: `"`, Close: `"`},
		},
	},
	"css": {
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"`, Close: `"`},
			{Open: "'", Close: "'"},
		},
	},
	// Cocoa/iOS localization files: "key" = "value"; pairs, with /* */
	// comments. The generic tokenizer already treats everything outside a
	// comment or a quoted string as Code, which is exactly right here: key
	// names, "=" and ";" all stay Code, and only the quoted value (the
	// right-hand side) becomes InlineString when it carries CJK content.
	"strings": {
		BlockComments: [][2]string{{"/*", "*/"}},
		Strings: []StringDelim{
			{Open: `"`, Close: `"`},
		},
	},
}

// tokenizeCode walks raw with the Syntax table for lang, classifying every
// byte range as Code, Comment or InlineString. It's a single-pass cursor
// scan rather than a parser: at each position it tries, in order, a block
// comment, a line comment, then each string delimiter; whichever matches
// first wins. Anything that matches nothing is Code, one rune at a time.
func tokenizeCode(raw []byte, lang string) []Span {
	syn, ok := Syntaxes[lang]
	if !ok {
		return []Span{{Kind: Code, Start: 0, End: len(raw), Text: string(raw)}}
	}

	var spans []Span
	codeStart := 0
	i := 0
	n := len(raw)

	flushCode := func(end int) {
		if end > codeStart {
			spans = append(spans, Span{Kind: Code, Start: codeStart, End: end, Text: string(raw[codeStart:end])})
		}
	}

	for i < n {
		if open, close, ok := matchBlockComment(raw[i:], syn); ok {
			flushCode(i)
			start := i
			end := findClose(raw, i+len(open), close)
			spans = append(spans, Span{Kind: Comment, Start: start, End: end, Text: string(raw[start:end])})
			i = end
			codeStart = i

			continue
		}

		if prefix, ok := matchLineComment(raw[i:], syn); ok {
			flushCode(i)
			start := i
			end := findLineEnd(raw, i+len(prefix))
			spans = append(spans, Span{Kind: Comment, Start: start, End: end, Text: string(raw[start:end])})
			i = end
			codeStart = i

			continue
		}

		if delim, ok := matchStringOpen(raw[i:], syn); ok {
			flushCode(i)
			start := i
			openEnd := i + len(delim.Open)
			closeStart, closeEnd := findStringClose(raw, openEnd, delim)

			spans = append(spans, Span{Kind: Code, Start: start, End: openEnd, Text: string(raw[start:openEnd])})

			if closeStart > openEnd {
				interior := string(raw[openEnd:closeStart])

				kind := Code
				if cjkRe.MatchString(interior) {
					kind = InlineString
				}

				spans = append(spans, Span{Kind: kind, Start: openEnd, End: closeStart, Text: interior})
			}

			if closeEnd > closeStart {
				spans = append(spans, Span{Kind: Code, Start: closeStart, End: closeEnd, Text: string(raw[closeStart:closeEnd])})
			}

			i = closeEnd
			codeStart = i

			continue
		}

		_, size := decodeRune(raw[i:])
		i += size
	}

	flushCode(n)

	return spans
}

func matchBlockComment(rest []byte, syn Syntax) (open, close string, ok bool) {
	for _, pair := range syn.BlockComments {
		if hasPrefixString(rest, pair[0]) {
			return pair[0], pair[1], true
		}
	}

	return "", "", false
}

func matchLineComment(rest []byte, syn Syntax) (prefix string, ok bool) {
	for _, p := range syn.LineComments {
		if hasPrefixString(rest, p) {
			return p, true
		}
	}

	return "", false
}

func matchStringOpen(rest []byte, syn Syntax) (StringDelim, bool) {
	var best StringDelim

	found := false

	for _, d := range syn.Strings {
		if hasPrefixString(rest, d.Open) && (!found || len(d.Open) > len(best.Open)) {
			best = d
			found = true
		}
	}

	return best, found
}

func hasPrefixString(b []byte, s string) bool {
	return len(b) >= len(s) && string(b[:len(s)]) == s
}

// findClose returns the byte offset just past the first occurrence of
// close at or after start, or len(raw) if close never appears (an
// unterminated block comment runs to the end of the document).
func findClose(raw []byte, start int, close string) int {
	idx := indexFrom(raw, start, close)
	if idx < 0 {
		return len(raw)
	}

	return idx + len(close)
}

func findLineEnd(raw []byte, start int) int {
	for i := start; i < len(raw); i++ {
		if raw[i] == '\n' {
			return i
		}
	}

	return len(raw)
}

// findStringClose returns the byte offset of the closing delimiter for a
// string literal opened at the delimiter just before start, and the offset
// just past it, so the caller can carve the delimiter itself out as its own
// Code span rather than folding it into the literal's interior. Escaped
// closing delimiters (a backslash immediately preceding Close, unless the
// string form is raw) are skipped over. An unterminated literal reports
// both offsets as len(raw): the whole remainder is interior, no trailing
// delimiter span is emitted.
func findStringClose(raw []byte, start int, delim StringDelim) (closeStart, closeEnd int) {
	i := start

	for i < len(raw) {
		if !delim.Raw && raw[i] == '\\' {
			i += 2
			continue
		}

		if hasPrefixString(raw[i:], delim.Close) {
			return i, i + len(delim.Close)
		}

		_, size := decodeRune(raw[i:])
		i += size
	}

	return len(raw), len(raw)
}

func indexFrom(raw []byte, start int, sub string) int {
	idx := strings.Index(string(raw[start:]), sub)
	if idx < 0 {
		return -1
	}

	return start + idx
}

// decodeRune returns the byte width of the rune starting b[0], defaulting
// to 1 for invalid or empty input so the scan always makes progress.
func decodeRune(b []byte) (r rune, size int) {
	if len(b) == 0 {
		return 0, 1
	}

	switch {
	case b[0] < 0x80:
		return rune(b[0]), 1
	case b[0]&0xE0 == 0xC0 && len(b) >= 2:
		return 0, 2
	case b[0]&0xF0 == 0xE0 && len(b) >= 3:
		return 0, 3
	case b[0]&0xF8 == 0xF0 && len(b) >= 4:
		return 0, 4
	default:
		return 0, 1
	}
}
