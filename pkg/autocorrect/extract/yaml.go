package extract

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// extractYAML splits a YAML document into Code (keys with their colon,
// indentation, quote delimiters, line terminators and values without CJK),
// Comment (lines whose first non-blank character is '#') and InlineString
// (scalar values, bare or quoted, that carry CJK content) spans. Anchors,
// tags, sequence dashes and trailing "# ..." comments on a value line are
// not split out: they stay inside that value's span. It works line by
// line rather than off a full document tree: yaml.Unmarshal is used only
// to pre-flight that the document parses at all, since scanning malformed
// YAML byte-by-byte risks spans that don't reconstruct the input.
func extractYAML(raw []byte) ([]Span, error) {
	var probe any
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return nil, errParseFailed("yaml: " + err.Error())
	}

	var spans []Span

	offset := 0
	lines := splitKeepingTerminator(raw)

	for _, line := range lines {
		spans = append(spans, classifyYAMLLine(line, offset)...)
		offset += len(line)
	}

	return spans, nil
}

// classifyYAMLLine splits one line (including its trailing newline, if
// any) of a YAML document into spans, offsetting their byte ranges by
// base.
func classifyYAMLLine(line []byte, base int) []Span {
	text := string(line)

	// A line that is only a comment (after leading indentation).
	trimmed := strings.TrimLeft(text, " \t")
	indent := len(text) - len(trimmed)

	if strings.HasPrefix(trimmed, "#") {
		return []Span{{Kind: Comment, Start: base, End: base + len(line), Text: text}}
	}

	colon := findUnquotedColon(trimmed)
	if colon < 0 {
		// No key on this line: either a bare scalar continuation or a
		// "- value" sequence item. Treat the non-indentation content as a
		// candidate value span.
		return classifyYAMLValue(text, indent, base)
	}

	keyEnd := indent + colon + 1 // include the colon in Code
	valueStart := keyEnd

	spans := []Span{{Kind: Code, Start: base, End: base + keyEnd, Text: text[:keyEnd]}}
	spans = append(spans, classifyYAMLValue(text[valueStart:], 0, base+valueStart)...)

	return spans
}

func classifyYAMLValue(text string, indent int, base int) []Span {
	rest := text[indent:]
	trimmedRight := strings.TrimRight(rest, "\r\n")

	valueText := strings.TrimSpace(trimmedRight)
	if valueText == "" {
		return []Span{{Kind: Code, Start: base, End: base + len(text), Text: text}}
	}

	leadSpace := strings.Index(trimmedRight, valueText)
	prefixEnd := indent + leadSpace

	var spans []Span

	if prefixEnd > 0 {
		spans = append(spans, Span{Kind: Code, Start: base, End: base + prefixEnd, Text: text[:prefixEnd]})
	}

	spans = append(spans, classifyYAMLScalar(valueText, base+prefixEnd)...)

	if suffixStart := prefixEnd + len(valueText); suffixStart < len(text) {
		spans = append(spans, Span{Kind: Code, Start: base + suffixStart, End: base + len(text), Text: text[suffixStart:]})
	}

	return spans
}

// classifyYAMLScalar splits a bare or quoted scalar value into spans. A
// quoted scalar's delimiters are carved out as their own Code spans so that
// rewriting the interior never touches the quote characters, which would
// otherwise corrupt the scalar's quoting.
func classifyYAMLScalar(valueText string, base int) []Span {
	if n := len(valueText); n >= 2 && (valueText[0] == '"' || valueText[0] == '\'') && valueText[n-1] == valueText[0] {
		quote := valueText[:1]
		interior := valueText[1 : n-1]

		spans := []Span{{Kind: Code, Start: base, End: base + 1, Text: quote}}

		if len(interior) > 0 {
			kind := Code
			if cjkRe.MatchString(interior) {
				kind = InlineString
			}

			spans = append(spans, Span{Kind: kind, Start: base + 1, End: base + 1 + len(interior), Text: interior})
		}

		spans = append(spans, Span{Kind: Code, Start: base + 1 + len(interior), End: base + n, Text: quote})

		return spans
	}

	kind := Code
	if cjkRe.MatchString(valueText) {
		kind = InlineString
	}

	return []Span{{Kind: kind, Start: base, End: base + len(valueText), Text: valueText}}
}

// findUnquotedColon returns the byte index of the first ": " or end-of-line
// colon that isn't inside a quoted scalar, or -1 if there is none.
func findUnquotedColon(s string) int {
	inSingle, inDouble := false, false

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case ':':
			if inSingle || inDouble {
				continue
			}

			if i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\t' || s[i+1] == '\n' || s[i+1] == '\r' {
				return i
			}
		}
	}

	return -1
}

// splitKeepingTerminator splits raw into lines, each retaining its
// trailing "\n" (or "\r\n"), so that concatenating every line reproduces
// raw exactly.
func splitKeepingTerminator(raw []byte) [][]byte {
	var lines [][]byte

	start := 0

	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			lines = append(lines, raw[start:i+1])
			start = i + 1
		}
	}

	if start < len(raw) {
		lines = append(lines, raw[start:])
	}

	return lines
}
