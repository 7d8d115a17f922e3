package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// rawBodyElements holds the tags whose text content the HTML spec says to
// treat as opaque data rather than prose, even though the tokenizer hands
// it back as a TextToken like any other run of text between tags.
var rawBodyElements = map[string]bool{
	"script": true,
	"style":  true,
}

// extractHTML splits an HTML document into Code (tags, attributes,
// doctype, and <script>/<style> bodies), Text (text nodes) and Comment
// (HTML comments) spans, using golang.org/x/net/html's tokenizer. The
// tokenizer's Raw() method returns the exact bytes of each token, so
// concatenating spans in token order reproduces the document exactly.
func extractHTML(raw []byte) []Span {
	tok := html.NewTokenizer(bytes.NewReader(raw))

	var spans []Span

	pos := 0
	rawElement := "" // non-empty while inside a <script> or <style> body

	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}

		tokenRaw := tok.Raw()
		start := pos
		end := pos + len(tokenRaw)
		pos = end

		text := string(tokenRaw)

		var kind Kind

		switch tt {
		case html.TextToken:
			if rawElement != "" {
				kind = Code
			} else {
				kind = Text
			}
		case html.CommentToken:
			kind = Comment
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken, html.DoctypeToken:
			kind = Code

			name, _ := tok.TagName()
			tagName := strings.ToLower(string(name))

			switch tt {
			case html.StartTagToken:
				if rawBodyElements[tagName] {
					rawElement = tagName
				}
			case html.EndTagToken:
				if tagName == rawElement {
					rawElement = ""
				}
			}
		default:
			kind = Code
		}

		spans = append(spans, Span{Kind: kind, Start: start, End: end, Text: text})
	}

	// The tokenizer stops at the first malformed byte sequence it can't
	// recover from; whatever remains is passed through untouched rather
	// than dropped.
	if pos < len(raw) {
		spans = append(spans, Span{Kind: Code, Start: pos, End: len(raw), Text: string(raw[pos:])})
	}

	return spans
}
