package autocorrect

import "regexp"

// fullwidthPair describes one ASCII punctuation mark and its CJK full-width
// counterpart. re matches the punctuation mark together with up to one CJK
// character immediately touching it on either side (across any amount of
// ASCII space) and captures those neighbours in groups 1 and 2. When at
// least one neighbour is present, the mark converts to its full-width form
// and the space separating it from that neighbour is dropped, since
// full-width punctuation is already visually wide and doesn't need a
// half-width space around it. When neither side touches CJK, the match is
// left untouched.
type fullwidthPair struct {
	re   *regexp.Regexp
	full string
}

// newFullwidthPair tolerates a run of ASCII spaces between the punctuation
// mark and the CJK character that triggers its conversion (comma, "!" and
// "?" read naturally this way: "英文, 逗号" -> "英文，逗号").
func newFullwidthPair(half, full string) fullwidthPair {
	escaped := regexp.QuoteMeta(half)

	return fullwidthPair{
		re:   mustCompileCJK(`(?:(\p{CJK})[ ]*)?` + escaped + `(?:[ ]*(\p{CJK}))?`),
		full: full,
	}
}

// newFullwidthPairTouching only converts when the CJK character directly
// touches the punctuation mark, with no space in between. Brackets, colons
// and semicolons use this stricter form: unlike a comma or a question mark,
// they commonly introduce or wrap a half-width aside ("汽车 (00175)"), and a
// single separating space there is a deliberate half-width boundary, not an
// oversight to tighten up.
func newFullwidthPairTouching(half, full string) fullwidthPair {
	escaped := regexp.QuoteMeta(half)

	return fullwidthPair{
		re:   mustCompileCJK(`(\p{CJK})?` + escaped + `(\p{CJK})?`),
		full: full,
	}
}

func (p fullwidthPair) apply(text string) string {
	return p.re.ReplaceAllStringFunc(text, func(match string) string {
		sub := p.re.FindStringSubmatch(match)
		left, right := sub[1], sub[2]

		if left == "" && right == "" {
			return match
		}

		return left + p.full + right
	})
}

// fullwidthPairs holds every punctuation mark that converts unconditionally
// (the period is handled separately below because of the decimal-point and
// abbreviation exceptions).
var fullwidthPairs = []fullwidthPair{
	newFullwidthPair(",", "，"),
	newFullwidthPair("!", "！"),
	newFullwidthPair("?", "？"),
	newFullwidthPairTouching(":", "："),
	newFullwidthPairTouching(";", "；"),
	newFullwidthPairTouching("(", "（"),
	newFullwidthPairTouching(")", "）"),
	newFullwidthPairTouching("[", "【"),
	newFullwidthPairTouching("]", "】"),
}

var (
	// A period converts only when both of its neighbours are CJK (spaces in
	// between are consumed), or when it's the last character of the text
	// preceded by CJK. Anchoring it this way keeps decimals ("0.1%") and
	// abbreviations/domains ("阿里巴巴.US") untouched, since those have a
	// half-width letter or digit on at least one side.
	periodBetweenCJK = mustCompileCJK(`(\p{CJK})[ ]*\.[ ]*(\p{CJK})`)
	periodAtEnd      = mustCompileCJK(`(\p{CJK})[ ]*\.$`)

	// Directional quote conversion: each convertible quote alternates
	// between its opening and closing full-width form across the document.
	convertibleDoubleQuote = mustCompileCJK(`(\p{CJK})"|"(\p{CJK})`)
	convertibleSingleQuote = mustCompileCJK(`(\p{CJK})'|'(\p{CJK})`)
)

// fullwidth converts ASCII punctuation adjacent to CJK into its full-width
// counterpart. It runs before the spacing rules in strategies (see
// FormatRules), so any space it leaves behind is still subject to being
// tightened up by those rules or by spaceDashWithCJK's quote tightening.
func fullwidth(text string) string {
	out := text

	for _, pair := range fullwidthPairs {
		out = pair.apply(out)
	}

	out = periodBetweenCJK.ReplaceAllString(out, "$1。$2")
	out = periodAtEnd.ReplaceAllString(out, "$1。")

	out = toggleQuotes(out, convertibleDoubleQuote, `"`, "“", "”")
	out = toggleQuotes(out, convertibleSingleQuote, "'", "‘", "’")

	return out
}

// toggleQuotes replaces every CJK-adjacent occurrence of a half-width quote
// character with an alternating open/close full-width form: the first
// convertible quote in the text becomes the opening form, the second the
// closing form, and so on.
func toggleQuotes(text string, re *regexp.Regexp, half, open, closeQ string) string {
	opening := true
	halfRe := regexp.MustCompile(regexp.QuoteMeta(half))

	return re.ReplaceAllStringFunc(text, func(match string) string {
		var replacement string
		if opening {
			replacement = open
		} else {
			replacement = closeQ
		}

		opening = !opening

		return halfRe.ReplaceAllString(match, replacement)
	})
}
