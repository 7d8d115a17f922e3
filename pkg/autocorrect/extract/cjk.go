package extract

import "regexp"

// cjkClass mirrors the pseudo-class expansion in the parent package: Go's
// regexp engine has no \p{CJK} property, so it's spelled out as a union of
// scripts wherever an extractor needs to test "does this span contain any
// CJK content at all".
const cjkClass = `\p{Han}|\p{Hangul}|\p{Hanunoo}|\p{Katakana}|\p{Hiragana}|\p{Bopomofo}`

func compileCJK() *regexp.Regexp {
	return regexp.MustCompile(cjkClass)
}
