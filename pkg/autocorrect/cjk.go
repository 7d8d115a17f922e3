package autocorrect

import (
	"regexp"
	"strings"
)

// cjkClass is the regex alternation backing the \p{CJK} pseudo-class used
// throughout this package's rule fragments. Go's regexp engine (like many
// others) has no single \p{CJK} Unicode property, so every fragment that
// wants "any CJK character" spells it out as this union of scripts instead.
const cjkClass = `\p{Han}|\p{Hangul}|\p{Hanunoo}|\p{Katakana}|\p{Hiragana}|\p{Bopomofo}`

// expandCJK macro-expands the literal token "\p{CJK}" in a regex fragment
// into the explicit script union above, before the fragment is compiled.
func expandCJK(fragment string) string {
	return strings.ReplaceAll(fragment, `\p{CJK}`, cjkClass)
}

// mustCompileCJK expands and compiles a regex fragment in one step. It
// panics on malformed patterns, which is fine here: every pattern passed to
// it is a package-level constant compiled once at init time, so a malformed
// pattern is a programming error, not a runtime condition.
func mustCompileCJK(fragment string) *regexp.Regexp {
	return regexp.MustCompile(expandCJK(fragment))
}

// cjkRe matches any single CJK character; used for the fast-reject path in
// Format.
var cjkRe = mustCompileCJK(`\p{CJK}`)
