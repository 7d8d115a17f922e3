package autocorrect

import (
	"strings"

	"golang.org/x/text/width"
)

// halfwidth folds full-width Latin letters and digits (the "Ａ１"-style
// forms sometimes pasted in from Japanese/Chinese input methods) down to
// their plain ASCII equivalents. It deliberately does not hand the whole
// string to width.Narrow: that transform also folds full-width punctuation
// such as '，' and '。' straight back to half-width/compatibility forms,
// which would undo the CJK-punctuation conversion fullwidth just made. Only
// digits (U+FF10-FF19), uppercase letters (U+FF21-FF3A) and lowercase
// letters (U+FF41-FF5A) are narrowed here; everything else, punctuation
// included, passes through untouched.
func halfwidth(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if !isFullwidthAlnum(r) {
			b.WriteRune(r)
			continue
		}

		b.WriteString(width.Narrow.String(string(r)))
	}

	return b.String()
}

func isFullwidthAlnum(r rune) bool {
	switch {
	case r >= 0xFF10 && r <= 0xFF19: // fullwidth digits 0-9
		return true
	case r >= 0xFF21 && r <= 0xFF3A: // fullwidth uppercase A-Z
		return true
	case r >= 0xFF41 && r <= 0xFF5A: // fullwidth lowercase a-z
		return true
	default:
		return false
	}
}
