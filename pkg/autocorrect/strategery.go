package autocorrect

import "regexp"

// Strategery is a bidirectional spacing rule: given a left character class L
// and a right character class R, it inserts a single space between an L/R
// (and/or R/L) pair wherever they appear adjacent in the input. It is the
// project's name for the data-driven rule the plain-text engine applies, in
// place of a hand-coded pass per character-class pair.
//
// Rules are idempotent by construction: once a space has been inserted
// between a matched pair, the space itself is never part of either class, so
// a second pass finds nothing new to match.
type Strategery struct {
	leftRight *regexp.Regexp // matches (L)(R), used when spaceLR
	rightLeft *regexp.Regexp // matches (R)(L), used when spaceRL
	spaceLR   bool
	spaceRL   bool
}

// newStrategery builds a rule from two regex-class fragments. left and right
// may reference the \p{CJK} pseudo-class; it is macro-expanded before
// compilation. spaceLR inserts a space when left is immediately followed by
// right; spaceRL inserts a space when right is immediately followed by left.
func newStrategery(left, right string, spaceLR, spaceRL bool) *Strategery {
	s := &Strategery{spaceLR: spaceLR, spaceRL: spaceRL}

	if spaceLR {
		s.leftRight = mustCompileCJK(`(` + left + `)(` + right + `)`)
	}

	if spaceRL {
		s.rightLeft = mustCompileCJK(`(` + right + `)(` + left + `)`)
	}

	return s
}

// format applies the rule to text, inserting spaces per the constructor's
// direction flags.
func (s *Strategery) format(text string) string {
	out := text

	if s.spaceLR {
		out = s.leftRight.ReplaceAllString(out, "$1 $2")
	}

	if s.spaceRL {
		out = s.rightLeft.ReplaceAllString(out, "$1 $2")
	}

	return out
}
