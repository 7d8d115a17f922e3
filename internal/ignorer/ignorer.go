// Package ignorer compiles a batch run's ignore-glob list into a matcher,
// analogous to gitignore semantics (negation, "**", directory-only
// patterns), per spec.md's ignore-glob layer.
package ignorer

import (
	gitignore "github.com/sabhiram/go-gitignore"
)

// Ignorer decides whether a path should be skipped by a batch run, based on
// the glob patterns configured in .autocorrectrc's ignore list.
type Ignorer struct {
	matcher *gitignore.GitIgnore
}

// New compiles patterns (gitignore syntax) into an Ignorer. A nil or empty
// pattern list yields an Ignorer that never matches.
func New(patterns []string) *Ignorer {
	if len(patterns) == 0 {
		return &Ignorer{}
	}

	return &Ignorer{matcher: gitignore.CompileIgnoreLines(patterns...)}
}

// Match reports whether path should be skipped.
func (g *Ignorer) Match(path string) bool {
	if g == nil || g.matcher == nil {
		return false
	}

	return g.matcher.MatchesPath(path)
}
