package autocorrect

import (
	"strings"

	"github.com/edgard/autocorrect/pkg/autocorrect/extract"
)

// LintFor diffs a document's rewritten form against its original and
// reports the changed lines, without writing anything. filepath is carried
// through to the result for diff/JSON rendering; it does not affect
// extraction.
func LintFor(raw string, filepath string, filetype string) LintResult {
	return LintForRules(raw, filepath, filetype, DefaultRules())
}

// LintForRules is LintFor parameterized by which rule families run.
func LintForRules(raw string, filepath string, filetype string, rules RuleSet) LintResult {
	result := LintResult{Raw: raw, Filepath: filepath}

	if HasIgnoreDirective(raw) {
		return result
	}

	doc, ok := Dispatch([]byte(raw), filetype)
	if !ok {
		return result
	}

	spans, err := extract.Extract(doc)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	out := rewriteSpans(spans, rules)
	result.Lines = diffLines(raw, out)

	return result
}

// diffLines compares raw and out line by line (treating "\r\n" as a single
// terminator) and returns one LineResult per line that changed. Column is
// always 1: the comparison is whole-line, not sub-line.
func diffLines(raw, out string) []LineResult {
	oldLines := splitLines(raw)
	newLines := splitLines(out)

	var results []LineResult

	for i := 0; i < len(oldLines) && i < len(newLines); i++ {
		if oldLines[i] == newLines[i] {
			continue
		}

		results = append(results, LineResult{
			Line:     i + 1,
			Col:      1,
			Old:      oldLines[i],
			New:      newLines[i],
			Severity: SeverityWarn,
		})
	}

	return results
}

// splitLines splits s into lines with terminators stripped, treating
// "\r\n" as one terminator just like a plain "\n".
func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, len(raw))

	for i, l := range raw {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
