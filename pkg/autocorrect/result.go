package autocorrect

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity classifies a LineResult the way a linter does: pass (no change),
// warn (an auto-fixable style issue), or error (the formatter had to guess,
// or couldn't).
type Severity int

const (
	SeverityPass Severity = iota
	SeverityWarn
	SeverityError
)

// LineResult is one diagnostic: a single changed line, its original and
// rewritten text, and where it sits in the source.
type LineResult struct {
	Line     int
	Col      int
	Old      string
	New      string
	Severity Severity
}

// FormatResult is the outcome of rewriting a document. Err is non-empty iff
// extraction failed, in which case Out equals the original input verbatim.
type FormatResult struct {
	Out string
	Err string
}

// LintResult is the outcome of diffing a document's rewritten form against
// its original, line by line. Err is non-empty iff extraction failed, in
// which case Lines is empty.
type LintResult struct {
	Raw      string
	Filepath string
	Err      string
	Lines    []LineResult
}

// ToDiff renders a LintResult as a sequence of unified-diff-style hunks, one
// per changed line, each headed by "filepath:line:col".
func (r LintResult) ToDiff() string {
	var b strings.Builder

	for i, line := range r.Lines {
		if i > 0 {
			b.WriteString("\n\n")
		}

		fmt.Fprintf(&b, "%s:%d:%d\n- %s\n+ %s", r.Filepath, line.Line, line.Col, line.Old, line.New)
	}

	return b.String()
}

type jsonLine struct {
	Line     int    `json:"line"`
	Col      int    `json:"col"`
	Old      string `json:"old"`
	New      string `json:"new"`
	Severity int    `json:"severity"`
}

type jsonLint struct {
	Filepath string     `json:"filepath"`
	Raw      string     `json:"raw"`
	Error    string     `json:"error"`
	Lines    []jsonLine `json:"lines"`
}

// ToJSON renders a LintResult as a single-line JSON object with fields
// filepath, raw, error and lines.
func (r LintResult) ToJSON() (string, error) {
	out := jsonLint{
		Filepath: r.Filepath,
		Raw:      r.Raw,
		Error:    r.Err,
		Lines:    make([]jsonLine, len(r.Lines)),
	}

	for i, line := range r.Lines {
		out.Lines[i] = jsonLine{
			Line:     line.Line,
			Col:      line.Col,
			Old:      line.Old,
			New:      line.New,
			Severity: int(line.Severity),
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// batchMessage mirrors a single LintResult's single line entry, flattened
// with its filepath, for BatchJSON's {"count":N,"messages":[...]} envelope.
type batchMessage struct {
	Filepath string `json:"filepath"`
	Line     int    `json:"line"`
	Col      int    `json:"col"`
	Old      string `json:"old"`
	New      string `json:"new"`
	Severity int    `json:"severity"`
}

type batchJSON struct {
	Count    int            `json:"count"`
	Messages []batchMessage `json:"messages"`
}

// BatchJSON renders a collection of LintResults (typically one per file in
// a lint run) as the single-line JSON envelope the CLI emits with
// --format json.
func BatchJSON(results []LintResult) (string, error) {
	batch := batchJSON{}

	for _, r := range results {
		for _, line := range r.Lines {
			batch.Messages = append(batch.Messages, batchMessage{
				Filepath: r.Filepath,
				Line:     line.Line,
				Col:      line.Col,
				Old:      line.Old,
				New:      line.New,
				Severity: int(line.Severity),
			})
		}
	}

	batch.Count = len(batch.Messages)

	b, err := json.Marshal(batch)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
