package autocorrect_test

import (
	"strings"
	"testing"

	"github.com/edgard/autocorrect/pkg/autocorrect"
)

func TestFormatForHTML(t *testing.T) {
	t.Parallel()

	in := `<p>你好world</p>`
	want := `<p>你好 world</p>`

	result := autocorrect.FormatFor(in, "html")
	if result.Err != "" {
		t.Fatalf("unexpected error: %s", result.Err)
	}

	if result.Out != want {
		t.Errorf("FormatFor(html) = %q, want %q", result.Out, want)
	}
}

func TestFormatForJSON(t *testing.T) {
	t.Parallel()

	in := `{"title":"你好world","id":1}`
	want := `{"title":"你好 world","id":1}`

	result := autocorrect.FormatFor(in, "json")
	if result.Err != "" {
		t.Fatalf("unexpected error: %s", result.Err)
	}

	if result.Out != want {
		t.Errorf("FormatFor(json) = %q, want %q", result.Out, want)
	}
}

func TestFormatForJSONInvalidReportsError(t *testing.T) {
	t.Parallel()

	in := `{"title": }`

	result := autocorrect.FormatFor(in, "json")
	if result.Err == "" {
		t.Fatal("expected a parse error for invalid JSON")
	}

	if result.Out != in {
		t.Errorf("FormatFor on parse error must return input unchanged, got %q", result.Out)
	}
}

func TestFormatForMarkdownPreservesFencedCode(t *testing.T) {
	t.Parallel()

	in := "你好world\n\n```\n你好world\n```\n"

	result := autocorrect.FormatFor(in, "md")
	if result.Err != "" {
		t.Fatalf("unexpected error: %s", result.Err)
	}

	if !strings.Contains(result.Out, "```\n你好world\n```") {
		t.Errorf("fenced code block was rewritten, got %q", result.Out)
	}

	if !strings.Contains(result.Out, "你好 world") {
		t.Errorf("surrounding prose was not rewritten, got %q", result.Out)
	}
}

func TestFormatForGoRoundTripsPureCode(t *testing.T) {
	t.Parallel()

	in := `package main

// increment adds one to x.
func increment(x int) int {
	return x + 1
}
`

	result := autocorrect.FormatFor(in, "go")
	if result.Err != "" {
		t.Fatalf("unexpected error: %s", result.Err)
	}

	if result.Out != in {
		t.Errorf("FormatFor(go) changed CJK-free source:\n got: %q\nwant: %q", result.Out, in)
	}
}

func TestFormatForGoRewritesCJKInComment(t *testing.T) {
	t.Parallel()

	in := "package main\n\n// 你好world\nfunc f() {}\n"

	result := autocorrect.FormatFor(in, "go")
	if result.Err != "" {
		t.Fatalf("unexpected error: %s", result.Err)
	}

	if !strings.Contains(result.Out, "你好 world") {
		t.Errorf("comment was not rewritten, got %q", result.Out)
	}

	if !strings.Contains(result.Out, "func f() {}") {
		t.Errorf("code was altered, got %q", result.Out)
	}
}

func TestFormatForIgnoreDirectiveSkipsWholeFile(t *testing.T) {
	t.Parallel()

	in := "// autocorrect: false\n你好world"

	result := autocorrect.FormatFor(in, "go")
	if result.Out != in {
		t.Errorf("ignored file was rewritten: %q", result.Out)
	}

	lint := autocorrect.LintFor(in, "ignored.go", "go")
	if len(lint.Lines) != 0 {
		t.Errorf("ignored file produced lint lines: %+v", lint.Lines)
	}
}

func TestFormatForUnknownExtensionPassesThrough(t *testing.T) {
	t.Parallel()

	in := "你好world"

	result := autocorrect.FormatFor(in, "xyz")
	if result.Out != in {
		t.Errorf("unknown extension was rewritten: %q", result.Out)
	}
}
