package extract_test

import (
	"testing"

	"github.com/edgard/autocorrect/pkg/autocorrect/extract"
)

func TestExtractCodeLikeGo(t *testing.T) {
	t.Parallel()

	raw := "package main\n\n// 你好world\nfunc f() {\n\ts := \"plain\"\n\t_ = s\n}\n"

	spans, err := extract.Extract(extract.Document{Raw: []byte(raw), Kind: extract.CodeLike, Lang: "go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reconstruct(t, raw, spans)

	var sawComment, sawString bool

	for _, s := range spans {
		if s.Kind == extract.Comment && s.Text == "// 你好world" {
			sawComment = true
		}

		if s.Text == `plain` {
			sawString = true
			if s.Kind != extract.Code {
				t.Errorf("non-CJK string literal kind = %v, want Code", s.Kind)
			}
		}
	}

	if !sawComment {
		t.Error("line comment was not classified as Comment")
	}

	if !sawString {
		t.Error("did not find the string literal span")
	}
}

func TestExtractCodeLikeGoCJKStringLiteral(t *testing.T) {
	t.Parallel()

	raw := `s := "你好world"`

	spans, err := extract.Extract(extract.Document{Raw: []byte(raw), Kind: extract.CodeLike, Lang: "go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reconstruct(t, raw, spans)

	var found, foundQuote bool

	for _, s := range spans {
		if s.Text == `你好world` {
			found = true
			if s.Kind != extract.InlineString {
				t.Errorf("CJK string literal kind = %v, want InlineString", s.Kind)
			}
		}

		if s.Text == `"` {
			foundQuote = true
			if s.Kind != extract.Code {
				t.Errorf("quote delimiter kind = %v, want Code", s.Kind)
			}
		}
	}

	if !found {
		t.Error("did not find the CJK string literal span")
	}

	if !foundQuote {
		t.Error("did not find a quote delimiter span kept separate from the literal")
	}
}

func TestExtractCodeLikeGoRawBacktickString(t *testing.T) {
	t.Parallel()

	raw := "s := `你好\nworld`"

	spans, err := extract.Extract(extract.Document{Raw: []byte(raw), Kind: extract.CodeLike, Lang: "go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reconstruct(t, raw, spans)
}

func TestExtractCodeLikePythonTripleQuoteAndHashComment(t *testing.T) {
	t.Parallel()

	raw := "# 你好 comment\ns = \"\"\"你好\nworld\"\"\"\n"

	spans, err := extract.Extract(extract.Document{Raw: []byte(raw), Kind: extract.CodeLike, Lang: "python"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reconstruct(t, raw, spans)

	if spans[0].Kind != extract.Comment {
		t.Errorf("first span kind = %v, want Comment", spans[0].Kind)
	}
}

func TestExtractCodeLikeRustBlockComment(t *testing.T) {
	t.Parallel()

	raw := "/* 你好 block */\nlet x = 1;"

	spans, err := extract.Extract(extract.Document{Raw: []byte(raw), Kind: extract.CodeLike, Lang: "rust"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reconstruct(t, raw, spans)

	if spans[0].Kind != extract.Comment {
		t.Errorf("first span kind = %v, want Comment", spans[0].Kind)
	}
}

func TestExtractCodeLikeUnknownDialectIsAllCode(t *testing.T) {
	t.Parallel()

	raw := "whatever 你好"

	spans, err := extract.Extract(extract.Document{Raw: []byte(raw), Kind: extract.CodeLike, Lang: "cobol"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reconstruct(t, raw, spans)

	if len(spans) != 1 || spans[0].Kind != extract.Code {
		t.Errorf("expected a single Code span for an unknown dialect, got %+v", spans)
	}
}
