package extract_test

import (
	"testing"

	"github.com/edgard/autocorrect/pkg/autocorrect/extract"
)

func TestExtractYAMLKeyStaysCodeValueBecomesInlineString(t *testing.T) {
	t.Parallel()

	raw := "title: 你好world\ncount: 1\n"

	spans, err := extract.Extract(extract.Document{Raw: []byte(raw), Kind: extract.YAML})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reconstruct(t, raw, spans)

	var foundValue bool

	for _, s := range spans {
		if s.Text == "你好world" {
			foundValue = true
			if s.Kind != extract.InlineString {
				t.Errorf("CJK scalar span kind = %v, want InlineString", s.Kind)
			}
		}

		if s.Text == "title:" && s.Kind != extract.Code {
			t.Errorf("key span kind = %v, want Code", s.Kind)
		}
	}

	if !foundValue {
		t.Error("did not find the CJK value span")
	}
}

func TestExtractYAMLCommentLine(t *testing.T) {
	t.Parallel()

	raw := "# 你好 comment\nkey: value\n"

	spans, err := extract.Extract(extract.Document{Raw: []byte(raw), Kind: extract.YAML})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reconstruct(t, raw, spans)

	if spans[0].Kind != extract.Comment {
		t.Errorf("first span kind = %v, want Comment", spans[0].Kind)
	}
}

func TestExtractYAMLInvalidReturnsError(t *testing.T) {
	t.Parallel()

	raw := "key: [unterminated\n"

	if _, err := extract.Extract(extract.Document{Raw: []byte(raw), Kind: extract.YAML}); err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
}
