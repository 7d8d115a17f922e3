package extract

import (
	"sort"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type byteRange struct{ start, end int }

// extractMarkdown splits a Markdown document into Code (the content lines
// of fenced and indented code blocks, inline code spans, and embedded raw
// HTML) and Text (everything else: headings, paragraphs, list items,
// emphasis markers, link/image destinations and all other prose) spans.
// The opening and closing fence lines of a fenced code block are not part
// of its Code span; they fall into the neighbouring Text spans.
//
// Rather than walking goldmark's AST leaf-by-leaf and trying to classify
// every node precisely (link/image destinations, list markers, ATX
// heading hashes and the like all carry their own fiddly byte
// bookkeeping), this collects only the ranges goldmark's AST positively
// identifies as code, then fills every gap between them with a Text span.
// That guarantees the gap-free, in-order cover the extractor contract
// requires regardless of how much Markdown syntax ends up folded into the
// surrounding Text spans.
func extractMarkdown(raw []byte) []Span {
	doc := goldmark.DefaultParser().Parse(text.NewReader(raw))

	var codeRanges []byteRange

	err := gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}

		switch n.Kind() {
		case gast.KindFencedCodeBlock, gast.KindCodeBlock, gast.KindHTMLBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				codeRanges = append(codeRanges, byteRange{seg.Start, seg.Stop})
			}
		case gast.KindCodeSpan, gast.KindRawHTML:
			if segs := segmentsOf(n); segs != nil {
				for i := 0; i < segs.Len(); i++ {
					seg := segs.At(i)
					codeRanges = append(codeRanges, byteRange{seg.Start, seg.Stop})
				}
			}
		}

		return gast.WalkContinue, nil
	})
	if err != nil {
		return []Span{{Kind: Text, Start: 0, End: len(raw), Text: string(raw)}}
	}

	return fillGapsWithText(raw, mergeRanges(codeRanges))
}

// segmentsOf extracts the *text.Segments carried by node kinds whose
// Segments field isn't exposed through the common ast.Node interface.
func segmentsOf(n gast.Node) *text.Segments {
	switch v := n.(type) {
	case *gast.CodeSpan:
		return &v.Segments
	case *gast.RawHTML:
		return &v.Segments
	default:
		return nil
	}
}

func mergeRanges(ranges []byteRange) []byteRange {
	if len(ranges) == 0 {
		return nil
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })

	merged := []byteRange{ranges[0]}

	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.start <= last.end {
			if r.end > last.end {
				last.end = r.end
			}

			continue
		}

		merged = append(merged, r)
	}

	return merged
}

func fillGapsWithText(raw []byte, codeRanges []byteRange) []Span {
	var spans []Span

	pos := 0

	for _, r := range codeRanges {
		if r.start > pos {
			spans = append(spans, Span{Kind: Text, Start: pos, End: r.start, Text: string(raw[pos:r.start])})
		}

		if r.end > r.start {
			spans = append(spans, Span{Kind: Code, Start: r.start, End: r.end, Text: string(raw[r.start:r.end])})
		}

		if r.end > pos {
			pos = r.end
		}
	}

	if pos < len(raw) {
		spans = append(spans, Span{Kind: Text, Start: pos, End: len(raw), Text: string(raw[pos:])})
	}

	return spans
}
