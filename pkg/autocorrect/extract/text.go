package extract

// extractText treats the entire document as a single prose span: plain
// text has no syntax to preserve.
func extractText(raw []byte) []Span {
	if len(raw) == 0 {
		return nil
	}

	return []Span{{Kind: Text, Start: 0, End: len(raw), Text: string(raw)}}
}
