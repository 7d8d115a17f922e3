package extract

import "strings"

// extensionTable maps a lower-cased file extension (without the leading
// dot) to the document kind and, for CodeLike documents, the dialect name
// used to look up its entry in Syntaxes.
var extensionTable = map[string]struct {
	kind DocumentKind
	lang string
}{
	"html": {HTML, ""},
	"htm":  {HTML, ""},

	"yaml": {YAML, ""},
	"yml":  {YAML, ""},

	"json": {JSON, ""},

	"md":       {Markdown, ""},
	"markdown": {Markdown, ""},

	"txt":   {PlainText, ""},
	"text":  {PlainText, ""},
	"plain": {PlainText, ""},

	"rs":   {CodeLike, "rust"},
	"rust": {CodeLike, "rust"},

	"sql": {CodeLike, "sql"},

	"rb":      {CodeLike, "ruby"},
	"cr":      {CodeLike, "ruby"},
	"crystal": {CodeLike, "ruby"},
	"ruby":    {CodeLike, "ruby"},

	"js":         {CodeLike, "javascript"},
	"jsx":        {CodeLike, "javascript"},
	"ts":         {CodeLike, "javascript"},
	"tsx":        {CodeLike, "javascript"},
	"javascript": {CodeLike, "javascript"},
	"typescript": {CodeLike, "javascript"},

	"css":  {CodeLike, "css"},
	"scss": {CodeLike, "css"},
	"sass": {CodeLike, "css"},
	"less": {CodeLike, "css"},

	"go": {CodeLike, "go"},

	"py":     {CodeLike, "python"},
	"python": {CodeLike, "python"},

	"m":           {CodeLike, "objective_c"},
	"h":           {CodeLike, "objective_c"},
	"objective-c": {CodeLike, "objective_c"},
	"objective_c": {CodeLike, "objective_c"},

	"strings": {CodeLike, "strings"},

	"cs":     {CodeLike, "csharp"},
	"csharp": {CodeLike, "csharp"},

	"java": {CodeLike, "java"},

	"swift": {CodeLike, "swift"},

	"kotlin": {CodeLike, "kotlin"},

	"php": {CodeLike, "php"},

	"dart": {CodeLike, "dart"},
}

// Dispatch maps a file extension (with or without a leading dot) to the
// Document it selects. ok is false for unknown extensions, which callers
// must treat as "skip this file".
func Dispatch(raw []byte, ext string) (doc Document, ok bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	entry, found := extensionTable[ext]
	if !found {
		return Document{}, false
	}

	return Document{Raw: raw, Kind: entry.kind, Lang: entry.lang}, true
}
