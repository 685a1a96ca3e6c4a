package document

import (
	"path/filepath"
	"strings"
)

// commentSyntax describes the comment markers for one file family.
type commentSyntax struct {
	line      string // line-comment marker, "" when none
	blockOpen string // block-comment open marker, "" when none
	blockEnd  string
	plain     bool // whole file is one fragment
}

var syntaxByExt = map[string]commentSyntax{
	".go":    {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".c":     {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".h":     {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".cpp":   {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".hpp":   {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".java":  {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".js":    {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".jsx":   {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".ts":    {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".tsx":   {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".rs":    {line: "//", blockOpen: "/*", blockEnd: "*/"},
	".css":   {blockOpen: "/*", blockEnd: "*/"},
	".py":    {line: "#"},
	".rb":    {line: "#"},
	".sh":    {line: "#"},
	".bash":  {line: "#"},
	".yaml":  {line: "#"},
	".yml":   {line: "#"},
	".toml":  {line: "#"},
	".sql":   {line: "--"},
	".lua":   {line: "--"},
	".txt":   {plain: true},
	".md":    {plain: true},
	".mdown": {plain: true},
}

// SyntaxForPath reports whether path belongs to a supported file
// family.
func SyntaxForPath(path string) bool {
	_, ok := syntaxByExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ExtractFragments scans raw and returns its comment blocks in file
// order. Runs of consecutive full-line comments coalesce into one
// fragment; a block comment opening at the start of a line (ignoring
// indent) forms one fragment through its closing marker, or to EOF
// when unterminated. Plain-text families yield a single whole-file
// fragment; unknown families yield none.
func ExtractFragments(path, raw string) []Fragment {
	syn, ok := syntaxByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil
	}
	if syn.plain {
		if raw == "" {
			return nil
		}
		return []Fragment{{Source: raw, ByteLo: 0, ByteHi: len(raw), Line: 1}}
	}

	var frags []Fragment
	runLo, runHi, runLine := -1, -1, 0
	flush := func() {
		if runLo >= 0 {
			frags = append(frags, Fragment{
				Source: raw[runLo:runHi],
				ByteLo: runLo,
				ByteHi: runHi,
				Line:   runLine,
			})
			runLo = -1
		}
	}

	i, lineNo := 0, 1
	for i < len(raw) {
		lineEnd := len(raw)
		next := len(raw)
		if nl := strings.IndexByte(raw[i:], '\n'); nl >= 0 {
			lineEnd = i + nl
			next = lineEnd + 1
		}
		text := raw[i:lineEnd]
		trimmed := strings.TrimLeft(text, " \t")
		markerAt := i + len(text) - len(trimmed)

		if syn.blockOpen != "" && strings.HasPrefix(trimmed, syn.blockOpen) {
			flush()
			hi := len(raw)
			if c := strings.Index(raw[markerAt+len(syn.blockOpen):], syn.blockEnd); c >= 0 {
				hi = markerAt + len(syn.blockOpen) + c + len(syn.blockEnd)
			}
			frags = append(frags, Fragment{
				Source: raw[markerAt:hi],
				ByteLo: markerAt,
				ByteHi: hi,
				Line:   lineNo,
			})
			lineNo += strings.Count(raw[i:hi], "\n")
			// resume at the next line after the closing marker
			i = hi
			if nl := strings.IndexByte(raw[i:], '\n'); nl >= 0 {
				i += nl + 1
				lineNo++
			} else {
				i = len(raw)
			}
			continue
		}

		if syn.line != "" && strings.HasPrefix(trimmed, syn.line) {
			if runLo < 0 {
				runLo = markerAt
				runLine = lineNo
			}
			runHi = lineEnd
		} else {
			flush()
		}

		i = next
		lineNo++
	}
	flush()
	return frags
}
