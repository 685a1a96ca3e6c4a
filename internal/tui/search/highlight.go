package search

import "strings"

const (
	// Passive match: black on bright white
	matchStartSeq = "\x1b[30;107m"
	// Active match: black on yellow
	currentMatchStartSeq = "\x1b[30;43m"
	// Reset all styles
	matchEndSeq = "\x1b[0m"
)

// Span is a half-open byte range within a fragment's text.
type Span struct {
	Start int
	End   int
}

// Highlighter paints match spans onto fragment text.
type Highlighter struct{}

// NewHighlighter creates a new highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// HighlightFragment renders the fragment text as lines with every
// span highlighted; the span at index active gets the active-match
// color. Spans must be sorted and non-overlapping (scan order). A
// span crossing a newline is closed at the line break and reopened on
// the next line so each output line carries balanced sequences.
func (h *Highlighter) HighlightFragment(text string, spans []Span, active int) []string {
	if len(spans) == 0 {
		return strings.Split(text, "\n")
	}

	seq := func(i int) string {
		if i == active {
			return currentMatchStartSeq
		}
		return matchStartSeq
	}

	var lines []string
	var b strings.Builder
	idx := 0
	inMatch := false

	for pos := 0; pos < len(text); pos++ {
		for idx < len(spans) && pos >= spans[idx].End {
			if inMatch {
				b.WriteString(matchEndSeq)
				inMatch = false
			}
			idx++
		}
		if !inMatch && idx < len(spans) && pos >= spans[idx].Start && pos < spans[idx].End {
			b.WriteString(seq(idx))
			inMatch = true
		}

		if text[pos] == '\n' {
			if inMatch {
				b.WriteString(matchEndSeq)
			}
			lines = append(lines, b.String())
			b.Reset()
			if inMatch {
				b.WriteString(seq(idx))
			}
			continue
		}
		b.WriteByte(text[pos])
	}

	if inMatch {
		b.WriteString(matchEndSeq)
	}
	lines = append(lines, b.String())
	return lines
}
