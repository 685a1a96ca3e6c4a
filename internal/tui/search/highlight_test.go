package search

import (
	"strings"
	"testing"

	"github.com/interpretive-systems/replacium/internal/tui/ansi"
)

func TestHighlightFragment_NoSpans(t *testing.T) {
	h := NewHighlighter()
	lines := h.HighlightFragment("// one\n// two", nil, -1)
	if len(lines) != 2 || lines[0] != "// one" || lines[1] != "// two" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestHighlightFragment_PaintsSpans(t *testing.T) {
	h := NewHighlighter()
	text := "the cat sat on the cat"
	spans := []Span{{Start: 4, End: 7}, {Start: 19, End: 22}}

	lines := h.HighlightFragment(text, spans, -1)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if got := ansi.Strip(lines[0]); got != text {
		t.Fatalf("stripped text changed: %q", got)
	}
	if strings.Count(lines[0], matchStartSeq) != 2 {
		t.Fatalf("expected 2 passive highlights: %q", lines[0])
	}
	if strings.Contains(lines[0], currentMatchStartSeq) {
		t.Fatalf("no active highlight expected: %q", lines[0])
	}
}

func TestHighlightFragment_ActiveSpanColor(t *testing.T) {
	h := NewHighlighter()
	text := "cat cat"
	spans := []Span{{Start: 0, End: 3}, {Start: 4, End: 7}}

	line := h.HighlightFragment(text, spans, 1)[0]
	if strings.Count(line, matchStartSeq) != 1 {
		t.Fatalf("expected 1 passive highlight: %q", line)
	}
	if strings.Count(line, currentMatchStartSeq) != 1 {
		t.Fatalf("expected 1 active highlight: %q", line)
	}
	// active must come second
	if strings.Index(line, currentMatchStartSeq) < strings.Index(line, matchStartSeq) {
		t.Fatalf("active highlight out of order: %q", line)
	}
}

func TestHighlightFragment_SpanAcrossNewline(t *testing.T) {
	h := NewHighlighter()
	text := "ab\ncd"
	spans := []Span{{Start: 1, End: 4}} // "b\nc"

	lines := h.HighlightFragment(text, spans, 0)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// each line is balanced: opened and closed within itself
	for i, line := range lines {
		if strings.Count(line, currentMatchStartSeq) != 1 {
			t.Fatalf("line %d should reopen the highlight: %q", i, line)
		}
		if !strings.HasSuffix(line, matchEndSeq) && !strings.HasSuffix(line, "d") {
			t.Fatalf("line %d not closed: %q", i, line)
		}
	}
	if got := ansi.Strip(strings.Join(lines, "\n")); got != text {
		t.Fatalf("stripped text changed: %q", got)
	}
}

func TestHighlightFragment_UTF8Preserved(t *testing.T) {
	h := NewHighlighter()
	text := "héllo wörld"
	spans := []Span{{Start: 0, End: len("héllo")}}

	lines := h.HighlightFragment(text, spans, -1)
	if got := ansi.Strip(lines[0]); got != text {
		t.Fatalf("stripped text changed: %q", got)
	}
}
