package search

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/replacium/internal/document"
	"github.com/interpretive-systems/replacium/internal/finder"
)

type fakeSource map[document.FragmentKey]string

func (s fakeSource) FragmentText(key document.FragmentKey) (string, bool) {
	text, ok := s[key]
	return text, ok
}

func testDocs() []*document.Document {
	return []*document.Document{
		{
			Path: "a/main.go",
			Fragments: []document.Fragment{
				{Source: "// the cat sat"},
				{Source: "// cats category cat"},
			},
		},
		{
			Path: "b/util.go",
			Fragments: []document.Fragment{
				{Source: "// no felines here"},
			},
		},
	}
}

func typeQuery(e *Engine, s string) {
	e.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestEngine_RecomputesOnQueryChange(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()

	typeQuery(e, "cat")
	if got := e.MatchCount(); got != 4 {
		t.Fatalf("expected 4 matches for %q, got %d", "cat", got)
	}
	if got := e.CurrentMatchIndex(); got != 1 {
		t.Fatalf("expected cursor reset to first match, got %d", got)
	}

	// narrowing the query recomputes and resets the cursor
	e.Next()
	typeQuery(e, "e")
	if got := e.Query(); got != "cate" {
		t.Fatalf("query = %q", got)
	}
	if got := e.MatchCount(); got != 1 {
		t.Fatalf("expected 1 match for %q, got %d", "cate", got)
	}
	if got := e.CurrentMatchIndex(); got != 1 {
		t.Fatalf("expected cursor reset after query change, got %d", got)
	}
}

func TestEngine_EmptyQueryHasNoMatches(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	if e.MatchCount() != 0 {
		t.Fatalf("expected no matches for empty query")
	}
	if _, ok := e.Current(); ok {
		t.Fatalf("expected no current match")
	}
	if e.CurrentMatchIndex() != 0 {
		t.Fatalf("expected 0 current index with empty list")
	}
}

func TestEngine_ModifierTogglesRecompute(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()
	typeQuery(e, "cat")

	e.ToggleWholeWord()
	if got := e.MatchCount(); got != 2 {
		t.Fatalf("expected 2 whole-word matches, got %d", got)
	}

	e.ToggleWholeWord()
	e.ToggleCaseSensitive()
	if got := e.MatchCount(); got != 4 {
		t.Fatalf("expected 4 case-sensitive matches for lowercase query, got %d", got)
	}
}

func TestEngine_InvalidRegexIsNoMatches(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.ToggleRegex()
	e.Activate()
	typeQuery(e, "(")

	if !e.InvalidPattern() {
		t.Fatalf("expected invalid pattern flag")
	}
	if e.MatchCount() != 0 {
		t.Fatalf("expected zero matches for invalid pattern")
	}

	// back to literal mode the paren is a plain character
	e.ToggleRegex()
	if e.InvalidPattern() {
		t.Fatalf("literal mode should compile")
	}
}

func TestEngine_NavigationWraps(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()
	typeQuery(e, "cat")

	n := e.MatchCount()
	for i := 0; i < n; i++ {
		e.Next()
	}
	if got := e.CurrentMatchIndex(); got != 1 {
		t.Fatalf("expected wrap to first match, got %d", got)
	}

	e.Previous()
	if got := e.CurrentMatchIndex(); got != n {
		t.Fatalf("expected wrap to last match, got %d", got)
	}
}

func TestEngine_CrossDocumentOrder(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()
	typeQuery(e, "he")

	// "the" in a/main.go fragment 0 comes before "here" in b/util.go
	m, ok := e.Current()
	if !ok || m.Path != "a/main.go" || m.Fragment != 0 {
		t.Fatalf("unexpected first match: %+v", m)
	}
	m, _ = e.Next()
	if m.Path != "b/util.go" {
		t.Fatalf("expected second match in b/util.go, got %+v", m)
	}
}

func TestEngine_ReplaceCurrent(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()
	typeQuery(e, "cat")
	e.switchField()
	typeQuery(e, "dog")

	src := fakeSource{
		{Path: "a/main.go", Index: 0}: "// the cat sat",
	}
	edit, ok, err := e.ReplaceCurrent(src)
	if err != nil || !ok {
		t.Fatalf("ReplaceCurrent: ok=%v err=%v", ok, err)
	}
	if edit.NewText != "// the dog sat" {
		t.Fatalf("unexpected edit text: %q", edit.NewText)
	}
}

func TestEngine_ReplaceCurrentMissingFragment(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()
	typeQuery(e, "cat")

	_, ok, err := e.ReplaceCurrent(fakeSource{})
	if ok {
		t.Fatalf("expected no edit for vanished fragment")
	}
	if err == nil {
		t.Fatalf("expected fragment-not-found error")
	}
}

func TestEngine_ReplaceAllMatches(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()
	typeQuery(e, "cat")
	e.switchField()
	typeQuery(e, "dog")

	src := fakeSource{
		{Path: "a/main.go", Index: 0}: "// the cat sat",
		{Path: "a/main.go", Index: 1}: "// cats category cat",
	}
	edits := e.ReplaceAllMatches(src)
	if len(edits) != 2 {
		t.Fatalf("expected 2 edits, got %d", len(edits))
	}
	if edits[0].NewText != "// the dog sat" {
		t.Fatalf("fragment 0: %q", edits[0].NewText)
	}
	if edits[1].NewText != "// dogs dogegory dog" {
		t.Fatalf("fragment 1: %q", edits[1].NewText)
	}
}

func TestEngine_HighlightsFor(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()
	typeQuery(e, "cat")
	e.Next() // cursor on second match, first in fragment 1

	hl := e.HighlightsFor("a/main.go")
	frag0, ok := hl[0]
	if !ok || len(frag0.Spans) != 1 {
		t.Fatalf("fragment 0 highlights: %+v", frag0)
	}
	if frag0.Active != -1 {
		t.Fatalf("fragment 0 should have no active span, got %d", frag0.Active)
	}

	frag1 := hl[1]
	if len(frag1.Spans) != 3 {
		t.Fatalf("fragment 1 should have 3 spans, got %d", len(frag1.Spans))
	}
	if frag1.Active != 0 {
		t.Fatalf("fragment 1 active span should be 0, got %d", frag1.Active)
	}

	if other := e.HighlightsFor("b/util.go"); len(other) != 0 {
		t.Fatalf("no highlights expected for b/util.go, got %+v", other)
	}
}

func TestEngine_MatchesFor(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()
	typeQuery(e, "cat")

	got := e.MatchesFor(document.FragmentKey{Path: "a/main.go", Index: 1})
	if len(got) != 3 {
		t.Fatalf("expected 3 matches in fragment 1, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start <= got[i-1].Start {
			t.Fatalf("matches out of offset order: %+v", got)
		}
	}
	if other := e.MatchesFor(document.FragmentKey{Path: "b/util.go", Index: 0}); len(other) != 0 {
		t.Fatalf("expected no matches, got %+v", other)
	}
}

func TestEngine_MatchCountsByPath(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.Activate()
	typeQuery(e, "cat")

	counts := e.MatchCountsByPath()
	if counts["a/main.go"] != 4 || counts["b/util.go"] != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestDisplayKey(t *testing.T) {
	key := document.FragmentKey{Path: "pkg/sub/store.go", Index: 2}
	if got := DisplayKey(key); got != "store.go#2" {
		t.Fatalf("DisplayKey = %q", got)
	}
}

func TestEngine_SetOptionsFromPrefs(t *testing.T) {
	e := New()
	e.SetDocuments(testDocs())
	e.SetOptions(finder.Options{WholeWord: true})
	e.Activate()
	typeQuery(e, "cat")

	if got := e.MatchCount(); got != 2 {
		t.Fatalf("expected whole-word default from options, got %d", got)
	}
}
