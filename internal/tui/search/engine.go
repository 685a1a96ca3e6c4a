// Package search drives interactive search and replace over a
// document collection and projects the results for rendering.
package search

import (
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/replacium/internal/document"
	"github.com/interpretive-systems/replacium/internal/finder"
)

// Field identifies which overlay input owns keystrokes.
type Field int

const (
	FieldQuery Field = iota
	FieldReplacement
)

// Engine manages interactive search state: the query and replacement
// inputs, the three modifier toggles, and the match list with its
// cursor. Any change to the query, a modifier, or the documents
// recomputes the match list and resets the cursor to the first match.
type Engine struct {
	docs        []*document.Document
	opts        finder.Options
	pattern     finder.Pattern
	patternErr  error
	nav         *finder.Navigator
	input       textinput.Model
	replacement textinput.Model
	field       Field
	active      bool
	highlighter *Highlighter
}

// New creates a new search engine.
func New() *Engine {
	ti := textinput.New()
	ti.Placeholder = "Find in comments"
	ti.Prompt = "/ "
	ti.CharLimit = 0

	ri := textinput.New()
	ri.Placeholder = "Replacement"
	ri.Prompt = "> "
	ri.CharLimit = 0

	return &Engine{
		nav:         finder.NewNavigator(),
		highlighter: NewHighlighter(),
		input:       ti,
		replacement: ri,
	}
}

// Activate opens the search overlay with the query field focused.
func (e *Engine) Activate() {
	e.active = true
	e.field = FieldQuery
	e.input.Focus()
	e.replacement.Blur()
}

// Deactivate closes the overlay. The match list survives so n/N
// navigation keeps working.
func (e *Engine) Deactivate() {
	e.active = false
	e.input.Blur()
	e.replacement.Blur()
}

// IsActive returns whether the overlay is open.
func (e *Engine) IsActive() bool {
	return e.active
}

// SetDocuments installs the collection to search and recomputes.
func (e *Engine) SetDocuments(docs []*document.Document) {
	e.docs = docs
	e.refresh()
}

// SetOptions replaces all three modifiers at once and recomputes.
func (e *Engine) SetOptions(opts finder.Options) {
	e.opts = opts
	e.refresh()
}

// Options returns the current modifiers.
func (e *Engine) Options() finder.Options {
	return e.opts
}

// ToggleCaseSensitive flips the case modifier.
func (e *Engine) ToggleCaseSensitive() {
	e.opts.CaseSensitive = !e.opts.CaseSensitive
	e.refresh()
}

// ToggleWholeWord flips the whole-word modifier.
func (e *Engine) ToggleWholeWord() {
	e.opts.WholeWord = !e.opts.WholeWord
	e.refresh()
}

// ToggleRegex flips the regex modifier.
func (e *Engine) ToggleRegex() {
	e.opts.Regex = !e.opts.Regex
	e.refresh()
}

// Query returns the current query text.
func (e *Engine) Query() string {
	return e.input.Value()
}

// Replacement returns the current replacement text.
func (e *Engine) Replacement() string {
	return e.replacement.Value()
}

// HandleKey processes key input while the overlay is open.
func (e *Engine) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		e.Deactivate()
		return true, nil
	case "tab":
		e.switchField()
		return true, nil
	case "alt+c":
		e.ToggleCaseSensitive()
		return true, nil
	case "alt+w":
		e.ToggleWholeWord()
		return true, nil
	case "alt+r":
		e.ToggleRegex()
		return true, nil
	case "enter", "down":
		e.Next()
		return true, nil
	case "up":
		e.Previous()
		return true, nil
	}

	var cmd tea.Cmd
	if e.field == FieldQuery {
		e.input, cmd = e.input.Update(msg)
		e.refresh()
	} else {
		e.replacement, cmd = e.replacement.Update(msg)
	}
	return true, cmd
}

func (e *Engine) switchField() {
	if e.field == FieldQuery {
		e.field = FieldReplacement
		e.input.Blur()
		e.replacement.Focus()
	} else {
		e.field = FieldQuery
		e.replacement.Blur()
		e.input.Focus()
	}
}

// refresh recompiles the pattern and recomputes the match list. An
// invalid pattern degrades to zero matches; the error is kept for the
// status line.
func (e *Engine) refresh() {
	e.pattern, e.patternErr = finder.Compile(e.input.Value(), e.opts)
	e.nav.Set(finder.FindAll(e.docs, e.pattern))
}

// InvalidPattern reports whether the current query failed to compile.
func (e *Engine) InvalidPattern() bool {
	return e.patternErr != nil
}

// Current returns the match under the cursor.
func (e *Engine) Current() (finder.Match, bool) {
	return e.nav.Current()
}

// Next advances to the next match, wrapping after the last.
func (e *Engine) Next() (finder.Match, bool) {
	return e.nav.Next()
}

// Previous moves to the previous match, wrapping before the first.
func (e *Engine) Previous() (finder.Match, bool) {
	return e.nav.Previous()
}

// Matches returns the full ordered match list.
func (e *Engine) Matches() []finder.Match {
	return e.nav.Matches()
}

// MatchCount returns the number of matches.
func (e *Engine) MatchCount() int {
	return e.nav.Len()
}

// CurrentMatchIndex returns the 1-based cursor position, 0 when there
// are no matches.
func (e *Engine) CurrentMatchIndex() int {
	if e.nav.Len() == 0 {
		return 0
	}
	return e.nav.Cursor() + 1
}

// MatchesFor returns the matches inside one fragment, in offset
// order.
func (e *Engine) MatchesFor(key document.FragmentKey) []finder.Match {
	var out []finder.Match
	for _, m := range e.nav.Matches() {
		if m.Path == key.Path && m.Fragment == key.Index {
			out = append(out, m)
		}
	}
	return out
}

// MatchCountsByPath returns per-document match totals for the left
// pane.
func (e *Engine) MatchCountsByPath() map[string]int {
	counts := make(map[string]int)
	for _, m := range e.nav.Matches() {
		counts[m.Path]++
	}
	return counts
}

// ReplaceCurrent computes the edit for the match under the cursor.
// The bool is false when there is no current match.
func (e *Engine) ReplaceCurrent(src finder.Source) (finder.Edit, bool, error) {
	m, ok := e.nav.Current()
	if !ok {
		return finder.Edit{}, false, nil
	}
	edit, err := finder.ReplaceOne(src, m, e.replacement.Value())
	if err != nil {
		return finder.Edit{}, false, err
	}
	return edit, true, nil
}

// ReplaceAllMatches computes edits for every match.
func (e *Engine) ReplaceAllMatches(src finder.Source) []finder.Edit {
	return finder.ReplaceAll(src, e.nav.Matches(), e.replacement.Value())
}

// FragmentHighlight is the highlight set for one fragment: every
// match span plus which of them (if any) is the active match.
type FragmentHighlight struct {
	Spans  []Span
	Active int // index into Spans, -1 when the cursor is elsewhere
}

// HighlightsFor returns the highlight sets for every fragment of the
// document at path, keyed by fragment index. Both sets are rebuilt
// from scratch on every call; nothing is patched incrementally.
func (e *Engine) HighlightsFor(path string) map[int]FragmentHighlight {
	out := make(map[int]FragmentHighlight)
	cur := e.nav.Cursor()
	for i, m := range e.nav.Matches() {
		if m.Path != path {
			continue
		}
		hl, ok := out[m.Fragment]
		if !ok {
			hl.Active = -1
		}
		if i == cur {
			hl.Active = len(hl.Spans)
		}
		hl.Spans = append(hl.Spans, Span{Start: m.Start, End: m.End})
		out[m.Fragment] = hl
	}
	return out
}

// DisplayKey derives the pane header key for a fragment, e.g.
// "store.go#2". Display only; fragment identity stays (path, index).
func DisplayKey(key document.FragmentKey) string {
	return filepath.Base(key.Path) + "#" + strconv.Itoa(key.Index)
}

// InputView returns the query input view.
func (e *Engine) InputView() string {
	return e.input.View()
}

// ReplacementView returns the replacement input view.
func (e *Engine) ReplacementView() string {
	return e.replacement.View()
}
