package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/replacium/internal/document"
	"github.com/interpretive-systems/replacium/internal/prefs"
)

func baseModelForTest(t *testing.T) Program {
	t.Helper()
	root := t.TempDir()
	writeTestFile(t, root, "a.go", "// the cat sat\npackage a\n")
	writeTestFile(t, root, "b.py", "# cat again\nx = 1\n")

	store, err := document.Load(root, nil)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	st := NewState(root)
	st.Width = 80
	st.Height = 16
	st.Store = store
	st.DocList.SetDocuments(store.Documents())
	st.SearchEngine.SetDocuments(store.Documents())

	m := Program{
		state:      st,
		layout:     NewLayout(),
		keyHandler: NewKeyHandler(),
	}
	m.layout.SetSize(80, 16)
	m.layout.SetLeftWidth(24)
	m.recalcViewport()
	return m
}

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, rel), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Program, msgs ...tea.Msg) Program {
	t.Helper()
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.(Program)
}

func TestView_Render(t *testing.T) {
	m := baseModelForTest(t)

	out := m.View()
	plain := ansi.Strip(out)

	// Snapshot-like assertions
	if !strings.HasPrefix(plain, "Comments | a.go") {
		t.Fatalf("unexpected header: %q", strings.SplitN(plain, "\n", 2)[0])
	}
	if !strings.Contains(plain, "│") {
		t.Fatalf("expected vertical divider in view")
	}
	if !strings.Contains(plain, "b.py") {
		t.Fatalf("expected document list entry, got: %q", plain)
	}
	if !strings.Contains(plain, "// the cat sat") {
		t.Fatalf("expected fragment text in right pane, got: %q", plain)
	}
	if !strings.Contains(plain, "a.go#0") {
		t.Fatalf("expected fragment header, got: %q", plain)
	}
}

func TestSearch_OverlayAndCounts(t *testing.T) {
	m := baseModelForTest(t)

	m = update(t, m, keyMsg("/"), keyMsg("cat"))
	out := ansi.Strip(m.View())

	if !strings.Contains(out, "Match 1 of 2") {
		t.Fatalf("expected match status, got: %q", out)
	}
	if !strings.Contains(out, "match 1/2") {
		t.Fatalf("expected top bar summary, got: %q", out)
	}
	// left pane shows the per-document count
	if !strings.Contains(out, "1    a.go") {
		t.Fatalf("expected doc list match count, got: %q", out)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	m := baseModelForTest(t)

	m = update(t, m, keyMsg("/"), keyMsg("zebra"))
	out := ansi.Strip(m.View())

	if !strings.Contains(out, "No matches") {
		t.Fatalf("expected no-match status, got: %q", out)
	}
}

func TestSearch_FollowsMatchAcrossDocuments(t *testing.T) {
	m := baseModelForTest(t)

	m = update(t, m, keyMsg("/"), keyMsg("cat"))
	if doc := m.state.DocList.SelectedDocument(); doc == nil || doc.Path != "a.go" {
		t.Fatalf("expected selection on a.go, got %+v", doc)
	}

	// advance to the match in b.py; selection follows
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if doc := m.state.DocList.SelectedDocument(); doc == nil || doc.Path != "b.py" {
		t.Fatalf("expected selection to follow match into b.py, got %+v", doc)
	}
}

func TestReplaceAll_WritesThroughStore(t *testing.T) {
	m := baseModelForTest(t)

	m = update(t, m,
		keyMsg("/"),
		keyMsg("cat"),
		keyMsg("tab"),
		keyMsg("dog"),
		keyMsg("ctrl+b"),
	)

	text, ok := m.state.Store.FragmentText(document.FragmentKey{Path: "a.go", Index: 0})
	if !ok || text != "// the dog sat" {
		t.Fatalf("expected replacement in a.go fragment, got %q", text)
	}
	text, ok = m.state.Store.FragmentText(document.FragmentKey{Path: "b.py", Index: 0})
	if !ok || text != "# dog again" {
		t.Fatalf("expected replacement in b.py fragment, got %q", text)
	}

	// match list was recomputed against the edited text
	if n := m.state.SearchEngine.MatchCount(); n != 0 {
		t.Fatalf("expected 0 matches after replace all, got %d", n)
	}
	if got := m.state.Store.Dirty(); len(got) != 2 {
		t.Fatalf("expected 2 dirty documents, got %v", got)
	}
}

func TestReplaceCurrent_OnlyTouchesCursorMatch(t *testing.T) {
	m := baseModelForTest(t)

	m = update(t, m,
		keyMsg("/"),
		keyMsg("cat"),
		keyMsg("tab"),
		keyMsg("dog"),
		keyMsg("ctrl+r"),
	)

	text, _ := m.state.Store.FragmentText(document.FragmentKey{Path: "a.go", Index: 0})
	if text != "// the dog sat" {
		t.Fatalf("expected first match replaced, got %q", text)
	}
	text, _ = m.state.Store.FragmentText(document.FragmentKey{Path: "b.py", Index: 0})
	if text != "# cat again" {
		t.Fatalf("expected second match untouched, got %q", text)
	}
	if n := m.state.SearchEngine.MatchCount(); n != 1 {
		t.Fatalf("expected 1 remaining match, got %d", n)
	}
}

func TestQuit_PersistsPrefs(t *testing.T) {
	m := baseModelForTest(t)
	m.state.SearchEngine.ToggleWholeWord()

	m = update(t, m, keyMsg("q"))

	p := prefs.Load(m.state.Root)
	if !p.WholeWord {
		t.Fatalf("expected whole-word default persisted, got %+v", p)
	}
	if p.LeftWidth != 24 {
		t.Fatalf("expected pane width persisted, got %d", p.LeftWidth)
	}
}

func TestHelpOverlayToggle(t *testing.T) {
	m := baseModelForTest(t)

	m = update(t, m, keyMsg("?"))
	if !m.state.ShowHelp {
		t.Fatalf("expected help to open")
	}
	if out := ansi.Strip(m.View()); !strings.Contains(out, "Replace current / all") {
		t.Fatalf("expected help text, got: %q", out)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state.ShowHelp {
		t.Fatalf("expected help to close")
	}
}
