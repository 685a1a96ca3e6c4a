package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/replacium/internal/prefs"
)

// Program is the Bubble Tea model: state plus layout plus key
// handling.
type Program struct {
	state      *State
	layout     *Layout
	keyHandler *KeyHandler
	paths      []string
}

// Run instantiates and runs the Bubble Tea program over the files at
// root. With no explicit paths every supported file under root is
// loaded.
func Run(root string, paths []string) error {
	m := Program{
		state:      NewState(root),
		layout:     NewLayout(),
		keyHandler: NewKeyHandler(),
		paths:      paths,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (m Program) Init() tea.Cmd {
	return loadDocuments(m.state.Root, m.paths)
}

func (m Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	st := m.state

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		st.Width = msg.Width
		st.Height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		leftW := st.Prefs.LeftWidth
		if leftW == 0 {
			leftW = msg.Width / 3
		}
		m.layout.SetLeftWidth(leftW)
		m.recalcViewport()
		return m, nil

	case documentsMsg:
		if msg.err != nil {
			st.StatusBar.SetNotice("load failed: " + msg.err.Error())
			return m, nil
		}
		st.Store = msg.store
		st.DocList.SetDocuments(st.Store.Documents())
		st.SearchEngine.SetDocuments(st.Store.Documents())
		m.syncMatchState()
		m.recalcViewport()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			st.StatusBar.SetNotice("save failed: " + msg.err.Error())
		} else if msg.saved > 0 {
			st.StatusBar.SetNotice(fmt.Sprintf("saved %d file(s)", msg.saved))
		}
		m.updateDirtyCount()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Program) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.state

	if st.ShowHelp {
		switch msg.String() {
		case "ctrl+c", "q":
			m.persistPrefs()
			return m, tea.Quit
		case "?", "esc":
			st.ShowHelp = false
			m.recalcViewport()
		}
		return m, nil
	}

	if st.SearchEngine.IsActive() {
		switch msg.String() {
		case "ctrl+c":
			m.persistPrefs()
			return m, tea.Quit
		case "ctrl+r":
			return m.replaceCurrent()
		case "ctrl+b":
			return m.replaceAll()
		}
		handled, cmd := st.SearchEngine.HandleKey(msg)
		if handled {
			m.syncMatchState()
			m.recalcViewport()
		}
		return m, cmd
	}

	action, count := m.keyHandler.Handle(msg)
	st.StatusBar.SetKeyBuffer(m.keyHandler.KeyBuffer())

	switch action {
	case ActionQuit:
		m.persistPrefs()
		return m, tea.Quit

	case ActionToggleHelp:
		st.ShowHelp = true
		m.recalcViewport()

	case ActionOpenSearch:
		st.SearchEngine.Activate()
		m.recalcViewport()

	case ActionSearchNext:
		for i := 0; i < count; i++ {
			st.SearchEngine.Next()
		}
		m.syncMatchState()
		m.recalcViewport()

	case ActionSearchPrevious:
		for i := 0; i < count; i++ {
			st.SearchEngine.Previous()
		}
		m.syncMatchState()
		m.recalcViewport()

	case ActionReplaceCurrent:
		return m.replaceCurrent()

	case ActionReplaceAll:
		return m.replaceAll()

	case ActionSave:
		return m, saveDocuments(st.Store)

	case ActionReload:
		return m, loadDocuments(st.Root, m.paths)

	case ActionToggleWrap:
		st.FragmentView.SetWrap(!st.FragmentView.GetWrap())
		m.recalcViewport()

	case ActionMoveDown:
		if st.DocList.MoveSelection(count) {
			st.FragmentView.Viewport().GotoTop()
			m.recalcViewport()
		}

	case ActionMoveUp:
		if st.DocList.MoveSelection(-count) {
			st.FragmentView.Viewport().GotoTop()
			m.recalcViewport()
		}

	case ActionGoToTop:
		if st.DocList.GoToTop() {
			st.FragmentView.Viewport().GotoTop()
			m.recalcViewport()
		}

	case ActionGoToBottom:
		if st.DocList.GoToBottom() {
			st.FragmentView.Viewport().GotoTop()
			m.recalcViewport()
		}

	case ActionPageDown:
		st.FragmentView.Viewport().ViewDown()
	case ActionPageUp:
		st.FragmentView.Viewport().ViewUp()
	case ActionHalfPageDown:
		st.FragmentView.Viewport().HalfViewDown()
	case ActionHalfPageUp:
		st.FragmentView.Viewport().HalfViewUp()
	case ActionLineDown:
		st.FragmentView.Viewport().LineDown(count)
	case ActionLineUp:
		st.FragmentView.Viewport().LineUp(count)
	case ActionScrollHome:
		st.FragmentView.Viewport().GotoTop()

	case ActionAdjustLeftNarrower:
		m.layout.AdjustLeftWidth(-2)
		m.recalcViewport()
	case ActionAdjustLeftWider:
		m.layout.AdjustLeftWidth(2)
		m.recalcViewport()
	}

	return m, nil
}

// replaceCurrent applies the replacement to the match under the
// cursor and recomputes the match list against the edited text.
func (m Program) replaceCurrent() (tea.Model, tea.Cmd) {
	st := m.state
	if st.Store == nil {
		return m, nil
	}

	edit, ok, err := st.SearchEngine.ReplaceCurrent(st.Store)
	if err != nil {
		// fragment vanished between scan and replace; drop the stale
		// match list and carry on
		st.StatusBar.SetNotice("replace skipped: " + err.Error())
		m.refreshMatches()
		m.recalcViewport()
		return m, nil
	}
	if !ok {
		return m, nil
	}

	if err := st.Store.UpdateFragment(edit.Key, edit.NewText); err != nil {
		st.StatusBar.SetNotice("update failed: " + err.Error())
		return m, nil
	}
	st.StatusBar.SetNotice("replaced 1 occurrence")
	m.refreshMatches()
	m.recalcViewport()
	return m, nil
}

// replaceAll applies the replacement to every match and recomputes.
func (m Program) replaceAll() (tea.Model, tea.Cmd) {
	st := m.state
	if st.Store == nil {
		return m, nil
	}

	total := st.SearchEngine.MatchCount()
	edits := st.SearchEngine.ReplaceAllMatches(st.Store)
	applied := 0
	for _, edit := range edits {
		if err := st.Store.UpdateFragment(edit.Key, edit.NewText); err != nil {
			st.StatusBar.SetNotice("update failed: " + err.Error())
			continue
		}
		applied++
	}
	st.StatusBar.SetNotice(fmt.Sprintf("replaced %d occurrence(s) in %d fragment(s)", total, applied))
	m.refreshMatches()
	m.recalcViewport()
	return m, nil
}

// refreshMatches recomputes the match list against the current
// document text and resets the cursor.
func (m Program) refreshMatches() {
	st := m.state
	if st.Store != nil {
		st.SearchEngine.SetDocuments(st.Store.Documents())
	}
	m.syncMatchState()
}

// syncMatchState follows the current match with the document
// selection and refreshes the left pane annotations.
func (m Program) syncMatchState() {
	st := m.state
	st.DocList.SetMatchCounts(st.SearchEngine.MatchCountsByPath())
	m.updateDirtyCount()
	if cur, ok := st.SearchEngine.Current(); ok {
		st.DocList.SelectPath(cur.Path)
	}
}

// persistPrefs stores the current modifiers and pane width as the
// root's defaults. Best-effort; quitting proceeds regardless.
func (m Program) persistPrefs() {
	st := m.state
	opts := st.SearchEngine.Options()
	st.Prefs.CaseSensitive = opts.CaseSensitive
	st.Prefs.WholeWord = opts.WholeWord
	st.Prefs.Regex = opts.Regex
	st.Prefs.LeftWidth = m.layout.LeftWidth()
	_ = prefs.Save(st.Root, st.Prefs)
}

func (m Program) updateDirtyCount() {
	if m.state.Store != nil {
		m.state.StatusBar.SetDirtyCount(len(m.state.Store.Dirty()))
	}
}

// recalcViewport rebuilds the right pane content and scrolls the
// active match into view.
func (m Program) recalcViewport() {
	st := m.state
	if st.Width == 0 || st.Height == 0 {
		return
	}

	overlayH := 0
	if st.ShowHelp {
		overlayH += len(m.helpOverlayLines(st.Width))
	}
	if st.SearchEngine.IsActive() {
		overlayH += len(st.SearchEngine.RenderOverlay(st.Width, st.Theme.DividerColor))
	}
	contentHeight := m.layout.ContentHeight(overlayH)
	rightW := m.layout.RightWidth()

	st.FragmentView.SetSize(rightW, contentHeight)
	doc := st.DocList.SelectedDocument()
	st.FragmentView.SetDocument(doc)

	if doc != nil {
		st.FragmentView.RenderContent(rightW, st.SearchEngine.HighlightsFor(doc.Path))
	} else {
		st.FragmentView.RenderContent(rightW, nil)
	}

	cur, ok := st.SearchEngine.Current()
	if !ok || doc == nil || cur.Path != doc.Path || st.Store == nil {
		return
	}
	if text, found := st.Store.FragmentText(cur.Key()); found && cur.Start <= len(text) {
		line := strings.Count(text[:cur.Start], "\n")
		st.FragmentView.ScrollToFragment(cur.Fragment, line)
	}
}

func (m Program) View() string {
	st := m.state
	if st.Width == 0 || st.Height == 0 {
		return "Loading…"
	}

	var overlay []string
	if st.ShowHelp {
		overlay = append(overlay, m.helpOverlayLines(st.Width)...)
	}
	if st.SearchEngine.IsActive() {
		overlay = append(overlay, st.SearchEngine.RenderOverlay(st.Width, st.Theme.DividerColor)...)
	}

	contentHeight := m.layout.ContentHeight(len(overlay))
	leftLines := st.DocList.Render(contentHeight)
	rightLines := strings.Split(st.FragmentView.View(), "\n")
	if len(rightLines) > contentHeight {
		rightLines = rightLines[:contentHeight]
	}

	return m.layout.RenderFrame(
		m.topLeftTitle(),
		m.topRightTitle(),
		leftLines,
		rightLines,
		overlay,
		st.StatusBar.Render(st.Width),
		st.Theme,
	)
}

func (m Program) topLeftTitle() string {
	doc := m.state.DocList.SelectedDocument()
	if doc == nil {
		return "Comments | (no documents)"
	}
	title := "Comments | " + doc.Path
	if doc.Dirty() {
		title += " " + m.state.Theme.DirtyText("*")
	}
	return title
}

func (m Program) topRightTitle() string {
	eng := m.state.SearchEngine
	if eng.Query() == "" {
		return lipgloss.NewStyle().Faint(true).Render("/: search")
	}
	if eng.MatchCount() == 0 {
		return "0 matches"
	}
	return fmt.Sprintf("match %d/%d", eng.CurrentMatchIndex(), eng.MatchCount())
}

// helpOverlayLines returns the bottom help overlay lines.
func (m Program) helpOverlayLines(width int) []string {
	title := lipgloss.NewStyle().Bold(true).Render("Help (press '?' or Esc to close)")
	keys := []string{
		"j/k or arrows   Move document selection",
		"/               Open search (tab: replacement field)",
		"alt+c/w/r       Toggle case / whole word / regex",
		"n/N             Next / previous match",
		"ctrl+r, ctrl+b  Replace current / all",
		"s               Save edited files",
		"R               Reload from disk",
		"w               Toggle wrap",
		"</>             Adjust left pane width",
		"q               Quit",
	}
	lines := make([]string, 0, 2+len(keys))
	lines = append(lines, strings.Repeat("─", width))
	lines = append(lines, title)
	lines = append(lines, keys...)
	return lines
}
