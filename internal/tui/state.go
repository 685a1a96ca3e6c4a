package tui

import (
	"github.com/interpretive-systems/replacium/internal/document"
	"github.com/interpretive-systems/replacium/internal/finder"
	"github.com/interpretive-systems/replacium/internal/prefs"
	"github.com/interpretive-systems/replacium/internal/theme"
	"github.com/interpretive-systems/replacium/internal/tui/components"
	"github.com/interpretive-systems/replacium/internal/tui/search"
)

// State holds all application state.
type State struct {
	// Corpus
	Root  string
	Store *document.Store

	// UI State
	Width    int
	Height   int
	ShowHelp bool

	// Components
	DocList      *components.DocList
	FragmentView *components.FragmentView
	StatusBar    *components.StatusBar
	SearchEngine *search.Engine

	// Theme and prefs
	Theme theme.Theme
	Prefs prefs.Prefs
}

// NewState creates initial application state for the given root.
func NewState(root string) *State {
	curTheme := theme.LoadThemeFromRoot(root)
	p := prefs.Load(root)

	st := &State{
		Root:         root,
		Theme:        curTheme,
		Prefs:        p,
		DocList:      components.NewDocList(),
		FragmentView: components.NewFragmentView(curTheme),
		StatusBar:    components.NewStatusBar(),
		SearchEngine: search.New(),
	}
	st.SearchEngine.SetOptions(finder.Options{
		Regex:         p.Regex,
		CaseSensitive: p.CaseSensitive,
		WholeWord:     p.WholeWord,
	})
	st.StatusBar.SetRoot(root)
	return st
}
