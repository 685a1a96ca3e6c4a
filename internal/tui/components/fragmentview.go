package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/replacium/internal/document"
	"github.com/interpretive-systems/replacium/internal/theme"
	tuiansi "github.com/interpretive-systems/replacium/internal/tui/ansi"
	"github.com/interpretive-systems/replacium/internal/tui/search"
)

// FragmentView manages the right pane fragment viewer: the selected
// document's comment fragments with search highlights applied.
type FragmentView struct {
	doc         *document.Document
	viewport    viewport.Model
	highlighter *search.Highlighter
	curTheme    theme.Theme
	wrapLines   bool
	content     []string
	fragStart   []int // first content line of each fragment body
}

// NewFragmentView creates a new fragment viewer.
func NewFragmentView(defaultTheme theme.Theme) *FragmentView {
	return &FragmentView{
		curTheme:    defaultTheme,
		highlighter: search.NewHighlighter(),
	}
}

// SetDocument updates the document being shown.
func (v *FragmentView) SetDocument(doc *document.Document) {
	v.doc = doc
}

// Document returns the document being shown.
func (v *FragmentView) Document() *document.Document {
	return v.doc
}

// SetSize updates the viewport dimensions.
func (v *FragmentView) SetSize(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height
}

// GetWrap returns whether long lines wrap.
func (v *FragmentView) GetWrap() bool {
	return v.wrapLines
}

// SetWrap sets line wrapping.
func (v *FragmentView) SetWrap(wrap bool) {
	v.wrapLines = wrap
}

// RenderContent builds the pane content for the current document with
// the given highlight sets and loads it into the viewport. Highlights
// are rebuilt wholesale on every call.
func (v *FragmentView) RenderContent(width int, highlights map[int]search.FragmentHighlight) []string {
	if v.doc == nil {
		v.content = []string{lipgloss.NewStyle().Faint(true).Render("(No document selected)")}
		v.syncViewport()
		return v.content
	}
	if len(v.doc.Fragments) == 0 {
		v.content = []string{lipgloss.NewStyle().Faint(true).Render("(No comments in this file)")}
		v.syncViewport()
		return v.content
	}

	lines := make([]string, 0, 64)
	v.fragStart = make([]int, len(v.doc.Fragments))

	for i, frag := range v.doc.Fragments {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, v.fragmentHeader(i, frag, width))
		v.fragStart[i] = len(lines)

		hl := highlights[i]
		body := v.highlighter.HighlightFragment(frag.Source, hl.Spans, hl.Active)
		for _, line := range body {
			if v.wrapLines {
				lines = append(lines, tuiansi.WrapLine(line, width)...)
			} else {
				lines = append(lines, tuiansi.ClipToWidth(line, width))
			}
		}
	}

	v.content = lines
	v.syncViewport()
	return lines
}

func (v *FragmentView) fragmentHeader(index int, frag document.Fragment, width int) string {
	key := document.FragmentKey{Path: v.doc.Path, Index: index}
	label := fmt.Sprintf("── %s · line %d ", search.DisplayKey(key), frag.Line)
	if pad := width - tuiansi.VisualWidth(label); pad > 0 {
		label += strings.Repeat("─", pad)
	}
	return v.curTheme.HeaderText(tuiansi.ClipToWidth(label, width))
}

func (v *FragmentView) syncViewport() {
	v.viewport.SetContent(strings.Join(v.content, "\n"))
}

// Content returns the cached content lines.
func (v *FragmentView) Content() []string {
	return v.content
}

// View returns the viewport view.
func (v *FragmentView) View() string {
	return v.viewport.View()
}

// Viewport returns the underlying viewport for direct manipulation.
func (v *FragmentView) Viewport() *viewport.Model {
	return &v.viewport
}

// ScrollToFragment centers the viewport on the given line (0-based,
// relative to the fragment body's first line).
func (v *FragmentView) ScrollToFragment(index, lineInFragment int) {
	if index < 0 || index >= len(v.fragStart) {
		return
	}
	target := v.fragStart[index] + lineInFragment
	offset := target - v.viewport.Height/2
	if max := len(v.content) - v.viewport.Height; offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	v.viewport.SetYOffset(offset)
}
