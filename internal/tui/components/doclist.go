package components

import (
	"fmt"
	"strconv"

	"github.com/interpretive-systems/replacium/internal/document"
)

// DocList manages the left pane document list.
type DocList struct {
	docs     []*document.Document
	counts   map[string]int
	selected int
	offset   int
}

// NewDocList creates a new document list.
func NewDocList() *DocList {
	return &DocList{}
}

// SetDocuments updates the document list.
func (l *DocList) SetDocuments(docs []*document.Document) {
	l.docs = docs
	if l.selected >= len(docs) {
		l.selected = len(docs) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// SetMatchCounts updates the per-document match totals.
func (l *DocList) SetMatchCounts(counts map[string]int) {
	l.counts = counts
}

// Documents returns the current document list.
func (l *DocList) Documents() []*document.Document {
	return l.docs
}

// Selected returns the currently selected index.
func (l *DocList) Selected() int {
	return l.selected
}

// SelectedDocument returns the currently selected document.
func (l *DocList) SelectedDocument() *document.Document {
	if len(l.docs) == 0 || l.selected < 0 || l.selected >= len(l.docs) {
		return nil
	}
	return l.docs[l.selected]
}

// SelectPath moves the selection to the document at path. Returns
// whether the selection changed.
func (l *DocList) SelectPath(path string) bool {
	for i, doc := range l.docs {
		if doc.Path == path {
			changed := i != l.selected
			l.selected = i
			return changed
		}
	}
	return false
}

// MoveSelection moves the selection by delta, clamped to the list.
func (l *DocList) MoveSelection(delta int) bool {
	if len(l.docs) == 0 {
		return false
	}

	newSel := l.selected + delta
	if newSel < 0 {
		newSel = 0
	}
	if newSel >= len(l.docs) {
		newSel = len(l.docs) - 1
	}

	changed := newSel != l.selected
	l.selected = newSel
	return changed
}

// GoToTop moves selection to the first document.
func (l *DocList) GoToTop() bool {
	if len(l.docs) == 0 || l.selected == 0 {
		return false
	}
	l.selected = 0
	return true
}

// GoToBottom moves selection to the last document.
func (l *DocList) GoToBottom() bool {
	if len(l.docs) == 0 {
		return false
	}
	last := len(l.docs) - 1
	if l.selected == last {
		return false
	}
	l.selected = last
	return true
}

// EnsureVisible keeps the selected item inside the visible window.
func (l *DocList) EnsureVisible(visibleCount int) {
	if len(l.docs) == 0 || visibleCount <= 0 {
		return
	}

	if l.offset < 0 {
		l.offset = 0
	}

	maxStart := len(l.docs) - visibleCount
	if maxStart < 0 {
		maxStart = 0
	}
	if l.offset > maxStart {
		l.offset = maxStart
	}

	if l.selected < l.offset {
		l.offset = l.selected
	} else if l.selected >= l.offset+visibleCount {
		l.offset = l.selected - visibleCount + 1
		if l.offset < 0 {
			l.offset = 0
		}
	}

	if l.offset > maxStart {
		l.offset = maxStart
	}
}

// Render renders the document list to lines.
func (l *DocList) Render(height int) []string {
	lines := make([]string, 0, height)

	if len(l.docs) == 0 {
		lines = append(lines, "No documents with comments")
		return lines
	}

	l.EnsureVisible(height)

	start := l.offset
	end := start + height
	if end > len(l.docs) {
		end = len(l.docs)
	}

	for i := start; i < end; i++ {
		doc := l.docs[i]
		marker := "  "
		if i == l.selected {
			marker = "> "
		}
		label := DocStatusLabel(doc, l.counts[doc.Path])
		lines = append(lines, fmt.Sprintf("%s%-4s %s", marker, label, doc.Path))
	}

	return lines
}

// DocStatusLabel returns a short label for a document: its match
// count (or "-") plus a "*" marker when it has unsaved edits.
func DocStatusLabel(doc *document.Document, matches int) string {
	label := "-"
	if matches > 0 {
		label = strconv.Itoa(matches)
	}
	if doc.Dirty() {
		label += "*"
	}
	return label
}
