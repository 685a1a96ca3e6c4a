package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar manages the bottom status bar.
type StatusBar struct {
	root      string
	dirty     int
	keyBuffer string
	notice    string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetRoot sets the directory shown on the right.
func (s *StatusBar) SetRoot(root string) {
	s.root = root
}

// SetDirtyCount updates the unsaved-documents counter.
func (s *StatusBar) SetDirtyCount(n int) {
	s.dirty = n
}

// SetKeyBuffer updates the pending-count key buffer display.
func (s *StatusBar) SetKeyBuffer(buf string) {
	s.keyBuffer = buf
}

// SetNotice sets a transient message (replace results, errors).
func (s *StatusBar) SetNotice(msg string) {
	s.notice = msg
}

// Render renders the status bar.
func (s *StatusBar) Render(width int) string {
	leftText := "?: help"
	if s.keyBuffer != "" {
		leftText = s.keyBuffer
	}
	if s.notice != "" {
		leftText += "  |  " + s.notice
	}
	if s.dirty > 0 {
		leftText += fmt.Sprintf("  |  %d unsaved (ctrl+s: save)", s.dirty)
	}

	leftStyled := lipgloss.NewStyle().Faint(true).Render(leftText)
	right := lipgloss.NewStyle().Faint(true).Render(s.root)

	// Ensure right part is always visible
	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}

	avail := width - rightW - 1
	leftRendered := leftStyled
	if lipgloss.Width(leftRendered) > avail {
		leftRendered = ansi.Truncate(leftRendered, avail, "…")
	} else if lipgloss.Width(leftRendered) < avail {
		leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
	}

	return leftRendered + " " + right
}
