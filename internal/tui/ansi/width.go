package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SliceHorizontal returns a substring starting at visual column start
// with at most width columns, preserving escape sequences.
func SliceHorizontal(s string, start, width int) string {
	if start <= 0 {
		return ansi.Truncate(s, width, "")
	}
	head := ansi.Truncate(s, start+width, "")
	return ansi.TruncateLeft(head, start, "")
}

// ClipToWidth truncates the string to at most w visual columns
// without an ellipsis.
func ClipToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "")
}

// PadExact pads the string with spaces to exactly width w.
func PadExact(s string, w int) string {
	vw := VisualWidth(s)
	if vw >= w {
		return s
	}
	return s + strings.Repeat(" ", w-vw)
}

// TruncateToWidth truncates to width with an ellipsis if needed.
func TruncateToWidth(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

// WrapLine wraps a single line to the given width, preserving escape
// sequences.
func WrapLine(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	return strings.Split(ansi.Hardwrap(s, width, false), "\n")
}

// WrapLines wraps multiple lines.
func WrapLines(lines []string, width int) []string {
	result := make([]string, 0, len(lines)*2)
	for _, line := range lines {
		result = append(result, WrapLine(line, width)...)
	}
	return result
}
