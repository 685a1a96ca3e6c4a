// Package ansi has small helpers for working with ANSI-styled
// terminal strings.
package ansi

import (
	"strings"
	"unicode/utf8"
)

// ConsumeEscape consumes an ANSI escape sequence starting at position
// i and returns the position after it. When s[i] is not an escape
// byte it advances by one.
func ConsumeEscape(s string, i int) int {
	if i >= len(s) || s[i] != 0x1b {
		if i+1 > len(s) {
			return len(s)
		}
		return i + 1
	}

	j := i + 1
	if j >= len(s) {
		return j
	}

	switch s[j] {
	case '[': // CSI: parameters end at a final byte in 0x40..0x7e
		j++
		for j < len(s) {
			c := s[j]
			j++
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
	case ']': // OSC: terminated by BEL
		j++
		for j < len(s) && s[j] != 0x07 {
			j++
		}
		if j < len(s) {
			j++
		}
	case 'P', 'X', '^', '_': // DCS, SOS, PM, APC
		j++
		for j < len(s) {
			if s[j] == 0x1b {
				j++
				break
			}
			j++
		}
	default:
		j++
	}

	if j <= i {
		return i + 1
	}
	return j
}

// Strip removes all ANSI escape sequences from the string.
func Strip(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == 0x1b {
			i = ConsumeEscape(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// VisualWidth returns the rune count of the string with escape
// sequences excluded.
func VisualWidth(s string) int {
	return utf8.RuneCountInString(Strip(s))
}
