package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/replacium/internal/tui/ansi"
)

// RenderOverlay renders the search-and-replace overlay lines.
func (e *Engine) RenderOverlay(width int, dividerColor string) []string {
	if !e.active || width <= 0 {
		return nil
	}

	lines := make([]string, 0, 4)

	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color(dividerColor)).
		Render(strings.Repeat("─", width))
	lines = append(lines, divider)

	lines = append(lines, e.inputLine(e.InputView(), width))
	lines = append(lines, ansi.PadExact(e.ReplacementView(), width))

	status := "Type to search (tab: replacement, alt+c/w/r: modes, esc: close)"
	if e.Query() != "" {
		switch {
		case e.patternErr != nil:
			status = "Invalid pattern (alt+r: literal mode, esc: close)"
		case e.nav.Len() == 0:
			status = "No matches (esc: close)"
		default:
			status = fmt.Sprintf(
				"Match %d of %d  (Enter/↓: next, ↑: prev, ctrl+r: replace, ctrl+b: replace all)",
				e.CurrentMatchIndex(),
				e.MatchCount(),
			)
		}
	}
	statusStyled := lipgloss.NewStyle().Faint(true).Render(status)
	lines = append(lines, ansi.PadExact(statusStyled, width))

	return lines
}

// inputLine lays out the query input with the modifier badges
// right-aligned.
func (e *Engine) inputLine(inputView string, width int) string {
	badges := e.modeBadges()
	bw := lipgloss.Width(badges)
	if bw+1 >= width {
		return ansi.PadExact(inputView, width)
	}
	avail := width - bw - 1
	left := ansi.PadExact(ansi.ClipToWidth(inputView, avail), avail)
	return left + " " + badges
}

func (e *Engine) modeBadges() string {
	badge := func(label string, enabled bool) string {
		if enabled {
			return lipgloss.NewStyle().Bold(true).Render("[" + label + "]")
		}
		return lipgloss.NewStyle().Faint(true).Render("[" + label + "]")
	}
	return badge("Aa", e.opts.CaseSensitive) + " " +
		badge("W", e.opts.WholeWord) + " " +
		badge(".*", e.opts.Regex)
}
