package finder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/interpretive-systems/replacium/internal/document"
)

// ErrFragmentNotFound reports a replacement whose target fragment has
// disappeared between scan and replace.
var ErrFragmentNotFound = errors.New("fragment not found")

// ErrStaleMatch reports a match whose offsets no longer fit the
// fragment's current text.
var ErrStaleMatch = errors.New("stale match offsets")

// Source supplies current fragment text for replacement. Satisfied by
// document.Store.
type Source interface {
	FragmentText(key document.FragmentKey) (string, bool)
}

// Edit is the computed new text for one fragment. Persisting it is
// the caller's responsibility.
type Edit struct {
	Key     document.FragmentKey
	NewText string
}

// ReplaceOne splices replacement over the match's range in the
// fragment's current text. The replacement is verbatim; no
// capture-group expansion. Offsets outside the current text fail with
// ErrStaleMatch rather than corrupting it.
func ReplaceOne(src Source, m Match, replacement string) (Edit, error) {
	text, ok := src.FragmentText(m.Key())
	if !ok {
		return Edit{}, fmt.Errorf("%w: %s#%d", ErrFragmentNotFound, m.Path, m.Fragment)
	}
	if m.Start < 0 || m.End < m.Start || m.End > len(text) {
		return Edit{}, fmt.Errorf("%w: [%d,%d) in %d bytes", ErrStaleMatch, m.Start, m.End, len(text))
	}
	return Edit{
		Key:     m.Key(),
		NewText: text[:m.Start] + replacement + text[m.End:],
	}, nil
}

// ReplaceAll applies the replacement to every match, returning one
// Edit per touched fragment in first-seen fragment order.
//
// Within a fragment the splices run in descending start order, so a
// splice never shifts the offsets of a match still to be applied; the
// prefix below the lowest untouched offset stays byte-identical
// throughout. Vanished fragments and stale matches are skipped and
// the rest of the batch proceeds.
func ReplaceAll(src Source, matches []Match, replacement string) []Edit {
	perFrag := make(map[document.FragmentKey][]Match)
	var order []document.FragmentKey
	for _, m := range matches {
		key := m.Key()
		if _, seen := perFrag[key]; !seen {
			order = append(order, key)
		}
		perFrag[key] = append(perFrag[key], m)
	}

	edits := make([]Edit, 0, len(order))
	for _, key := range order {
		text, ok := src.FragmentText(key)
		if !ok {
			continue
		}
		group := perFrag[key]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Start > group[j].Start
		})

		out := text
		touched := false
		for _, m := range group {
			if m.Start < 0 || m.End < m.Start || m.End > len(text) {
				continue
			}
			out = out[:m.Start] + replacement + out[m.End:]
			touched = true
		}
		if touched {
			edits = append(edits, Edit{Key: key, NewText: out})
		}
	}
	return edits
}
