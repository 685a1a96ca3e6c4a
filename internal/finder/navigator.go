package finder

// Navigator maintains a single wrapping cursor over a match list.
// Installing a new list always restarts the cursor at the first
// match.
type Navigator struct {
	matches []Match
	cursor  int
}

// NewNavigator creates an empty navigator.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// Set installs a freshly computed match list and resets the cursor.
func (n *Navigator) Set(matches []Match) {
	n.matches = matches
	n.cursor = 0
}

// Reset moves the cursor back to the first match.
func (n *Navigator) Reset() {
	n.cursor = 0
}

// Len returns the number of matches.
func (n *Navigator) Len() int {
	return len(n.matches)
}

// Cursor returns the zero-based cursor position. Meaningless when the
// list is empty.
func (n *Navigator) Cursor() int {
	return n.cursor
}

// Matches returns the underlying match list.
func (n *Navigator) Matches() []Match {
	return n.matches
}

// Current returns the match under the cursor, or false when the list
// is empty.
func (n *Navigator) Current() (Match, bool) {
	if len(n.matches) == 0 {
		return Match{}, false
	}
	return n.matches[n.cursor], true
}

// Next advances the cursor, wrapping to the first match after the
// last, and returns the new current match.
func (n *Navigator) Next() (Match, bool) {
	if len(n.matches) == 0 {
		return Match{}, false
	}
	n.cursor = (n.cursor + 1) % len(n.matches)
	return n.matches[n.cursor], true
}

// Previous moves the cursor back, wrapping to the last match before
// the first.
func (n *Navigator) Previous() (Match, bool) {
	if len(n.matches) == 0 {
		return Match{}, false
	}
	n.cursor = (n.cursor - 1 + len(n.matches)) % len(n.matches)
	return n.matches[n.cursor], true
}
