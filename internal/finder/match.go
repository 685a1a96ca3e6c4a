package finder

import "github.com/interpretive-systems/replacium/internal/document"

// Match is one located occurrence of a pattern within one fragment,
// as a half-open byte range into the fragment's text at scan time.
// Any later edit to that fragment invalidates offsets past the edit
// point.
type Match struct {
	Path     string
	Fragment int
	Start    int
	End      int
}

// Key returns the owning fragment's identity.
func (m Match) Key() document.FragmentKey {
	return document.FragmentKey{Path: m.Path, Index: m.Fragment}
}

// FindAll scans every fragment of every document and returns all
// non-overlapping matches in document order, then fragment order,
// then left to right within a fragment. The empty pattern yields nil
// without scanning. The scan is a pure read; running it twice over
// the same inputs yields identical output.
func FindAll(docs []*document.Document, p Pattern) []Match {
	if p.Empty() {
		return nil
	}

	var matches []Match
	for _, doc := range docs {
		for i, frag := range doc.Fragments {
			// FindAll advances past zero-width matches on its own,
			// so patterns like `a*` terminate.
			for _, span := range p.re.FindAllStringIndex(frag.Source, -1) {
				matches = append(matches, Match{
					Path:     doc.Path,
					Fragment: i,
					Start:    span[0],
					End:      span[1],
				})
			}
		}
	}
	return matches
}
