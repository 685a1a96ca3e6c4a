// Package document loads source files as ordered collections of
// comment fragments and writes fragment edits back to disk.
package document

// Fragment is one comment block within a document. ByteLo/ByteHi is
// its half-open span in the owning file's raw content; Line is the
// 1-based line its first byte sits on. Source is always identical to
// the raw slice [ByteLo, ByteHi).
type Fragment struct {
	Source string
	ByteLo int
	ByteHi int
	Line   int
}

// Document is one file: its path (the unique key within a Store) and
// the ordered comment fragments extracted from its content.
type Document struct {
	Path      string
	Fragments []Fragment

	raw   string
	dirty bool
}

// Raw returns the document's full current content.
func (d *Document) Raw() string {
	return d.raw
}

// Dirty reports whether the document has unsaved edits.
func (d *Document) Dirty() bool {
	return d.dirty
}

// FragmentKey identifies a fragment by document path and its position
// in the document's fragment sequence.
type FragmentKey struct {
	Path  string
	Index int
}
