package document

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store holds an ordered, path-keyed document collection rooted at a
// directory on disk. Paths are slash-separated and relative to the
// root.
type Store struct {
	root   string
	docs   []*Document
	byPath map[string]*Document
}

// Load reads the given files under root and extracts their comment
// fragments. With no explicit paths it discovers every supported file
// under root. Collection order is the given (or sorted discovered)
// path order.
func Load(root string, paths []string) (*Store, error) {
	if len(paths) == 0 {
		var err error
		paths, err = discover(root)
		if err != nil {
			return nil, err
		}
	}

	s := &Store{root: root, byPath: make(map[string]*Document, len(paths))}
	for _, p := range paths {
		rel := filepath.ToSlash(p)
		if _, dup := s.byPath[rel]; dup {
			continue
		}
		b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", rel, err)
		}
		doc := &Document{Path: rel, raw: string(b)}
		doc.Fragments = ExtractFragments(rel, doc.raw)
		s.docs = append(s.docs, doc)
		s.byPath[rel] = doc
	}
	return s, nil
}

func discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if p != root && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor") {
				return fs.SkipDir
			}
			return nil
		}
		if !SyntaxForPath(p) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Root returns the directory the collection was loaded from.
func (s *Store) Root() string {
	return s.root
}

// Documents returns the collection in load order.
func (s *Store) Documents() []*Document {
	return s.docs
}

// Document returns the document for path.
func (s *Store) Document(path string) (*Document, bool) {
	doc, ok := s.byPath[path]
	return doc, ok
}

// FragmentText returns the current text of the identified fragment,
// or false when the fragment no longer exists.
func (s *Store) FragmentText(key FragmentKey) (string, bool) {
	doc, ok := s.byPath[key.Path]
	if !ok || key.Index < 0 || key.Index >= len(doc.Fragments) {
		return "", false
	}
	return doc.Fragments[key.Index].Source, true
}

// UpdateFragment replaces the fragment's text, splicing the change
// into the document's content and shifting the spans of every later
// fragment by the length delta. The write is in-memory only until
// Save.
func (s *Store) UpdateFragment(key FragmentKey, newText string) error {
	doc, ok := s.byPath[key.Path]
	if !ok {
		return fmt.Errorf("no document %q", key.Path)
	}
	if key.Index < 0 || key.Index >= len(doc.Fragments) {
		return fmt.Errorf("no fragment %d in %q", key.Index, key.Path)
	}
	frag := &doc.Fragments[key.Index]
	if newText == frag.Source {
		return nil
	}

	doc.raw = doc.raw[:frag.ByteLo] + newText + doc.raw[frag.ByteHi:]
	delta := len(newText) - (frag.ByteHi - frag.ByteLo)
	frag.Source = newText
	frag.ByteHi += delta
	for i := key.Index + 1; i < len(doc.Fragments); i++ {
		doc.Fragments[i].ByteLo += delta
		doc.Fragments[i].ByteHi += delta
	}
	doc.dirty = true
	return nil
}

// Dirty lists the paths with unsaved edits, in collection order.
func (s *Store) Dirty() []string {
	var out []string
	for _, doc := range s.docs {
		if doc.dirty {
			out = append(out, doc.Path)
		}
	}
	return out
}

// Save writes one document back to disk and clears its dirty flag.
// Saving a clean document is a no-op.
func (s *Store) Save(path string) error {
	doc, ok := s.byPath[path]
	if !ok {
		return fmt.Errorf("no document %q", path)
	}
	if !doc.dirty {
		return nil
	}
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.WriteFile(full, []byte(doc.raw), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	doc.dirty = false
	return nil
}

// SaveAll writes every dirty document, stopping at the first failure.
func (s *Store) SaveAll() error {
	for _, doc := range s.docs {
		if err := s.Save(doc.Path); err != nil {
			return err
		}
	}
	return nil
}
