package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/replacium/internal/document"
)

// loadDocuments loads the document collection from disk.
func loadDocuments(root string, paths []string) tea.Cmd {
	return func() tea.Msg {
		store, err := document.Load(root, paths)
		if err != nil {
			return documentsMsg{err: err}
		}
		return documentsMsg{store: store}
	}
}

// saveDocuments writes every dirty document back to disk.
func saveDocuments(store *document.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return savedMsg{}
		}
		n := len(store.Dirty())
		if err := store.SaveAll(); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{saved: n}
	}
}
