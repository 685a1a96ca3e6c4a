package tui

import (
	"github.com/interpretive-systems/replacium/internal/document"
)

// documentsMsg contains the loaded document collection.
type documentsMsg struct {
	store *document.Store
	err   error
}

// savedMsg reports the result of writing dirty documents to disk.
type savedMsg struct {
	saved int
	err   error
}
