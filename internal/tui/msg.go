// Package tui implements a two-pane terminal browser for the address
// book: contact list on the left, detail on the right, with an input
// form for new contacts and a confirmation screen for deletions.
package tui

import (
	"errors"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolo/internal/contact"
)

// Mode represents the current view mode.
type Mode int

const (
	ModeBrowse  Mode = iota // Browsing the contact list with detail pane.
	ModeForm                // Adding a contact through the input form.
	ModeConfirm             // Confirming a contact deletion.
)

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneLeft  Focus = iota // Contact list has focus.
	PaneRight              // Detail viewport has focus.
)

// Storer persists and restores contact payloads. *store.FileStore
// satisfies it.
type Storer interface {
	Save(path string, contacts []contact.Payload) error
	Load(path string) ([]contact.Payload, error)
}

// --- tea.Msg types ---

// BookLoadedMsg carries the result of the startup book load.
type BookLoadedMsg struct {
	Payloads []contact.Payload
	Err      error
}

// BookSavedMsg carries the result of an explicit save.
type BookSavedMsg struct {
	Path string
	Err  error
}

// loadBook returns a tea.Cmd that reads the book file asynchronously
// and wraps the result in a BookLoadedMsg. A missing file loads an
// empty book.
func loadBook(st Storer, path string) tea.Cmd {
	return func() tea.Msg {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return BookLoadedMsg{}
		}
		payloads, err := st.Load(path)
		return BookLoadedMsg{Payloads: payloads, Err: err}
	}
}

// saveBook returns a tea.Cmd that writes contacts to path
// asynchronously and wraps the result in a BookSavedMsg.
func saveBook(st Storer, path string, contacts []contact.Payload) tea.Cmd {
	return func() tea.Msg {
		return BookSavedMsg{Path: path, Err: st.Save(path, contacts)}
	}
}
