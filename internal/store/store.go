// Package store persists the address book as a JSON document on disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smileynet/rolo/internal/contact"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrIO    = errors.New("store: file error")
	ErrParse = errors.New("store: malformed book file")
)

// document is the on-disk shape: a single contacts array.
type document struct {
	Contacts []contact.Payload `json:"contacts"`
}

// FileStore reads and writes address book files at caller-chosen paths.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Save writes contacts to path as a {"contacts": [...]} document,
// overwriting existing content. Parent directories are created as
// needed. The write is not atomic; a failure mid-write can leave a
// partial file behind.
func (s *FileStore) Save(path string, contacts []contact.Payload) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrIO)
	}
	if contacts == nil {
		contacts = []contact.Payload{}
	}

	data, err := json.MarshalIndent(document{Contacts: contacts}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding book: %v", ErrIO, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", ErrIO, dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, path, err)
	}
	return nil
}

// Load reads the {"contacts": [...]} document at path. Unreadable paths
// wrap ErrIO, malformed JSON wraps ErrParse. Field-level validity is
// the caller's concern.
func (s *FileStore) Load(path string) ([]contact.Payload, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrIO)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrParse, path, err)
	}
	return doc.Contacts, nil
}
